// Package delta provides a client for the Delta Exchange REST API.
//
// A Client is a scoped, single-use session bound to one decrypted
// credential pair: callers construct it for one request sequence and
// must Close it when done. The client signs every request, retries
// transient failures, and decodes the exchange's success/error envelope.
package delta
