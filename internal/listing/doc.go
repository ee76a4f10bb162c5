// Package listing implements the credential-gated market data retrieval
// flow: authorize the caller, resolve one stored credential, fetch the
// move options catalog through a scoped exchange session, and filter the
// result for display.
//
// The flow is stateless between invocations and always terminates in
// exactly one Outcome; every failure is converted to an outcome kind at
// the boundary where it occurs.
package listing
