// Package telegram is a minimal Bot API transport: a JSON client for
// the handful of methods the bot uses, and a long-poll router that
// dispatches callback queries to registered handlers.
package telegram
