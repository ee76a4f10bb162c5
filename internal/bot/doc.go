// Package bot registers the chat-facing handlers: it maps callback
// presses to listing flows and writes rendered payloads back through
// the transport.
package bot
