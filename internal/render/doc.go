// Package render turns flow outcomes into chat-ready payloads: HTML
// message bodies plus the inline keyboard shown with every reply.
package render
