// Package wire frames encrypted messages and cover traffic for the
// transport layer. The core engine is agnostic to this encoding; any
// framing that preserves the message bytes exactly would do.
package wire
