// Package commands defines the cryptalk CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init           Create or rotate the local identity
//   - fingerprint    Print the identity fingerprint
//   - start-session  Bootstrap a ratchet session with a peer
//   - sessions       List stored sessions
//   - seal           Encrypt a message for a session
//   - open           Decrypt an incoming envelope
//   - ratchet        Rotate session keys with a fresh DH exchange
//   - clear          Destroy a single session
//   - panic          Wipe every session immediately
//
// # Implementation
//
// The root command loads configuration and builds a dependency graph
// (stores, identity service, session engine) before any subcommand runs, so
// handlers share one app context. Sessions live encrypted on disk between
// runs; each command restores the state it needs, advances it, and persists
// it back before printing anything an attacker could replay.
package commands
