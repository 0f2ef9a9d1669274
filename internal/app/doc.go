// Package app loads configuration and builds the dependency graph the
// CLI runs on.
package app
