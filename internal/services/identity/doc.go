// Package identity creates and loads the local long-term key material.
package identity
