// Package app wires the sealbox CLI: it loads Config from flags and the
// environment, builds the logger, and turns the configured hex strings into
// keys and nonces for the commands to use.
package app
