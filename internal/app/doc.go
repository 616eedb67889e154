// Package app wires application dependencies for the CLI.
//
// It builds the provider registry, the key-length policy, the verifier and
// the report store from Config, exposing them via the Wire struct for
// commands to use.
package app
