// Package commands defines the cryptoprobe CLI and wires dependencies for subcommands.
//
// Commands
//
//   - verify      Assert the host is secure enough; exit 1 otherwise
//   - check       Evaluate a single capability check (provider | strength)
//   - providers   List registered providers and their algorithms
//   - policy      Print the maximum allowed key length for an algorithm
//   - selftest    Instantiate providers and run their self-tests
//
// # Implementation
//
// The root command loads the configuration and builds the dependency graph
// (registry, policy, verifier, report store) before any subcommand runs, so
// handlers share a single app context. Failures are returned as errors; main
// maps them to exit status 1.
package commands
