// Package commands defines the contractseal CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - demo      Run the two-party co-signing and messaging flow
//   - verify    Re-check every signature of an archived document
//   - list      List archived document IDs
//
// # Implementation
//
// The root command loads the YAML config and builds the dependency graph
// (archive store, party/contract/channel services) before any subcommand
// runs. The core protocol layer does no logging or printing; all output
// happens here.
package commands
