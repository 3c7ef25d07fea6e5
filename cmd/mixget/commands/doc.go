// Package commands defines the mixget CLI and wires dependencies for subcommands.
//
// Commands
//
//   - export      Export and download animations for the primary character
//   - character   Print the primary character
//   - search      List motion products matching a query
//
// # Implementation
//
// The root command loads configuration (.env, MIXGET_* variables, then flags)
// and builds the dependency graph before any subcommand runs, so handlers
// share one HTTP client, one retrying remote client and one metrics registry.
package commands
