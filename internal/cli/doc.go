// Package cli wires the cobra command tree: the root scaffolding command
// plus the version and doctor subcommands.
package cli
