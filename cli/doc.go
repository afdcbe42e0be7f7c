// Package cli implements the command-line interface for pokedex.
//
// The cli package provides:
// - The cobra root command and its version and mcp subcommands
// - The interactive search menu for Pokémon, items and moves
// - Readline based terminal input with history
package cli
