// Package mcp implements the Model Context Protocol server for pokedex.
//
// The mcp package provides:
// - An MCP server over stdio started by "pokedex mcp"
// - Tools to look up Pokémon, items and moves on PokeAPI
package mcp
