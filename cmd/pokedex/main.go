// Command pokedex provides an interactive terminal client for PokeAPI.
package main

import (
	"fmt"
	"os"

	"github.com/ka2n/pokedex/cli"
)

func main() {
	if err := cli.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", cli.UserMessage(err))
		os.Exit(1)
	}
}
