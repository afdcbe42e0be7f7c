package mcp

import (
	"github.com/ka2n/pokedex/api"
	"github.com/spf13/cobra"
)

// Command returns the MCP server command. newClient is called once when the command runs.
func Command(newClient func() (*api.Client, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			return NewServer(client).Run()
		},
	}
}
