package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/ka2n/pokedex/api"
	"github.com/ka2n/pokedex/config"
	"github.com/ka2n/pokedex/mcp"
	"github.com/ka2n/pokedex/view"
	"github.com/mattn/go-isatty"
	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"
)

var (
	// Root command
	rootCmd = &cobra.Command{
		Use:           "pokedex",
		Short:         "Search Pokémon, items and moves",
		SilenceErrors: true,
		SilenceUsage:  true,
		Long: `pokedex is an interactive client for PokeAPI.
Pick an option from the menu, enter a name or number, and pokedex prints
the matching Pokémon, item or move.

Settings are read from ./pokedex.yaml or ~/.config/pokedex/pokedex.yaml
and POKEDEX_* environment variables (for example POKEDEX_BASE_URL).`,
		Args: cobra.NoArgs,
		RunE: runRoot,
	}

	// Version information
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	// Version command
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print detailed version information about pokedex",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "pokedex version %s\n", Version)
			fmt.Fprintf(out, "  commit: %s\n", Commit)
			fmt.Fprintf(out, "  built:  %s\n", Date)
		},
	}
)

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(mcp.Command(loadClient))
}

// Run executes the main CLI functionality
func Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(config.NewViper())
	if err != nil {
		return err
	}

	in, err := NewInputHandler(cfg.HistoryFile, os.Stdin, cmd.OutOrStdout())
	if err != nil {
		return failure.Wrap(err)
	}
	defer in.Close()

	out := cmd.OutOrStdout()
	session := NewSession(newClient(cfg), in, view.New(out, isTerminal(out)))
	return session.Run(cmd.Context())
}

func newClient(cfg *config.Config) *api.Client {
	client := api.NewClient(cfg.BaseURL, cfg.Timeout)
	client.UserAgent = fmt.Sprintf("%s/%s", cfg.UserAgent, Version)
	return client
}

// loadClient builds an API client from the current configuration
func loadClient() (*api.Client, error) {
	cfg, err := config.Load(config.NewViper())
	if err != nil {
		return nil, err
	}
	return newClient(cfg), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
