// Package cli implements the ciscosupport command tree.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cxsupport/go-ciscosupport/ciscosupport"
	"github.com/cxsupport/go-ciscosupport/internal/logger"
)

// CLI holds the flags and lazily constructed API client shared by all
// subcommands.
type CLI struct {
	log      zerolog.Logger
	baseURL  string
	tokenURL string
	verbose  bool

	client *ciscosupport.Client
}

// New creates a CLI with the default logger.
func New() *CLI {
	return &CLI{log: logger.New()}
}

// RootCommand builds the ciscosupport root command with all
// subcommands attached.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "ciscosupport",
		Short: "Query the Cisco Support APIs",
		Long: `ciscosupport queries the Cisco Support APIs: software suggestions,
bug search, and EoX product lifecycle records.

Credentials come from the CISCO_CLIENT_ID and CISCO_CLIENT_SECRET
environment variables; a .env file in the working directory is honored.
Results are printed as indented JSON on stdout.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if c.verbose {
				level = zerolog.DebugLevel
			}
			c.log = c.log.Level(level)
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&c.baseURL, "base-url", "", "override the API base URL")
	root.PersistentFlags().StringVar(&c.tokenURL, "token-url", "", "override the OAuth2 token URL")

	root.AddCommand(c.suggestionsCommand())
	root.AddCommand(c.bugsCommand())
	root.AddCommand(c.eoxCommand())
	return root
}

// api returns the shared API client, constructing it on first use from
// the environment and persistent flags.
func (c *CLI) api() (*ciscosupport.Client, error) {
	if c.client != nil {
		return c.client, nil
	}

	// A .env file is optional; deployments usually set the variables
	// directly.
	_ = godotenv.Load()

	cfg := ciscosupport.Config{
		ClientID:     os.Getenv("CISCO_CLIENT_ID"),
		ClientSecret: os.Getenv("CISCO_CLIENT_SECRET"),
		BaseURL:      c.baseURL,
		TokenURL:     c.tokenURL,
		Logger:       &c.log,
	}
	client, err := ciscosupport.NewWithConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("configure client: %w", err)
	}
	c.client = client
	return client, nil
}

// printJSON writes v to stdout as indented JSON.
func (c *CLI) printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
