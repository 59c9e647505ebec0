package cli

import (
	"github.com/spf13/cobra"

	"github.com/cxsupport/go-ciscosupport/ciscosupport"
)

func (c *CLI) bugsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bugs",
		Short: "Bug search lookups",
	}
	cmd.AddCommand(c.bugsSearchCommand())
	cmd.AddCommand(c.bugsDetailsCommand())
	cmd.AddCommand(c.bugsProductCommand())
	return cmd
}

// bugSearchFlags registers the shared bug filter flags on cmd.
func bugSearchFlags(cmd *cobra.Command, opts *ciscosupport.BugSearchOptions) {
	cmd.Flags().StringVar(&opts.Status, "status", "", "filter by status: O (open), F (fixed), T (terminated)")
	cmd.Flags().IntVar(&opts.ModifiedDate, "modified-date", 0, "filter by modification window, 1 (last week) through 5 (all)")
	cmd.Flags().IntVar(&opts.Severity, "severity", 0, "filter by severity, 1 through 6")
	cmd.Flags().StringVar(&opts.SortBy, "sort-by", "", "sort results, e.g. severity or modified_date")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum number of records to return")
}

func (c *CLI) bugsSearchCommand() *cobra.Command {
	var opts ciscosupport.BugSearchOptions

	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search bugs by keyword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.api()
			if err != nil {
				return err
			}
			bugs, err := client.Bug.SearchByKeyword(cmd.Context(), args[0], &opts)
			if err != nil {
				return err
			}
			return c.printJSON(bugs)
		},
	}
	bugSearchFlags(cmd, &opts)
	return cmd
}

func (c *CLI) bugsDetailsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "details <bug-id>...",
		Short: "Fetch detailed records for specific bug IDs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.api()
			if err != nil {
				return err
			}
			bugs, err := client.Bug.DetailsByBugIDs(cmd.Context(), args)
			if err != nil {
				return err
			}
			return c.printJSON(bugs)
		},
	}
}

func (c *CLI) bugsProductCommand() *cobra.Command {
	var (
		opts     ciscosupport.BugSearchOptions
		releases []string
	)

	cmd := &cobra.Command{
		Use:   "product <base-product-id>",
		Short: "List bugs for a base product ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.api()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if len(releases) > 0 {
				bugs, err := client.Bug.ByBaseProductIDAndSoftwareReleases(ctx, args[0], releases, &opts)
				if err != nil {
					return err
				}
				return c.printJSON(bugs)
			}
			bugs, err := client.Bug.ByBaseProductID(ctx, args[0], &opts)
			if err != nil {
				return err
			}
			return c.printJSON(bugs)
		},
	}
	cmd.Flags().StringSliceVar(&releases, "software-releases", nil, "restrict to the given software releases")
	bugSearchFlags(cmd, &opts)
	return cmd
}
