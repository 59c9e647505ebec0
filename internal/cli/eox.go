package cli

import (
	"github.com/spf13/cobra"

	"github.com/cxsupport/go-ciscosupport/ciscosupport"
)

func (c *CLI) eoxCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eox",
		Short: "End-of-Life/End-of-Sale record lookups",
	}
	cmd.AddCommand(c.eoxDatesCommand())
	cmd.AddCommand(c.eoxProductsCommand())
	cmd.AddCommand(c.eoxSerialsCommand())
	cmd.AddCommand(c.eoxReleasesCommand())
	return cmd
}

func (c *CLI) eoxDatesCommand() *cobra.Command {
	var opts ciscosupport.EoXOptions

	cmd := &cobra.Command{
		Use:   "dates <start> <end>",
		Short: "EoX records in a YYYY-MM-DD date range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.api()
			if err != nil {
				return err
			}
			records, err := client.EoX.ByDates(cmd.Context(), args[0], args[1], &opts)
			if err != nil {
				return err
			}
			return c.printJSON(records)
		},
	}
	cmd.Flags().StringSliceVar(&opts.Attributes, "attrib", nil, "record date attributes to match, e.g. EO_SALES_DATE")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum number of records to return")
	return cmd
}

func (c *CLI) eoxProductsCommand() *cobra.Command {
	var opts ciscosupport.EoXOptions

	cmd := &cobra.Command{
		Use:   "products <product-id>...",
		Short: "EoX records by product ID",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.api()
			if err != nil {
				return err
			}
			records, err := client.EoX.ByProductIDs(cmd.Context(), args, &opts)
			if err != nil {
				return err
			}
			return c.printJSON(records)
		},
	}
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum number of records to return")
	return cmd
}

func (c *CLI) eoxSerialsCommand() *cobra.Command {
	var opts ciscosupport.EoXOptions

	cmd := &cobra.Command{
		Use:   "serials <serial-number>...",
		Short: "EoX records by device serial number",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.api()
			if err != nil {
				return err
			}
			records, err := client.EoX.BySerialNumbers(cmd.Context(), args, &opts)
			if err != nil {
				return err
			}
			return c.printJSON(records)
		},
	}
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum number of records to return")
	return cmd
}

func (c *CLI) eoxReleasesCommand() *cobra.Command {
	var opts ciscosupport.EoXOptions

	cmd := &cobra.Command{
		Use:   "releases <release-string>...",
		Short: "EoX records by software release string, e.g. 12.2,IOS",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.api()
			if err != nil {
				return err
			}
			records, err := client.EoX.BySoftwareReleaseStrings(cmd.Context(), args, &opts)
			if err != nil {
				return err
			}
			return c.printJSON(records)
		},
	}
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum number of records to return")
	return cmd
}
