package cli

import (
	"github.com/spf13/cobra"

	"github.com/cxsupport/go-ciscosupport/ciscosupport"
)

func (c *CLI) suggestionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggestions",
		Short: "Software suggestion lookups",
	}
	cmd.AddCommand(c.suggestionsReleasesCommand())
	cmd.AddCommand(c.suggestionsImagesCommand())
	cmd.AddCommand(c.suggestionsCompatibleCommand())
	return cmd
}

func (c *CLI) suggestionsReleasesCommand() *cobra.Command {
	var productIDs, mdfIDs []string

	cmd := &cobra.Command{
		Use:   "releases",
		Short: "Suggested software releases, without image details",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.api()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if len(mdfIDs) > 0 {
				products, err := client.SoftwareSuggestions.SuggestedReleasesByMDFIDs(ctx, mdfIDs)
				if err != nil {
					return err
				}
				return c.printJSON(products)
			}
			products, err := client.SoftwareSuggestions.SuggestedReleasesByProductIDs(ctx, productIDs)
			if err != nil {
				return err
			}
			return c.printJSON(products)
		},
	}
	cmd.Flags().StringSliceVar(&productIDs, "product-ids", nil, "base product IDs to look up")
	cmd.Flags().StringSliceVar(&mdfIDs, "mdf-ids", nil, "MDF IDs to look up instead of product IDs")
	return cmd
}

func (c *CLI) suggestionsImagesCommand() *cobra.Command {
	var productIDs, mdfIDs []string

	cmd := &cobra.Command{
		Use:   "images",
		Short: "Suggested software releases with image details",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.api()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if len(mdfIDs) > 0 {
				products, err := client.SoftwareSuggestions.SuggestedReleasesAndImagesByMDFIDs(ctx, mdfIDs)
				if err != nil {
					return err
				}
				return c.printJSON(products)
			}
			products, err := client.SoftwareSuggestions.SuggestedReleasesAndImagesByProductIDs(ctx, productIDs)
			if err != nil {
				return err
			}
			return c.printJSON(products)
		},
	}
	cmd.Flags().StringSliceVar(&productIDs, "product-ids", nil, "base product IDs to look up")
	cmd.Flags().StringSliceVar(&mdfIDs, "mdf-ids", nil, "MDF IDs to look up instead of product IDs")
	return cmd
}

func (c *CLI) suggestionsCompatibleCommand() *cobra.Command {
	var (
		productID string
		mdfID     string
		opts      ciscosupport.CompatibleOptions
	)

	cmd := &cobra.Command{
		Use:   "compatible",
		Short: "Compatible and suggested releases for one product",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.api()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if mdfID != "" {
				releases, err := client.SoftwareSuggestions.CompatibleAndSuggestedByMDFID(ctx, mdfID, &opts)
				if err != nil {
					return err
				}
				return c.printJSON(releases)
			}
			releases, err := client.SoftwareSuggestions.CompatibleAndSuggestedByProductID(ctx, productID, &opts)
			if err != nil {
				return err
			}
			return c.printJSON(releases)
		},
	}
	cmd.Flags().StringVar(&productID, "product-id", "", "base product ID to look up")
	cmd.Flags().StringVar(&mdfID, "mdf-id", "", "MDF ID to look up instead of a product ID")
	cmd.Flags().StringVar(&opts.CurrentImage, "current-image", "", "filter by current image ID")
	cmd.Flags().StringVar(&opts.CurrentRelease, "current-release", "", "filter by current release version")
	cmd.Flags().StringVar(&opts.SupportedFeatures, "supported-features", "", "comma-separated feature identifiers")
	cmd.Flags().StringVar(&opts.SupportedHardware, "supported-hardware", "", "comma-separated hardware identifiers")
	return cmd
}
