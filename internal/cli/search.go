package cli

import (
	"github.com/spf13/cobra"

	"github.com/evcraddock/propertyhub/internal/listing"
)

func newSearchCmd() *cobra.Command {
	var (
		location     string
		propertyType string
		minPrice     int64
		maxPrice     int64
		minBedrooms  int
		minBathrooms int
		minSqft      int64
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search listings",
		Long: `Search listings. Every flag narrows the results and a listing must
match all of them. Location is a case-insensitive substring match.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := listing.DefaultCriteria()
			c.Location = location
			c.Type = listing.PropertyType(propertyType)
			c.MinPrice = minPrice
			if cmd.Flags().Changed("max-price") {
				c.MaxPrice = maxPrice
			}
			c.MinBedrooms = minBedrooms
			c.MinBathrooms = minBathrooms
			c.MinSqft = minSqft
			return runSearch(cmd, c)
		},
	}

	cmd.Flags().StringVar(&location, "location", "", "location substring")
	cmd.Flags().StringVar(&propertyType, "type", string(listing.AnyType), "property type (all|apartment|house|condo|villa)")
	cmd.Flags().Int64Var(&minPrice, "min-price", 0, "minimum price")
	cmd.Flags().Int64Var(&maxPrice, "max-price", 0, "maximum price (default: no limit)")
	cmd.Flags().IntVar(&minBedrooms, "min-beds", 0, "minimum bedrooms")
	cmd.Flags().IntVar(&minBathrooms, "min-baths", 0, "minimum bathrooms")
	cmd.Flags().Int64Var(&minSqft, "min-sqft", 0, "minimum square footage")

	return cmd
}

func runSearch(cmd *cobra.Command, c listing.Criteria) error {
	api, err := newAPIClient()
	if err != nil {
		return err
	}

	res, err := api.Search(c)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if isJSON() {
		return printJSON(out, res)
	}

	writef(out, "%s\n\n", res.Summary)
	return printListingTable(out, res.Listings)
}
