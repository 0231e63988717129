package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/evcraddock/propertyhub/internal/listing"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show listing details",
		Long:  "Show full details for a listing, followed by related listings of the same type.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid listing ID: %s", args[0])
	}

	api, err := newAPIClient()
	if err != nil {
		return err
	}

	d, err := api.Get(id)
	if errors.Is(err, listing.ErrNotFound) {
		return fmt.Errorf("listing %d not found", id)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if isJSON() {
		return printJSON(out, d)
	}

	printListingDetail(out, d.Listing)
	writef(out, "\n")
	if len(d.Related) == 0 {
		writef(out, "No related listings.\n")
		return nil
	}
	writef(out, "Related (%d):\n", len(d.Related))
	return printListingTable(out, d.Related)
}
