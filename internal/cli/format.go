package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/evcraddock/propertyhub/internal/format"
	"github.com/evcraddock/propertyhub/internal/listing"
)

// printJSON marshals v as indented JSON and writes it to w.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printListingDetail prints a single listing in text format.
func printListingDetail(w io.Writer, l listing.Listing) {
	writef(w, "Listing #%d\n", l.ID)
	writef(w, "  Title:     %s\n", l.Title)
	writef(w, "  Location:  %s\n", l.Location)
	writef(w, "  Price:     %s\n", format.Price(l.Price))
	writef(w, "  Type:      %s\n", l.Type.Label())
	writef(w, "  Beds:      %d\n", l.Bedrooms)
	writef(w, "  Baths:     %d\n", l.Bathrooms)
	writef(w, "  Area:      %s\n", format.Sqft(l.Sqft))
	if l.Featured {
		writef(w, "  Featured:  yes\n")
	}
	if len(l.Amenities) > 0 {
		writef(w, "  Amenities: %s\n", strings.Join(l.Amenities, ", "))
	}
	if l.Description != "" {
		writef(w, "\n  %s\n", l.Description)
	}
}

// printListingTable prints listings as a formatted table.
func printListingTable(out io.Writer, listings []listing.Listing) error {
	if len(listings) == 0 {
		writef(out, "No listings found.\n")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tTITLE\tPRICE\tTYPE\tBED\tBATH\tSQFT\tLOCATION"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--\t-----\t-----\t----\t---\t----\t----\t--------"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, l := range listings {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
			l.ID, format.Truncate(l.Title, 30), format.Price(l.Price), l.Type.Label(),
			l.Bedrooms, l.Bathrooms, format.Number(l.Sqft), format.Truncate(l.Location, 25),
		); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	return w.Flush()
}
