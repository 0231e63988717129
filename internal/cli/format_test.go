package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/evcraddock/propertyhub/internal/listing"
)

func TestPrintListingTable(t *testing.T) {
	var buf bytes.Buffer
	err := printListingTable(&buf, []listing.Listing{
		{ID: 7, Title: "A Remarkably Long Listing Title For Testing", Price: 1250000, Type: listing.Villa, Bedrooms: 5, Bathrooms: 4, Sqft: 4200, Location: "Hillside"},
	})
	if err != nil {
		t.Fatalf("print: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	for _, want := range []string{"A Remarkably Long Listing T...", "$1,250,000", "Villa", "4,200", "Hillside"} {
		if !strings.Contains(lines[2], want) {
			t.Errorf("row missing %q: %s", want, lines[2])
		}
	}
}

func TestPrintListingTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := printListingTable(&buf, nil); err != nil {
		t.Fatalf("print: %v", err)
	}
	if buf.String() != "No listings found.\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestPrintListingDetail(t *testing.T) {
	var buf bytes.Buffer
	printListingDetail(&buf, listing.Listing{
		ID:          3,
		Title:       "Modern Condo",
		Price:       520000,
		Location:    "Waterfront",
		Bedrooms:    2,
		Bathrooms:   2,
		Sqft:        1400,
		Type:        listing.Condo,
		Description: "Water views.",
		Amenities:   []string{"Pool", "Gym"},
	})

	out := buf.String()
	for _, want := range []string{"Listing #3", "Modern Condo", "$520,000", "Condo", "1,400 sqft", "Pool, Gym", "Water views."} {
		if !strings.Contains(out, want) {
			t.Errorf("detail missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Featured") {
		t.Error("unexpected featured line")
	}
}
