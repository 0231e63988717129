package listing

import "fmt"

const (
	// DefaultRecentCount is how many listings the home page shows as recent.
	DefaultRecentCount = 4

	// DefaultRelatedCount is how many related listings a detail view shows.
	DefaultRelatedCount = 3
)

// Recent returns copies of the first n listings in order. No filtering is
// applied.
func Recent(listings []Listing, n int) []Listing {
	return take(listings, n)
}

// Related returns up to m listings of the same type as ref, excluding ref
// itself, in their original order.
func Related(listings []Listing, ref Listing, m int) []Listing {
	out := make([]Listing, 0)
	for _, l := range listings {
		if len(out) >= m {
			break
		}
		if l.Type == ref.Type && l.ID != ref.ID {
			out = append(out, l.clone())
		}
	}
	return out
}

// Featured returns the listings flagged for display emphasis, in order.
func Featured(listings []Listing) []Listing {
	out := make([]Listing, 0)
	for _, l := range listings {
		if l.Featured {
			out = append(out, l.clone())
		}
	}
	return out
}

// Summary describes a search result, e.g. `2 Properties Found In "coast" • condo`.
func Summary(n int, c Criteria) string {
	noun := "Properties"
	if n == 1 {
		noun = "Property"
	}

	s := fmt.Sprintf("%d %s Found", n, noun)
	if c.Location != "" {
		s += fmt.Sprintf(" In %q", c.Location)
	}
	if c.Type != AnyType && c.Type != "" {
		s += " • " + string(c.Type)
	}
	return s
}

// take returns copies of the first n elements of listings.
func take(listings []Listing, n int) []Listing {
	if n < 0 {
		n = 0
	}
	if n > len(listings) {
		n = len(listings)
	}
	out := make([]Listing, n)
	for i, l := range listings[:n] {
		out[i] = l.clone()
	}
	return out
}
