package listing

import (
	"math"
	"strings"
)

// NoMaxPrice is the MaxPrice of criteria without an upper price bound.
const NoMaxPrice int64 = math.MaxInt64

// Criteria narrows a set of listings. Every field is an independent
// constraint and a listing must satisfy all of them.
//
// Bounds are inclusive and are evaluated exactly as given: a MinPrice above
// MaxPrice, or a Type that is neither AnyType nor a known type, simply
// matches nothing.
type Criteria struct {
	Location     string       `json:"location"`
	Type         PropertyType `json:"type"`
	MinPrice     int64        `json:"min_price"`
	MaxPrice     int64        `json:"max_price"`
	MinBedrooms  int          `json:"min_bedrooms"`
	MinBathrooms int          `json:"min_bathrooms"`
	MinSqft      int64        `json:"min_sqft"`
}

// DefaultCriteria returns criteria that match every listing.
func DefaultCriteria() Criteria {
	return Criteria{
		Type:     AnyType,
		MaxPrice: NoMaxPrice,
	}
}

// Matches reports whether l satisfies every constraint in c.
func (c Criteria) Matches(l Listing) bool {
	return c.matches(l, strings.ToLower(c.Location))
}

// matches is Matches with the location query already lower-cased.
func (c Criteria) matches(l Listing, location string) bool {
	// Location is a case-insensitive substring match
	if location != "" && !strings.Contains(strings.ToLower(l.Location), location) {
		return false
	}

	if c.Type != AnyType && l.Type != c.Type {
		return false
	}

	if l.Price < c.MinPrice || l.Price > c.MaxPrice {
		return false
	}

	if l.Bedrooms < c.MinBedrooms {
		return false
	}

	if l.Bathrooms < c.MinBathrooms {
		return false
	}

	return l.Sqft >= c.MinSqft
}

// Filter returns copies of the listings that match c, in their original
// order. The input is never modified and the result is always a new,
// non-nil slice that shares no memory with it.
func Filter(listings []Listing, c Criteria) []Listing {
	location := strings.ToLower(c.Location)

	out := make([]Listing, 0)
	for _, l := range listings {
		if c.matches(l, location) {
			out = append(out, l.clone())
		}
	}
	return out
}
