// Package listing provides the property listing model, the read-only listing
// store and the filtering engine used by the catalog pages and the API.
package listing

import (
	"errors"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrNotFound is returned by API clients when the server has no listing
// with the requested ID.
var ErrNotFound = errors.New("listing not found")

// PropertyType is the kind of property a listing describes.
type PropertyType string

const (
	Apartment PropertyType = "apartment"
	House     PropertyType = "house"
	Condo     PropertyType = "condo"
	Villa     PropertyType = "villa"

	// AnyType is the criteria value that places no constraint on type.
	AnyType PropertyType = "all"
)

var validTypes = []PropertyType{Apartment, House, Condo, Villa}

// Types returns the closed set of property types, in display order.
func Types() []PropertyType {
	out := make([]PropertyType, len(validTypes))
	copy(out, validTypes)
	return out
}

// IsValid reports whether t is one of the known property types.
// AnyType is not a property type.
func (t PropertyType) IsValid() bool {
	for _, v := range validTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Label returns a human-readable label for the type, e.g. "Apartment".
func (t PropertyType) Label() string {
	if t == AnyType {
		return "All Types"
	}
	return cases.Title(language.English).String(string(t))
}

// Listing is a single property available for search and display.
// Values are treated as immutable once they enter a Store.
type Listing struct {
	ID          int64        `json:"id" yaml:"id" validate:"gt=0"`
	Title       string       `json:"title" yaml:"title" validate:"required"`
	Price       int64        `json:"price" yaml:"price" validate:"gte=0"`
	Location    string       `json:"location" yaml:"location" validate:"required"`
	Bedrooms    int          `json:"bedrooms" yaml:"bedrooms" validate:"gte=0"`
	Bathrooms   int          `json:"bathrooms" yaml:"bathrooms" validate:"gte=0"`
	Sqft        int64        `json:"sqft" yaml:"sqft" validate:"gte=0"`
	Type        PropertyType `json:"type" yaml:"type" validate:"property_type"`
	ImageRef    string       `json:"image_ref" yaml:"image_ref"`
	Featured    bool         `json:"featured" yaml:"featured"`
	Description string       `json:"description" yaml:"description"`
	Amenities   []string     `json:"amenities" yaml:"amenities" validate:"dive,required"`
}

// clone returns a copy of l that shares no memory with it.
func (l Listing) clone() Listing {
	if l.Amenities != nil {
		a := make([]string, len(l.Amenities))
		copy(a, l.Amenities)
		l.Amenities = a
	}
	return l
}
