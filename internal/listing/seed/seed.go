// Package seed loads and validates listing fixtures.
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/evcraddock/propertyhub/internal/listing"
)

//go:embed listings.yaml
var defaultFixture []byte

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("property_type", func(fl validator.FieldLevel) bool {
		return listing.PropertyType(fl.Field().String()).IsValid()
	}); err != nil {
		panic(err)
	}
}

// typeNames lists the known property types, space separated.
func typeNames() string {
	types := listing.Types()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, " ")
}

type fixture struct {
	Listings []listing.Listing `yaml:"listings" validate:"dive"`
}

// Load returns the built-in launch catalog.
func Load() ([]listing.Listing, error) {
	return Parse(defaultFixture)
}

// LoadFile reads a fixture from a YAML file.
func LoadFile(path string) ([]listing.Listing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}

	listings, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return listings, nil
}

// Parse decodes and validates a YAML fixture. Every listing must be well
// formed and IDs must be unique.
func Parse(data []byte) ([]listing.Listing, error) {
	var f fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}

	if err := validateFixture(&f); err != nil {
		return nil, err
	}

	seen := make(map[int64]bool, len(f.Listings))
	for _, l := range f.Listings {
		if seen[l.ID] {
			return nil, fmt.Errorf("duplicate listing id %d", l.ID)
		}
		seen[l.ID] = true
	}

	return f.Listings, nil
}

// validateFixture checks struct constraints and joins every violation into
// one error.
func validateFixture(f *fixture) error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("validating fixture: %w", err)
	}

	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		field := strings.TrimPrefix(e.Namespace(), "fixture.")
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "property_type":
			msgs = append(msgs, fmt.Sprintf("%s %q not recognized, only support %q", field, e.Value(), typeNames()))
		case "gt", "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be %s %s, got %v", field, e.Tag(), e.Param(), e.Value()))
		default:
			msgs = append(msgs, e.Error())
		}
	}
	return fmt.Errorf("invalid fixture: %s", strings.Join(msgs, " and "))
}
