package listing

import "testing"

func TestPropertyTypeIsValid(t *testing.T) {
	tests := []struct {
		typ  PropertyType
		want bool
	}{
		{Apartment, true},
		{House, true},
		{Condo, true},
		{Villa, true},
		{AnyType, false},
		{"", false},
		{"Condo", false},
		{"castle", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			if got := tt.typ.IsValid(); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.typ, got, tt.want)
			}
		})
	}
}

func TestPropertyTypeLabel(t *testing.T) {
	tests := []struct {
		typ  PropertyType
		want string
	}{
		{Apartment, "Apartment"},
		{Villa, "Villa"},
		{AnyType, "All Types"},
	}

	for _, tt := range tests {
		if got := tt.typ.Label(); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestTypesReturnsCopy(t *testing.T) {
	types := Types()
	types[0] = "castle"

	if Types()[0] != Apartment {
		t.Error("Types exposes package state")
	}
}

func TestClone(t *testing.T) {
	l := Listing{ID: 1, Amenities: []string{"Pool"}}
	c := l.clone()
	c.Amenities[0] = "Gym"

	if l.Amenities[0] != "Pool" {
		t.Error("clone shares amenities")
	}

	if (Listing{}).clone().Amenities != nil {
		t.Error("clone of nil amenities should stay nil")
	}
}
