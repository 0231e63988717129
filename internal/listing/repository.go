package listing

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// Repository stores listings in SQLite. It backs a MemoryStore; the
// filtering engine never queries it directly.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a listing repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const importSQL = `INSERT INTO listings
	(id, title, price, location, bedrooms, bathrooms, sqft, property_type, image_ref, featured, description, amenities_json)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO NOTHING`

const selectColumns = `id, title, price, location, bedrooms, bathrooms, sqft, property_type, image_ref, featured, description, amenities_json`

// scanListing scans a listing from a database row.
func scanListing(row interface{ Scan(...interface{}) error }) (*Listing, error) {
	var l Listing
	var propertyType, amenities string

	err := row.Scan(
		&l.ID, &l.Title, &l.Price, &l.Location,
		&l.Bedrooms, &l.Bathrooms, &l.Sqft, &propertyType,
		&l.ImageRef, &l.Featured, &l.Description, &amenities,
	)
	if err != nil {
		return nil, err
	}

	l.Type = PropertyType(propertyType)
	if err := json.Unmarshal([]byte(amenities), &l.Amenities); err != nil {
		return nil, fmt.Errorf("decoding amenities for listing %d: %w", l.ID, err)
	}

	return &l, nil
}

// importArgs returns the insert parameters for l.
func importArgs(l *Listing) ([]interface{}, error) {
	amenities := l.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	data, err := json.Marshal(amenities)
	if err != nil {
		return nil, fmt.Errorf("encoding amenities: %w", err)
	}

	return []interface{}{
		l.ID, l.Title, l.Price, l.Location,
		l.Bedrooms, l.Bathrooms, l.Sqft, string(l.Type),
		l.ImageRef, l.Featured, l.Description, string(data),
	}, nil
}

// Import inserts listings in a single transaction, keeping their IDs.
// Listings whose ID is already stored are skipped, so importing the same
// fixture twice is harmless. It returns how many rows were inserted.
func (r *Repository) Import(listings []Listing) (n int, err error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("starting import: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("%w (also failed to roll back: %v)", err, rbErr)
			}
		}
	}()

	stmt, err := tx.Prepare(importSQL)
	if err != nil {
		return 0, fmt.Errorf("preparing import: %w", err)
	}
	defer func() {
		if closeErr := stmt.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing statement: %w", closeErr)
		}
	}()

	for i := range listings {
		args, err := importArgs(&listings[i])
		if err != nil {
			return 0, fmt.Errorf("listing %d: %w", listings[i].ID, err)
		}
		result, err := stmt.Exec(args...)
		if err != nil {
			return 0, fmt.Errorf("importing listing %d: %w", listings[i].ID, err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("checking rows affected: %w", err)
		}
		n += int(rows)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing import: %w", err)
	}

	return n, nil
}

// List returns every listing in insertion order.
func (r *Repository) List() (listings []Listing, err error) {
	query := fmt.Sprintf("SELECT %s FROM listings ORDER BY id", selectColumns)

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("querying listings: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning listing: %w", err)
		}
		listings = append(listings, *l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating listings: %w", err)
	}

	return listings, nil
}

// Count returns the number of stored listings.
func (r *Repository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM listings").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting listings: %w", err)
	}
	return n, nil
}
