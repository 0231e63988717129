package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/evcraddock/propertyhub/internal/listing"
)

// SearchResponse is the body of GET /api/listings.
type SearchResponse struct {
	Count    int               `json:"count"`
	Summary  string            `json:"summary"`
	Listings []listing.Listing `json:"listings"`
}

// DetailResponse is the body of GET /api/listings/{id}.
type DetailResponse struct {
	Listing listing.Listing   `json:"listing"`
	Related []listing.Listing `json:"related"`
}

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	resp := map[string]string{"error": msg}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

func (s *Server) apiTypes(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, s.store.ValidTypes(), http.StatusOK)
}

// apiSearch filters the store by the query parameters.
func (s *Server) apiSearch(w http.ResponseWriter, r *http.Request) {
	c, err := parseCriteria(r.URL.Query())
	if err != nil {
		apiError(w, err.Error(), http.StatusBadRequest)
		return
	}

	results := listing.Filter(s.store.All(), c)
	s.metrics.observeSearch(len(results))

	apiJSON(w, SearchResponse{
		Count:    len(results),
		Summary:  listing.Summary(len(results), c),
		Listings: results,
	}, http.StatusOK)
}

// parseCriteria builds criteria from query parameters. Absent parameters
// keep their default, so an empty query matches everything.
func parseCriteria(q url.Values) (listing.Criteria, error) {
	c := listing.DefaultCriteria()
	c.Location = q.Get("location")
	if t := q.Get("type"); t != "" {
		c.Type = listing.PropertyType(t)
	}

	int64Params := []struct {
		name string
		dst  *int64
	}{
		{"min_price", &c.MinPrice},
		{"max_price", &c.MaxPrice},
		{"min_sqft", &c.MinSqft},
	}
	for _, p := range int64Params {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("%s must be an integer", p.name)
		}
		*p.dst = n
	}

	intParams := []struct {
		name string
		dst  *int
	}{
		{"min_bedrooms", &c.MinBedrooms},
		{"min_bathrooms", &c.MinBathrooms},
	}
	for _, p := range intParams {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%s must be an integer", p.name)
		}
		*p.dst = n
	}

	return c, nil
}

type recentQuery struct {
	Limit int `validate:"gte=1,lte=100"`
}

func (s *Server) apiRecent(w http.ResponseWriter, r *http.Request) {
	q := recentQuery{Limit: listing.DefaultRecentCount}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			apiError(w, "limit must be an integer", http.StatusBadRequest)
			return
		}
		q.Limit = n
	}
	if err := s.validate.Struct(q); err != nil {
		apiError(w, "limit must be between 1 and 100", http.StatusBadRequest)
		return
	}

	apiJSON(w, listing.Recent(s.store.All(), q.Limit), http.StatusOK)
}

func (s *Server) apiFeatured(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, listing.Featured(s.store.All()), http.StatusOK)
}

// apiGetListing returns one listing with others of the same type.
func (s *Server) apiGetListing(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		apiError(w, "invalid listing ID", http.StatusBadRequest)
		return
	}

	l, ok := s.store.FindByID(id)
	if !ok {
		apiError(w, "listing not found", http.StatusNotFound)
		return
	}

	apiJSON(w, DetailResponse{
		Listing: l,
		Related: listing.Related(s.store.All(), l, listing.DefaultRelatedCount),
	}, http.StatusOK)
}
