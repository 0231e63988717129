// Package client provides an HTTP client for the propertyhub REST API.
package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/evcraddock/propertyhub/internal/listing"
)

// Client is an HTTP client for the propertyhub API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client. A trailing slash on baseURL is ignored.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SearchResult is the response from GET /api/listings.
type SearchResult struct {
	Count    int               `json:"count"`
	Summary  string            `json:"summary"`
	Listings []listing.Listing `json:"listings"`
}

// Detail is the response from GET /api/listings/{id}.
type Detail struct {
	Listing listing.Listing   `json:"listing"`
	Related []listing.Listing `json:"related"`
}

// StatusError is returned when the server answers with an error status.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

// Search returns the listings matching c. Constraints left at their
// default are not sent.
func (c *Client) Search(criteria listing.Criteria) (*SearchResult, error) {
	q := url.Values{}
	if criteria.Location != "" {
		q.Set("location", criteria.Location)
	}
	if criteria.Type != listing.AnyType {
		q.Set("type", string(criteria.Type))
	}
	if criteria.MinPrice != 0 {
		q.Set("min_price", strconv.FormatInt(criteria.MinPrice, 10))
	}
	if criteria.MaxPrice != listing.NoMaxPrice {
		q.Set("max_price", strconv.FormatInt(criteria.MaxPrice, 10))
	}
	if criteria.MinBedrooms != 0 {
		q.Set("min_bedrooms", strconv.Itoa(criteria.MinBedrooms))
	}
	if criteria.MinBathrooms != 0 {
		q.Set("min_bathrooms", strconv.Itoa(criteria.MinBathrooms))
	}
	if criteria.MinSqft != 0 {
		q.Set("min_sqft", strconv.FormatInt(criteria.MinSqft, 10))
	}

	path := "/api/listings"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var result SearchResult
	if err := c.get(path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get returns a listing with its related listings. An unknown ID yields an
// error wrapping listing.ErrNotFound.
func (c *Client) Get(id int64) (*Detail, error) {
	var d Detail
	err := c.get(fmt.Sprintf("/api/listings/%d", id), &d)
	var se *StatusError
	if errors.As(err, &se) && se.Code == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %d", listing.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Recent returns the first limit listings.
func (c *Client) Recent(limit int) ([]listing.Listing, error) {
	var listings []listing.Listing
	if err := c.get(fmt.Sprintf("/api/listings/recent?limit=%d", limit), &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// Featured returns the featured listings.
func (c *Client) Featured() ([]listing.Listing, error) {
	var listings []listing.Listing
	if err := c.get("/api/listings/featured", &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// Types returns the property types the server knows.
func (c *Client) Types() ([]listing.PropertyType, error) {
	var types []listing.PropertyType
	if err := c.get("/api/types", &types); err != nil {
		return nil, err
	}
	return types, nil
}

// get performs a GET request and decodes the response.
func (c *Client) get(path string, result interface{}) error {
	req, err := http.NewRequest("GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req, result)
}

// do executes an HTTP request and handles errors.
func (c *Client) do(req *http.Request, result interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			slog.Warn("closing response body", "error", cerr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		msg := "server error: " + http.StatusText(resp.StatusCode)
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			msg = errResp.Error
		}
		return &StatusError{Code: resp.StatusCode, Message: msg}
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
