// Package client provides the HTTP client for the Zanzibar Explore Tours
// backend API. It is the single choke point for network access: every
// call is one best-effort request with no retries and no caching.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/zanzibarexplore/tour-desk/internal/contact"
	"github.com/zanzibarexplore/tour-desk/internal/tour"
	"github.com/zanzibarexplore/tour-desk/internal/transfer"
)

// Client is an HTTP client for the tours backend API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the backend at root. The fixed "/api" suffix is
// appended here; callers configure only the root URL.
func New(root string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(root, "/") + "/api",
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ListTours returns all tour packages.
func (c *Client) ListTours() ([]tour.Tour, error) {
	var tours []tour.Tour
	if err := c.get("/tours/", &tours); err != nil {
		return nil, err
	}
	return tours, nil
}

// GetTour returns a single tour by ID.
func (c *Client) GetTour(id string) (*tour.Tour, error) {
	var t tour.Tour
	if err := c.get("/tours/"+url.PathEscape(id), &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// ListToursByCategory returns the tours in one category.
func (c *Client) ListToursByCategory(category string) ([]tour.Tour, error) {
	var tours []tour.Tour
	if err := c.get("/tours/category/"+url.PathEscape(category), &tours); err != nil {
		return nil, err
	}
	return tours, nil
}

// CreateTourBooking submits a tour booking request and returns the
// backend's confirmation.
func (c *Client) CreateTourBooking(req tour.BookingRequest) (*tour.Booking, error) {
	var b tour.Booking
	if err := c.post("/tours/bookings", req, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// GetTourBooking returns a previously submitted tour booking.
func (c *Client) GetTourBooking(id string) (*tour.Booking, error) {
	var b tour.Booking
	if err := c.get("/tours/bookings/"+url.PathEscape(id), &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// ListGallery returns all gallery images grouped by category.
func (c *Client) ListGallery() (map[string][]string, error) {
	var images map[string][]string
	if err := c.get("/gallery/", &images); err != nil {
		return nil, err
	}
	return images, nil
}

// ListGalleryByCategory returns the image URLs in one gallery category.
func (c *Client) ListGalleryByCategory(category string) ([]string, error) {
	var urls []string
	if err := c.get("/gallery/category/"+url.PathEscape(category), &urls); err != nil {
		return nil, err
	}
	return urls, nil
}

// ListVehicles returns the available transfer vehicles.
func (c *Client) ListVehicles() ([]transfer.Vehicle, error) {
	var vehicles []transfer.Vehicle
	if err := c.get("/transfers/vehicles", &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// CreateTransferBooking submits an airport transfer booking request.
func (c *Client) CreateTransferBooking(req transfer.BookingRequest) (*transfer.Booking, error) {
	var b transfer.Booking
	if err := c.post("/transfers/bookings", req, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// GetTransferBooking returns a previously submitted transfer booking.
func (c *Client) GetTransferBooking(id string) (*transfer.Booking, error) {
	var b transfer.Booking
	if err := c.get("/transfers/bookings/"+url.PathEscape(id), &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateContact submits a contact inquiry.
func (c *Client) CreateContact(msg contact.Message) (*contact.Receipt, error) {
	var r contact.Receipt
	if err := c.post("/contact/", msg, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// get performs a GET request and decodes the response.
func (c *Client) get(path string, result interface{}) error {
	req, err := http.NewRequest("GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, result)
}

// post performs a POST request with a JSON body and decodes the response.
func (c *Client) post(path string, body interface{}, result interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, result)
}

// do executes an HTTP request and decodes the response body. Responses
// with status >= 400 become an *APIError carrying the backend's detail
// message.
func (c *Client) do(req *http.Request, result interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			fmt.Printf("warning: closing response body: %v\n", cerr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return responseError(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
