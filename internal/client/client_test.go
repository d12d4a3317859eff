package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/zanzibarexplore/tour-desk/internal/contact"
	"github.com/zanzibarexplore/tour-desk/internal/tour"
	"github.com/zanzibarexplore/tour-desk/internal/transfer"
)

func TestNewAppendsAPIPrefix(t *testing.T) {
	c := New("http://localhost:8000")
	if c.baseURL != "http://localhost:8000/api" {
		t.Errorf("baseURL = %q", c.baseURL)
	}

	// A trailing slash on the root must not double up.
	c = New("http://localhost:8000/")
	if c.baseURL != "http://localhost:8000/api" {
		t.Errorf("baseURL = %q with trailing slash", c.baseURL)
	}
}

func TestListTours(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tours/" {
			t.Errorf("path = %s, want /api/tours/", r.URL.Path)
		}
		if r.Method != "GET" {
			t.Errorf("method = %s, want GET", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"_id":"1","title":"Safari Blue","category":"water","price":85},
			{"_id":"2","title":"Stone Town Walk","category":"cultural"}
		]`))
	}))
	defer server.Close()

	tours, err := New(server.URL).ListTours()
	if err != nil {
		t.Fatalf("ListTours: %v", err)
	}
	if len(tours) != 2 {
		t.Fatalf("got %d tours, want 2", len(tours))
	}
	if tours[0].ID != "1" || tours[0].Title != "Safari Blue" {
		t.Errorf("first tour = %+v", tours[0])
	}
	if tours[0].Price == nil || *tours[0].Price != 85 {
		t.Errorf("first tour price = %v", tours[0].Price)
	}
	if tours[1].Price != nil {
		t.Errorf("second tour price = %v, want nil", *tours[1].Price)
	}
}

func TestGetTour(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tours/abc123" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"_id":"abc123","title":"Safari Blue","category":"water"}`))
	}))
	defer server.Close()

	tr, err := New(server.URL).GetTour("abc123")
	if err != nil {
		t.Fatalf("GetTour: %v", err)
	}
	if tr.ID != "abc123" {
		t.Errorf("id = %q", tr.ID)
	}
}

func TestGetTourNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Tour not found"}`))
	}))
	defer server.Close()

	_, err := New(server.URL).GetTour("missing")
	if err == nil {
		t.Fatal("expected error")
	}

	apiErr := Normalize(err)
	if apiErr.Message != "Tour not found" || apiErr.Status != 404 {
		t.Errorf("normalized = %+v", apiErr)
	}
}

func TestListToursByCategory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tours/category/cultural" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"_id":"2","title":"Stone Town Walk","category":"cultural"}]`))
	}))
	defer server.Close()

	tours, err := New(server.URL).ListToursByCategory("cultural")
	if err != nil {
		t.Fatalf("ListToursByCategory: %v", err)
	}
	if len(tours) != 1 {
		t.Errorf("got %d tours, want 1", len(tours))
	}
}

func TestCreateTourBooking(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tours/bookings" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.Method != "POST" {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %s", ct)
		}

		var req tour.BookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if req.TourID != "1" || req.CustomerName != "Asha Juma" || req.Guests != 2 {
			t.Errorf("request = %+v", req)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"_id":"bk-1","tour_id":"1","customer_name":"Asha Juma","guests":2,"status":"pending"}`))
	}))
	defer server.Close()

	booking, err := New(server.URL).CreateTourBooking(tour.BookingRequest{
		TourID:       "1",
		CustomerName: "Asha Juma",
		Email:        "asha@example.com",
		Phone:        "+255700000001",
		BookingDate:  "2026-09-10",
		Guests:       2,
	})
	if err != nil {
		t.Fatalf("CreateTourBooking: %v", err)
	}
	if booking.ID != "bk-1" || booking.Status != tour.BookingPending {
		t.Errorf("booking = %+v", booking)
	}
}

func TestGetTourBooking(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tours/bookings/bk-1" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"_id":"bk-1","tour_id":"1","status":"confirmed"}`))
	}))
	defer server.Close()

	booking, err := New(server.URL).GetTourBooking("bk-1")
	if err != nil {
		t.Fatalf("GetTourBooking: %v", err)
	}
	if booking.Status != tour.BookingConfirmed {
		t.Errorf("status = %s", booking.Status)
	}
}

func TestListGallery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/gallery/" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"beaches":["https://img.example/b1"],"nature":["https://img.example/n1","https://img.example/n2"]}`))
	}))
	defer server.Close()

	images, err := New(server.URL).ListGallery()
	if err != nil {
		t.Fatalf("ListGallery: %v", err)
	}
	if len(images["nature"]) != 2 {
		t.Errorf("nature = %v", images["nature"])
	}
}

func TestListGalleryByCategory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/gallery/category/beaches" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`["https://img.example/b1","https://img.example/b2"]`))
	}))
	defer server.Close()

	urls, err := New(server.URL).ListGalleryByCategory("beaches")
	if err != nil {
		t.Fatalf("ListGalleryByCategory: %v", err)
	}
	if len(urls) != 2 {
		t.Errorf("got %d urls, want 2", len(urls))
	}
}

func TestListVehicles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/transfers/vehicles" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"type":"sedan","capacity":3,"price":25,"features":["AC"]}]`))
	}))
	defer server.Close()

	vehicles, err := New(server.URL).ListVehicles()
	if err != nil {
		t.Fatalf("ListVehicles: %v", err)
	}
	if len(vehicles) != 1 || vehicles[0].Type != "sedan" || vehicles[0].Capacity != 3 {
		t.Errorf("vehicles = %+v", vehicles)
	}
}

func TestCreateTransferBooking(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/transfers/bookings" {
			t.Errorf("path = %s", r.URL.Path)
		}

		var req transfer.BookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if req.FlightNumber != "KQ482" || req.Passengers != 4 {
			t.Errorf("request = %+v", req)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"_id":"tr-1","flight_number":"KQ482","status":"pending"}`))
	}))
	defer server.Close()

	booking, err := New(server.URL).CreateTransferBooking(transfer.BookingRequest{
		CustomerName: "Asha Juma",
		Email:        "asha@example.com",
		Phone:        "+255700000001",
		FlightNumber: "KQ482",
		ArrivalDate:  "2026-09-10",
		ArrivalTime:  "14:30",
		Passengers:   4,
		VehicleType:  "minivan",
		Destination:  "Nungwi",
	})
	if err != nil {
		t.Fatalf("CreateTransferBooking: %v", err)
	}
	if booking.ID != "tr-1" {
		t.Errorf("booking = %+v", booking)
	}
}

func TestCreateContact(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/contact/" {
			t.Errorf("path = %s", r.URL.Path)
		}

		var msg contact.Message
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if msg.Subject != "Honeymoon trip" || msg.Body != "Planning for December." {
			t.Errorf("message = %+v", msg)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"_id":"ct-1","status":"new"}`))
	}))
	defer server.Close()

	receipt, err := New(server.URL).CreateContact(contact.Message{
		Name:    "Asha Juma",
		Email:   "asha@example.com",
		Subject: "Honeymoon trip",
		Body:    "Planning for December.",
	})
	if err != nil {
		t.Fatalf("CreateContact: %v", err)
	}
	if receipt.ID != "ct-1" || receipt.Status != contact.StatusNew {
		t.Errorf("receipt = %+v", receipt)
	}
}

func TestServerErrorWithoutDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	_, err := New(server.URL).ListTours()
	if err == nil {
		t.Fatal("expected error")
	}

	apiErr := Normalize(err)
	if apiErr.Message != "An error occurred" || apiErr.Status != 500 {
		t.Errorf("normalized = %+v", apiErr)
	}
}
