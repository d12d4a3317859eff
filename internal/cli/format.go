package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/zanzibarexplore/tour-desk/internal/gallery"
	"github.com/zanzibarexplore/tour-desk/internal/leads"
	"github.com/zanzibarexplore/tour-desk/internal/tour"
	"github.com/zanzibarexplore/tour-desk/internal/transfer"
)

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printTourTable prints the derived catalog view as a formatted table,
// the "Showing X of Y" counts, and the categories available for filtering.
func printTourTable(view tour.View, cats []tour.Category) error {
	if len(view.Tours) == 0 {
		fmt.Println("No tours found matching your criteria.")
		fmt.Printf("\nShowing %d of %d tours\n", view.Filtered, view.Total)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tDURATION\tPRICE"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--\t-----\t--------\t--------\t-----"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, t := range view.Tours {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			t.ID, truncate(t.Title, 40), t.Category.Label(), t.Duration, formatPrice(t.Price)); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nShowing %d of %d tours\n", view.Filtered, view.Total)
	if len(cats) > 0 {
		labels := make([]string, len(cats))
		for i, c := range cats {
			labels[i] = string(c)
		}
		fmt.Printf("Categories: %s\n", strings.Join(labels, ", "))
	}
	return nil
}

// printTourDetail prints a single tour in text format.
func printTourDetail(t *tour.Tour) {
	fmt.Printf("%s\n", t.Title)
	fmt.Printf("  ID:        %s\n", t.ID)
	fmt.Printf("  Category:  %s\n", t.Category.Label())
	fmt.Printf("  Duration:  %s\n", t.Duration)
	fmt.Printf("  Price:     %s\n", formatPrice(t.Price))
	if t.Description != "" {
		fmt.Printf("  About:     %s\n", t.Description)
	}
	for _, f := range t.Features {
		fmt.Printf("    - %s\n", f)
	}
	if t.Image != "" {
		fmt.Printf("  Image:     %s\n", t.Image)
	}
}

// printGalleryTable prints gallery items for one category selection.
func printGalleryTable(category string, items []gallery.Item, total int) error {
	if len(items) == 0 {
		fmt.Println("No images found in this category.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "#\tCATEGORY\tURL"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}

	for i, item := range items {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, item.Category, item.URL); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\n%s: %d of %d images\n", gallery.CategoryLabel(category), len(items), total)
	return nil
}

// printVehicleTable prints the transfer fleet as a formatted table.
func printVehicleTable(vehicles []transfer.Vehicle) error {
	if len(vehicles) == 0 {
		fmt.Println("No vehicles available.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "TYPE\tCAPACITY\tPRICE\tFEATURES"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "----\t--------\t-----\t--------"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, v := range vehicles {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
			v.Type, v.Capacity, formatPrice(&v.Price), strings.Join(v.Features, ", ")); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d vehicles\n", len(vehicles))
	return nil
}

// printTourBooking prints a tour booking confirmation in text format.
func printTourBooking(b *tour.Booking) {
	fmt.Printf("Booking %s\n", b.ID)
	fmt.Printf("  Tour:    %s\n", b.TourID)
	fmt.Printf("  Name:    %s\n", b.CustomerName)
	fmt.Printf("  Date:    %s\n", b.BookingDate)
	fmt.Printf("  Guests:  %d\n", b.Guests)
	fmt.Printf("  Status:  %s\n", b.Status)
	if b.SpecialRequests != "" {
		fmt.Printf("  Notes:   %s\n", b.SpecialRequests)
	}
}

// printTransferBooking prints a transfer booking confirmation in text format.
func printTransferBooking(b *transfer.Booking) {
	fmt.Printf("Transfer %s\n", b.ID)
	fmt.Printf("  Name:        %s\n", b.CustomerName)
	fmt.Printf("  Flight:      %s\n", b.FlightNumber)
	fmt.Printf("  Arrival:     %s %s\n", b.ArrivalDate, b.ArrivalTime)
	fmt.Printf("  Passengers:  %d\n", b.Passengers)
	fmt.Printf("  Vehicle:     %s\n", b.VehicleType)
	fmt.Printf("  Destination: %s\n", b.Destination)
	fmt.Printf("  Status:      %s\n", b.Status)
	if b.SpecialRequests != "" {
		fmt.Printf("  Notes:       %s\n", b.SpecialRequests)
	}
}

// printLeadTable prints the local lead log as a formatted table.
func printLeadTable(list []*leads.Lead) error {
	if len(list) == 0 {
		fmt.Println("No leads submitted yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "WHEN\tKIND\tREFERENCE\tSUMMARY"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}

	for _, l := range list {
		ref := l.RemoteID
		if ref == "" {
			ref = "-"
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			l.CreatedAt.Format("2006-01-02 15:04"), l.Kind.Label(), ref, truncate(l.Summary, 50)); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d leads\n", len(list))
	return nil
}

// formatPrice formats a dollar amount with comma grouping. A missing
// price displays as "$0"; that default never enters a payload.
func formatPrice(p *float64) string {
	if p == nil {
		return "$0"
	}

	whole := int64(*p)
	s := strconv.FormatInt(whole, 10)

	if len(s) > 3 {
		var parts []string
		for len(s) > 3 {
			parts = append([]string{s[len(s)-3:]}, parts...)
			s = s[:len(s)-3]
		}
		parts = append([]string{s}, parts...)
		s = strings.Join(parts, ",")
	}

	if cents := *p - float64(whole); cents >= 0.005 {
		return fmt.Sprintf("$%s.%02d", s, int(cents*100+0.5))
	}
	return "$" + s
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
