package cli

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zanzibarexplore/tour-desk/internal/client"
	"github.com/zanzibarexplore/tour-desk/internal/gallery"
)

func newGalleryCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Browse the photo gallery",
		Long: `Browse the photo gallery, optionally filtered by category.

Examples:
  zet gallery
  zet gallery --category beaches
  zet gallery view 3 --category nature`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(category)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", gallery.CategoryAll, "gallery category (all|beaches|culture|nature|wildlife|...)")

	cmd.AddCommand(
		newGalleryViewCmd(),
		newGalleryCategoriesCmd(),
	)

	return cmd
}

func newGalleryCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List gallery categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			coll := fetchGallery()
			cats := coll.Categories()

			if isJSON() {
				return printJSON(cats)
			}

			for _, cat := range cats {
				fmt.Printf("%-12s %d images\n", cat, len(coll.Filtered(cat)))
			}
			fmt.Printf("%-12s %d images\n", gallery.CategoryAll, coll.Len())
			return nil
		},
	}
}

func newGalleryViewCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "view <number>",
		Short: "View a single gallery image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid image number: %s", args[0])
			}
			return runGalleryView(category, n)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", gallery.CategoryAll, "gallery category to pick from")

	return cmd
}

// fetchGallery loads the gallery, degrading to an empty collection when
// the backend is unreachable.
func fetchGallery() *gallery.Collection {
	c := newAPIClient()
	images, err := c.ListGallery()
	if err != nil {
		slog.Warn("gallery unavailable, showing empty list",
			"error", client.Normalize(err).Message)
		images = nil
	}
	return gallery.NewCollection(images)
}

func runGallery(category string) error {
	coll := fetchGallery()
	items := coll.Filtered(category)

	if isJSON() {
		return printJSON(items)
	}

	return printGalleryTable(category, items, coll.Len())
}

func runGalleryView(category string, n int) error {
	coll := fetchGallery()
	items := coll.Filtered(category)

	if n < 1 || n > len(items) {
		return fmt.Errorf("image %d not found in %s (%d images)", n, gallery.CategoryLabel(category), len(items))
	}

	var focus gallery.Focus
	focus.Set(items[n-1])

	item, _ := focus.Current()
	if isJSON() {
		return printJSON(item)
	}

	fmt.Printf("%s\n  %s\n", gallery.CategoryLabel(item.Category), item.URL)
	return nil
}
