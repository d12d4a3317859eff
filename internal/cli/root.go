// Package cli defines the cobra command tree for tour-desk.
package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zanzibarexplore/tour-desk/internal/client"
	"github.com/zanzibarexplore/tour-desk/internal/db"
	"github.com/zanzibarexplore/tour-desk/internal/logging"
)

var (
	flagFormat  string
	flagDB      string
	flagVerbose bool
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "zet",
		Short:         "Browse Zanzibar Explore Tours and send booking requests",
		Long:          "A client for the Zanzibar Explore Tours backend. Browse tours, the photo gallery, and the transfer fleet; send tour bookings, airport transfer bookings, and contact messages.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(flagVerbose)
		},
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagDB, "db", "", "lead log database path (default: ~/.config/zet/leads.db)")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose logging")

	root.AddCommand(
		newToursCmd(),
		newTourCmd(),
		newGalleryCmd(),
		newVehiclesCmd(),
		newBookCmd(),
		newBookingCmd(),
		newTransferCmd(),
		newContactCmd(),
		newLeadsCmd(),
		newWhatsAppCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return root
}

// newAPIClient creates an HTTP client for the tours backend.
func newAPIClient() *client.Client {
	return client.New(getBackendURL())
}

// openDB opens the lead log database using the --db flag or default path.
func openDB() (*sql.DB, error) {
	path := flagDB
	if path == "" {
		var err error
		path, err = db.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return db.Open(path)
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// closeDB closes the database, logging any error to stderr.
func closeDB(database *sql.DB) {
	if err := database.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing database: %v\n", err)
	}
}
