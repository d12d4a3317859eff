package cli

import (
	"fmt"
	"log/slog"

	"github.com/zanzibarexplore/tour-desk/internal/leads"
)

// notifier adapts form notices to CLI output. Failures are not printed
// here: Submit's returned error carries the same normalized message and
// is printed once by main.
type notifier struct{}

func (notifier) Success(title, detail string) {
	fmt.Printf("%s\n%s\n", title, detail)
}

func (notifier) Failure(string, string) {}

// recordLead appends a submitted lead to the local log. Logging failures
// must never fail a submission that the backend already accepted, so they
// only produce a warning.
func recordLead(kind leads.Kind, remoteID, summary string) {
	database, err := openDB()
	if err != nil {
		slog.Warn("lead log unavailable", "error", err)
		return
	}
	defer closeDB(database)

	if _, err := leads.NewRepository(database).Add(kind, remoteID, summary); err != nil {
		slog.Warn("recording lead", "error", err)
	}
}
