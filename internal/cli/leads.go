package cli

import (
	"github.com/spf13/cobra"

	"github.com/zanzibarexplore/tour-desk/internal/leads"
)

func newLeadsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leads",
		Short: "List leads submitted from this machine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLeads()
		},
	}
}

func runLeads() error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	list, err := leads.NewRepository(database).List()
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(list)
	}

	return printLeadTable(list)
}
