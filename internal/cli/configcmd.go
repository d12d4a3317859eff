package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change CLI configuration",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if isJSON() {
					return printJSON(map[string]string{
						"backend_url": getBackendURL(),
						"whatsapp":    getWhatsApp(),
					})
				}
				fmt.Printf("Backend URL: %s\n", getBackendURL())
				fmt.Printf("WhatsApp:    %s\n", getWhatsApp())
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Set a configuration value (backend-url or whatsapp)",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runConfigSet(args[0], args[1])
			},
		},
	)

	return cmd
}

func runConfigSet(key, value string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	switch key {
	case "backend-url":
		cfg.BackendURL = value
	case "whatsapp":
		cfg.WhatsApp = value
	default:
		return fmt.Errorf("unknown config key %q (use backend-url or whatsapp)", key)
	}

	if err := saveConfig(cfg); err != nil {
		return err
	}

	fmt.Printf("%s set to %s\n", key, value)
	return nil
}
