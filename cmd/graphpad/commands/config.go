package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}

		w := cmd.OutOrStdout()
		if used := v.ConfigFileUsed(); used != "" && readErr == nil {
			fmt.Fprintf(w, "# source: %s\n", used)
		}
		_, err = w.Write(out)
		return err
	},
}
