package cli

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/npillmayer/latinga/uzbek"
	"github.com/spf13/cobra"
)

// version is set by ldflags at build time.
var version = "dev"

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := map[string]string{
			"name":    "latinga",
			"version": version,
			"presets": uzbek.DefaultPresets.String(),
		}
		out, _ := json.MarshalIndent(info, "", "  ")
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	},
}
