package cmd

import (
	"fmt"
	"os"

	"github.com/alvea-app/ax-agent/internal/config"
	"github.com/alvea-app/ax-agent/internal/observability"
	"github.com/alvea-app/ax-agent/internal/output"
	"github.com/alvea-app/ax-agent/internal/platform"
	"github.com/alvea-app/ax-agent/internal/version"
	"github.com/spf13/cobra"
)

// cfg is the loaded agent configuration, available to all subcommands after
// PersistentPreRunE.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "ax-agent",
	Short: "Poll and act on the macOS accessibility tree",
	Long: "Alvea's accessibility agent: snapshots the OS accessibility hierarchy, tracks the\n" +
		"most recent foreign application context, detects text selections, and performs\n" +
		"typing or named accessibility actions on elements.",
}

func Execute() {
	defer observability.Sync()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("config", "", "Path to config file (yaml)")
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().String("log-level", "", "Override logger.level from config")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		configPath, _ := rootCmd.PersistentFlags().GetString("config")
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if level, _ := rootCmd.PersistentFlags().GetString("log-level"); level != "" {
			loaded.Logger.Level = level
		}
		cfg = loaded

		observability.Initialize(cfg.Logger)

		if platform.RequestPermissionsFunc != nil {
			platform.RequestPermissionsFunc()
		}

		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		if pretty, _ := rootCmd.PersistentFlags().GetBool("pretty"); pretty {
			output.PrettyOutput = true
		}
		return nil
	}
}
