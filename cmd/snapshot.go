package cmd

import (
	"fmt"
	"os"

	"github.com/alvea-app/ax-agent/internal/platform"
	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print a raw accessibility hierarchy payload",
	Long: `Fetch one serialized accessibility snapshot and print it verbatim.

The payload is the provider's own JSON: either a tree or a structured
{"error": "..."} object. Useful for piping into 'render' or for debugging
the native bridge. Optional --app and --window scope the snapshot.`,
	RunE: runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.Flags().String("app", "", "Filter by application name")
	snapshotCmd.Flags().String("window", "", "Filter by window title")
	snapshotCmd.Flags().String("out", "", "Write payload to file instead of stdout")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	app, _ := cmd.Flags().GetString("app")
	window, _ := cmd.Flags().GetString("window")
	outPath, _ := cmd.Flags().GetString("out")

	raw := getAccessibilitySnapshot(cmd, app, window)

	if outPath != "" {
		if err := os.WriteFile(outPath, []byte(raw), 0644); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
		return nil
	}
	_, err := fmt.Fprintln(os.Stdout, raw)
	return err
}

// getAccessibilitySnapshot returns the raw provider payload, degrading to a
// structured error string when no backend is available.
func getAccessibilitySnapshot(cmd *cobra.Command, app, window string) string {
	provider, err := platform.NewProvider()
	if err != nil {
		return platform.ErrorPayload(err.Error())
	}
	return provider.Hierarchy.Snapshot(cmd.Context(), platform.SnapshotOptions{App: app, Window: window})
}
