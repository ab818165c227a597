package cmd

import (
	"context"

	"github.com/alvea-app/ax-agent/internal/ax"
	"github.com/alvea-app/ax-agent/internal/output"
	"github.com/alvea-app/ax-agent/internal/platform"
	"github.com/spf13/cobra"
)

// ElementsResult is the output of the elements command.
type ElementsResult struct {
	Elements []ax.Summary `yaml:"elements" json:"elements"`
}

var elementsCmd = &cobra.Command{
	Use:   "elements",
	Short: "List interactive elements of the focused window",
	Long: `Snapshot the focused window's accessibility hierarchy and list its
input-capable elements as flat summaries (role, label, value, x, y).

On platforms without an accessibility backend the list is empty rather than
an error.`,
	RunE: runElements,
}

func init() {
	rootCmd.AddCommand(elementsCmd)
}

func runElements(cmd *cobra.Command, args []string) error {
	summaries, err := fetchUIElements(cmd.Context())
	if err != nil {
		return err
	}
	return output.Print(ElementsResult{Elements: summaries})
}

// fetchUIElements returns summaries of the focused window's interactive
// elements. Unsupported platforms and provider failures both degrade to an
// empty list; only decode-level surprises on a valid payload surface here.
func fetchUIElements(ctx context.Context) ([]ax.Summary, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return []ax.Summary{}, nil
	}

	raw := provider.Hierarchy.Snapshot(ctx, platform.SnapshotOptions{})
	tree, err := ax.Decode(raw)
	if err != nil {
		return []ax.Summary{}, nil
	}
	return ax.Summarize(tree.Roots), nil
}
