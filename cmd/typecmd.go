package cmd

import (
	"fmt"

	"github.com/alvea-app/ax-agent/internal/actions"
	"github.com/alvea-app/ax-agent/internal/observability"
	"github.com/alvea-app/ax-agent/internal/output"
	"github.com/alvea-app/ax-agent/internal/platform"
	"github.com/spf13/cobra"
)

// TypeResult is the output of a successful type command.
type TypeResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	ID     string `yaml:"id"     json:"id"`
	Result string `yaml:"result" json:"result"`
}

var typeCmd = &cobra.Command{
	Use:   "type [text]",
	Short: "Type text into a UI element",
	Long: `Synthesize text entry on an element identified by --id (an identifier from
a prior snapshot). Text can be passed as a positional argument or via --text.

The native layer's textual result is returned verbatim on success.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runType,
}

func init() {
	rootCmd.AddCommand(typeCmd)
	typeCmd.Flags().String("id", "", "Element identifier from snapshot output (required)")
	typeCmd.Flags().String("text", "", "Text to type (alternative to positional arg)")
}

func runType(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	id, _ := cmd.Flags().GetString("id")
	text, _ := cmd.Flags().GetString("text")
	if len(args) > 0 {
		text = args[0]
	}
	if id == "" {
		return fmt.Errorf("--id is required")
	}
	if text == "" {
		return fmt.Errorf("specify --text or a positional text argument")
	}

	dispatcher := actions.NewDispatcher(provider.Actions, observability.Logger())
	result, err := dispatcher.TypeText(id, text)
	if err != nil {
		return err
	}
	return output.Print(TypeResult{OK: true, ID: id, Result: result})
}
