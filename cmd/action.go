package cmd

import (
	"fmt"

	"github.com/alvea-app/ax-agent/internal/actions"
	"github.com/alvea-app/ax-agent/internal/observability"
	"github.com/alvea-app/ax-agent/internal/output"
	"github.com/alvea-app/ax-agent/internal/platform"
	"github.com/spf13/cobra"
)

// ActionResult is the output of a successful action command.
type ActionResult struct {
	OK   bool   `yaml:"ok"   json:"ok"`
	ID   string `yaml:"id"   json:"id"`
	Name string `yaml:"name" json:"name"`
}

var actionCmd = &cobra.Command{
	Use:   "action",
	Short: "Invoke a named accessibility action on a UI element",
	Long: `Invoke an accessibility action (e.g. AXPress, AXShowMenu) directly on an
element identified by --id. Action names are the ones listed in the
element's 'm' field in snapshot output.

This does not simulate mouse events; the action is performed on the element
itself, which works even for off-screen or occluded elements.`,
	RunE: runNamedAction,
}

func init() {
	rootCmd.AddCommand(actionCmd)
	actionCmd.Flags().String("id", "", "Element identifier from snapshot output (required)")
	actionCmd.Flags().String("name", "", "Action name to invoke (required)")
}

func runNamedAction(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	id, _ := cmd.Flags().GetString("id")
	name, _ := cmd.Flags().GetString("name")
	if id == "" {
		return fmt.Errorf("--id is required")
	}
	if name == "" {
		return fmt.Errorf("--name is required")
	}

	dispatcher := actions.NewDispatcher(provider.Actions, observability.Logger())
	if err := dispatcher.InvokeNamed(id, name); err != nil {
		return err
	}
	return output.Print(ActionResult{OK: true, ID: id, Name: name})
}
