// Package actions translates element-targeted commands into native action
// calls and converts the native string-or-null results into typed errors.
package actions

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alvea-app/ax-agent/internal/platform"
	"go.uber.org/zap"
)

// ErrActionFailed indicates the native call returned no result at all.
var ErrActionFailed = errors.New("action failed")

// RejectionError carries the native layer's own failure message for an
// action it performed but did not accept.
type RejectionError struct {
	Message string
}

func (e *RejectionError) Error() string {
	return e.Message
}

// Dispatcher performs typing and named actions on elements identified in a
// prior snapshot.
type Dispatcher struct {
	actions platform.Actions
	log     *zap.Logger
}

// NewDispatcher creates a dispatcher over the platform action backend.
func NewDispatcher(actions platform.Actions, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{actions: actions, log: log}
}

// TypeText synthesizes text entry on the element and returns the native
// textual result verbatim. A null native result is ErrActionFailed.
func (d *Dispatcher) TypeText(elementID, text string) (string, error) {
	if elementID == "" {
		return "", fmt.Errorf("element id is required")
	}
	d.log.Debug("typing action", zap.String("element", elementID), zap.Int("text_len", len(text)))

	result, ok := d.actions.TypeAction(elementID, text)
	if !ok {
		return "", fmt.Errorf("perform typing action on %s: %w", elementID, ErrActionFailed)
	}
	return result, nil
}

// InvokeNamed performs an arbitrary named accessibility action on the
// element. A null native result is ErrActionFailed; a non-null result
// without the success marker is a RejectionError carrying the native
// message.
func (d *Dispatcher) InvokeNamed(elementID, actionName string) error {
	if elementID == "" {
		return fmt.Errorf("element id is required")
	}
	if actionName == "" {
		return fmt.Errorf("action name is required")
	}
	d.log.Debug("named action", zap.String("element", elementID), zap.String("action", actionName))

	result, ok := d.actions.NamedAction(elementID, actionName)
	if !ok {
		return fmt.Errorf("perform action %q on %s: %w", actionName, elementID, ErrActionFailed)
	}
	return parseActionResult(result)
}

// parseActionResult is the single place that knows the native layer signals
// success by substring. Inherited contract; harden here if the native side
// ever grows a structured reply.
func parseActionResult(result string) error {
	if strings.Contains(result, "success") {
		return nil
	}
	return &RejectionError{Message: result}
}
