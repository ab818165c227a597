//go:build darwin

package cmd

// Pull in the macOS backend so its init() registers with the platform
// package. Other platforms leave the registry empty and commands degrade.
import _ "github.com/alvea-app/ax-agent/internal/platform/darwin"
