//go:build darwin && cgo

package darwin

import "github.com/alvea-app/ax-agent/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Hierarchy: NewHierarchyClient(),
			Actions:   NewActionClient(),
		}, nil
	}
	platform.RequestPermissionsFunc = RequestAccessibilityPermission
}
