//go:build darwin

// Package darwin bridges the native accessibility hierarchy and action
// providers on macOS. The native entry points live in the bundled axbridge
// library; everything here requires CGo. When CGo is disabled the package
// is empty and the platform registry stays unset.
package darwin
