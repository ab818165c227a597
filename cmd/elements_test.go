package cmd

import (
	"context"
	"testing"

	"github.com/alvea-app/ax-agent/internal/platform"
)

func TestFetchUIElements_UnsupportedPlatform(t *testing.T) {
	saved := platform.NewProviderFunc
	platform.NewProviderFunc = nil
	defer func() { platform.NewProviderFunc = saved }()

	summaries, err := fetchUIElements(context.Background())
	if err != nil {
		t.Fatalf("fetchUIElements: %v", err)
	}
	if summaries == nil {
		t.Fatal("summaries must be an empty slice, not nil")
	}
	if len(summaries) != 0 {
		t.Errorf("got %d summaries, want 0", len(summaries))
	}
}
