package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/alvea-app/ax-agent/internal/observability"
	"github.com/alvea-app/ax-agent/internal/platform"
	"github.com/alvea-app/ax-agent/internal/poller"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the polling loop and stream tick summaries as JSONL",
	Long: `Start the accessibility polling loop in the foreground and emit one JSON
line per tick: the tracked application, input-element count, and any
detected text-selection overlay candidates.

Output is always JSONL regardless of --format.

Use Ctrl+C or --duration to stop watching.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().Int("interval", 0, "Polling interval in milliseconds (default from config)")
	watchCmd.Flags().Int("duration", 0, "Max seconds to watch (0 = until Ctrl+C)")
	watchCmd.Flags().Bool("quiet", false, "Only emit ticks with overlay candidates")
}

func runWatch(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	intervalMs, _ := cmd.Flags().GetInt("interval")
	durationSec, _ := cmd.Flags().GetInt("duration")
	quiet, _ := cmd.Flags().GetBool("quiet")

	interval := cfg.Poll.Interval
	if intervalMs > 0 {
		interval = time.Duration(intervalMs) * time.Millisecond
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	var encMu sync.Mutex

	store := poller.NewSelectionStore()
	p := poller.New(provider.Hierarchy, store, interval, cfg.Agent.SelfName, observability.Logger())

	eventCount := 0
	p.OnTick = func(tick poller.Tick) {
		if quiet && len(tick.Candidates) == 0 {
			return
		}
		encMu.Lock()
		enc.Encode(tick)
		eventCount++
		encMu.Unlock()
	}

	start := time.Now()
	p.Start()
	defer p.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	if durationSec > 0 {
		select {
		case <-sigCh:
		case <-time.After(time.Duration(durationSec) * time.Second):
		}
	} else {
		<-sigCh
	}
	p.Stop()

	encMu.Lock()
	defer encMu.Unlock()
	return enc.Encode(map[string]interface{}{
		"type":    "done",
		"ts":      time.Now().Unix(),
		"elapsed": fmt.Sprintf("%.1fs", time.Since(start).Seconds()),
		"events":  eventCount,
	})
}
