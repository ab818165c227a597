package cmd

import (
	"fmt"
	"image/png"
	"os"

	"github.com/alvea-app/ax-agent/internal/ax"
	"github.com/alvea-app/ax-agent/internal/render"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render <snapshot.json>",
	Short: "Render a snapshot's classifier output to a PNG",
	Long: `Decode a saved accessibility snapshot (see 'snapshot --out') and draw its
element frames, input-capable elements, and detected text-selection regions
to a PNG. Handy for eyeballing what the polling loop would collect.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().String("out", "snapshot.png", "Output PNG path")
}

func runRender(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}

	tree, err := ax.Decode(string(data))
	if err != nil {
		return err
	}

	img, err := render.RenderTree(tree)
	if err != nil {
		return err
	}

	outPath, _ := cmd.Flags().GetString("out")
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", outPath)
	return nil
}
