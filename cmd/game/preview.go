package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Garsondee/dungeon-chase/internal/maze"
)

var (
	flagPreviewFOV     int
	flagPreviewFOVOnly bool
	flagPreviewPlain   bool
	flagPreviewFull    bool
)

var previewCmd = &cobra.Command{
	Use:   "preview <map.json>",
	Short: "Print a map in the terminal",
	Long: `Prints a map one character per tile:

  .  floor     #  wall     ,  decoration
  @  player    $  goal     E  enemy spawn

Tiles outside the player's view are dimmed (or hidden with --fov-only). On a
terminal the output is cropped around the player to fit the window unless
--full is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().IntVar(&flagPreviewFOV, "fov", maze.DefaultFOVRadius, "View radius in tiles")
	previewCmd.Flags().BoolVar(&flagPreviewFOVOnly, "fov-only", false, "Hide tiles outside the view")
	previewCmd.Flags().BoolVar(&flagPreviewPlain, "plain", false, "Disable colours")
	previewCmd.Flags().BoolVar(&flagPreviewFull, "full", false, "Never crop to the terminal size")
}

func runPreview(cmd *cobra.Command, args []string) error {
	m, err := maze.Load(args[0])
	if err != nil {
		return err
	}
	opts := previewOptions(cmd)
	if m.Meta != nil && m.Meta.FOVRadiusTiles > 0 && !cmd.Flags().Changed("fov") {
		opts.FOVRadius = m.Meta.FOVRadiusTiles
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, maze.RenderASCII(m, opts))
	fmt.Fprintf(out, "%dx%d tiles, %d entities", m.GridW, m.GridH, len(m.Entities))
	if m.Meta != nil && m.Meta.Notes != "" {
		fmt.Fprintf(out, " (%s)", m.Meta.Notes)
	}
	fmt.Fprintln(out)
	return nil
}

// previewOptions reads the preview flags and, when stdout is a terminal,
// limits the output to the terminal size.
func previewOptions(cmd *cobra.Command) maze.PreviewOptions {
	opts := maze.PreviewOptions{
		FOVRadius: flagPreviewFOV,
		FOVOnly:   flagPreviewFOVOnly,
		Plain:     flagPreviewPlain,
	}
	if flagPreviewFull {
		return opts
	}
	if f, ok := cmd.OutOrStdout().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil {
			opts.MaxWidth, opts.MaxHeight = w, h-2
		}
	}
	return opts
}
