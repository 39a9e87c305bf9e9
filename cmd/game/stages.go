package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Garsondee/dungeon-chase/internal/config"
	"github.com/Garsondee/dungeon-chase/internal/game"
)

var flagStagesYAML bool

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "List configured stages",
	Long: `Shows the stages from the active configuration and checks that each maze
stage loads. With --yaml the whole effective configuration is printed instead.`,
	Args: cobra.NoArgs,
	RunE: runStages,
}

func init() {
	stagesCmd.Flags().BoolVar(&flagStagesYAML, "yaml", false, "Print the effective configuration as YAML")
}

func runStages(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if flagStagesYAML {
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	maxName := 5 // "Stage" header
	for _, s := range cfg.Stages {
		if len(s.Name) > maxName {
			maxName = len(s.Name)
		}
	}
	fmt.Fprintf(out, "  %-*s  %-8s  %s\n", maxName, "Stage", "Status", "Source")
	fmt.Fprintf(out, "  %-*s  %-8s  %s\n", maxName, "-----", "------", "------")

	assets := game.FileAssets{}
	failed := 0
	for _, s := range cfg.Stages {
		if s.Chase() {
			fmt.Fprintf(out, "  %-*s  %-8s  %s\n", maxName, s.Name, "ok", fmt.Sprintf("chase (%d points)", s.Points))
			continue
		}
		source := s.Map
		if s.Generated() {
			source = fmt.Sprintf("generated (seed %d)", s.Seed)
		}
		status := "ok"
		if m, err := assets.LoadMap(s); err != nil {
			status = "error"
			source += ": " + err.Error()
			failed++
		} else {
			source += fmt.Sprintf(" [%dx%d]", m.GridW, m.GridH)
		}
		fmt.Fprintf(out, "  %-*s  %-8s  %s\n", maxName, s.Name, status, source)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d stages failed to load", failed, len(cfg.Stages))
	}
	return nil
}
