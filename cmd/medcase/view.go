package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/evanschultz/medcase-visualizer/pkg/scene"
	"github.com/evanschultz/medcase-visualizer/pkg/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive case viewer (default)",
	Args:  cobra.NoArgs,
	RunE:  runView,
}

func runView(cmd *cobra.Command, args []string) error {
	e, err := setup(true)
	if err != nil {
		return err
	}
	defer e.log.Sync()

	s, err := loadScene(e)

	app := tui.NewModel(tui.Options{
		Case:              e.kase,
		Table:             e.table,
		Scene:             s,
		SceneErr:          err,
		ModelPath:         e.cfg.Model.Path,
		EmissiveIntensity: e.cfg.Model.EmissiveIntensity,
		ToastDuration:     e.cfg.UI.ToastDuration,
		Logger:            e.log,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}

// loadScene opens the configured model, or builds a virtual body from the
// regions the mapping table refers to.
func loadScene(e *env) (scene.Scene, error) {
	if e.cfg.Model.Path == "" {
		return scene.NewVirtualBody(e.table.OrganNames()), nil
	}
	s, err := scene.LoadGLTF(e.cfg.Model.Path)
	if err != nil {
		return nil, err
	}
	return s, nil
}
