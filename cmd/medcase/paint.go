package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/evanschultz/medcase-visualizer/pkg/scene"
)

var outPath string

var paintCmd = &cobra.Command{
	Use:   "paint",
	Short: "Write a copy of the model with the case highlights applied",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(false)
		if err != nil {
			return err
		}
		defer e.log.Sync()

		if e.cfg.Model.Path == "" {
			return fmt.Errorf("paint needs a model: set --model or model.path")
		}
		if outPath == "" {
			return fmt.Errorf("paint needs --out")
		}

		s, err := scene.LoadGLTF(e.cfg.Model.Path)
		if err != nil {
			return err
		}

		h := scene.NewHighlighter(e.log, e.cfg.Model.EmissiveIntensity)
		result := h.Apply(s, e.table.Extract(e.kase.Notes))
		if err := s.Save(outPath); err != nil {
			return err
		}

		e.log.Info("model painted",
			zap.String("in", e.cfg.Model.Path),
			zap.String("out", outPath),
			zap.Int("applied", len(result.Applied)))

		w := cmd.OutOrStdout()
		for _, a := range result.Applied {
			fmt.Fprintf(w, "painted %-20s %s (%s)\n", a.MeshName, a.Highlight.Color, a.Highlight.Label())
		}
		for _, hl := range result.Missing {
			fmt.Fprintf(w, "missing %-20s no mesh name contains it\n", hl.OrganName)
		}
		fmt.Fprintf(w, "wrote %s\n", outPath)
		return nil
	},
}

func init() {
	paintCmd.Flags().StringVarP(&outPath, "out", "o", "", "output model path (.glb for binary)")
}
