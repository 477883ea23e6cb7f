package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evanschultz/medcase-visualizer/pkg/report"
	"github.com/evanschultz/medcase-visualizer/pkg/scene"
)

var (
	htmlOut     string
	reportWidth int
	reportStyle string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render a case report to the terminal or to an HTML file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(false)
		if err != nil {
			return err
		}
		defer e.log.Sync()

		r := report.New(e.kase, e.table)

		s, err := loadScene(e)
		if err != nil {
			return err
		}
		result := scene.NewHighlighter(e.log, e.cfg.Model.EmissiveIntensity).Apply(s, r.Highlights)
		r.Scene = &result

		if htmlOut != "" {
			f, err := os.Create(htmlOut)
			if err != nil {
				return fmt.Errorf("creating %s: %w", htmlOut, err)
			}
			if err := r.WriteHTML(f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("writing %s: %w", htmlOut, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", htmlOut)
			return nil
		}

		out, err := r.Terminal(reportWidth, reportStyle)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&htmlOut, "html", "", "write the report as HTML to this file")
	reportCmd.Flags().IntVar(&reportWidth, "width", 80, "wrap width for terminal output")
	reportCmd.Flags().StringVar(&reportStyle, "style", "", "glamour style: dark, light, notty (default: detect)")
}
