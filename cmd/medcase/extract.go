package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/evanschultz/medcase-visualizer/pkg/models"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Print the region highlights found in the notes as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(false)
		if err != nil {
			return err
		}
		defer e.log.Sync()
		highlights := e.table.Extract(e.kase.Notes)
		if highlights == nil {
			highlights = []models.OrganHighlight{}
		}
		return writeYAML(cmd.OutOrStdout(), map[string]any{"highlights": highlights})
	},
}

var phrasesCmd = &cobra.Command{
	Use:   "phrases",
	Short: "Print the clickable phrases of the summary as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(false)
		if err != nil {
			return err
		}
		defer e.log.Sync()
		phrases := e.table.ClickablePhrases(e.kase.Summary)
		if phrases == nil {
			phrases = []string{}
		}
		return writeYAML(cmd.OutOrStdout(), map[string]any{"phrases": phrases})
	},
}

var mappingsCmd = &cobra.Command{
	Use:   "mappings",
	Short: "Print the active term mapping table as config YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(false)
		if err != nil {
			return err
		}
		defer e.log.Sync()
		return writeYAML(cmd.OutOrStdout(), map[string]any{"mappings": e.table.Definitions()})
	},
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}
