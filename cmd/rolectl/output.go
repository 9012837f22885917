package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// render writes v as JSON or YAML, or calls text for the human format
func render(cmd *cobra.Command, v any, text func(w io.Writer) error) error {
	format, _ := cmd.Flags().GetString("output")
	out := cmd.OutOrStdout()

	switch strings.ToLower(format) {
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case formatText, "":
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		if err := text(tw); err != nil {
			return err
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q, expected text, json or yaml", format)
	}
}

func bullets(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}
