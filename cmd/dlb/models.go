package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yxonic/dl-boilerplate/internal/model"
	"github.com/yxonic/dl-boilerplate/internal/ui"
)

func newModelsCmd(reg *model.Registry) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "List the available model kinds",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runModels(cmd, reg)
		},
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type kindInfo struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  []paramInfo `json:"parameters"`
}

type paramInfo struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Default  any    `json:"default"`
	Usage    string `json:"usage,omitempty"`
	Required bool   `json:"required,omitempty"`
}

func runModels(cmd *cobra.Command, reg *model.Registry) error {
	kinds := reg.Kinds()
	infos := make([]kindInfo, 0, len(kinds))
	for _, k := range kinds {
		info := kindInfo{Name: k.Name(), Description: k.Doc()}
		for _, d := range model.Describe(k) {
			info.Parameters = append(info.Parameters, paramInfo{
				Name:     d.Name,
				Type:     d.Type,
				Default:  d.Default,
				Usage:    d.Usage,
				Required: d.Required,
			})
		}
		infos = append(infos, info)
	}

	out := cmd.OutOrStdout()
	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	tbl := ui.NewTable(out, "NAME", "DESCRIPTION", "PARAMETERS")
	for _, info := range infos {
		tbl.Row(info.Name, info.Description, paramSummary(info.Parameters))
	}
	return tbl.Flush()
}

func paramSummary(params []paramInfo) string {
	parts := make([]string, len(params))
	for i, p := range params {
		if p.Required {
			parts[i] = fmt.Sprintf("--%s %s (required)", p.Name, p.Type)
		} else {
			parts[i] = fmt.Sprintf("--%s %s (default %v)", p.Name, p.Type, p.Default)
		}
	}
	return strings.Join(parts, ", ")
}
