package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"fieldmap-service/internal/fieldmap/model"
	"fieldmap-service/internal/fileio"
	"fieldmap-service/internal/preset"
)

func mapCmd() *cobra.Command {
	var (
		fields    []string
		software  string
		headerRow int
		output    string
	)
	cmd := &cobra.Command{
		Use:   "map [file]",
		Short: "Map the header row of a csv/xls/xlsx file or an explicit field list",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, format, err := collectNames(args, fields, headerRow)
			if err != nil {
				return err
			}
			svc := newService()
			mappings := svc.MapFields(cmd.Context(), names, format, model.Context{Software: software})

			switch output {
			case "table":
				return renderMappings(mappings)
			case "json", "csv":
				out, err := svc.ExportMappings(mappings, output)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}
			return errors.Newf("unknown output %q (table|json|csv)", output)
		},
	}
	cmd.Flags().StringSliceVarP(&fields, "fields", "f", nil, "Comma separated field names instead of a file")
	cmd.Flags().StringVarP(&software, "software", "s", "", "Source product: onivo, megasoft, pantheon")
	cmd.Flags().IntVar(&headerRow, "header-row", 1, "1-based row holding the headers")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output: table, json or csv")
	return cmd
}

func collectNames(args, fields []string, headerRow int) ([]string, string, error) {
	if len(args) == 0 {
		if len(fields) == 0 {
			return nil, "", errors.New("pass a file or --fields")
		}
		return fields, "csv", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", errors.Wrap(err, "open")
	}
	defer f.Close()
	headers, err := fileio.ReadHeaders(f, args[0], headerRow)
	if err != nil {
		return nil, "", err
	}
	return headers, fileio.Format(args[0]), nil
}

func renderMappings(mappings []model.FieldMapping) error {
	data := pterm.TableData{{"Input", "Field", "Confidence", "Algorithm", "Type", "Alternatives"}}
	mapped := 0
	for _, m := range mappings {
		field := pterm.Gray("-")
		if m.Mapped() {
			field = m.MappedField
			mapped++
		}
		alts := make([]string, 0, len(m.Alternatives))
		for _, a := range m.Alternatives {
			alts = append(alts, a.Field)
		}
		data = append(data, []string{
			m.InputField,
			field,
			confidenceCell(m.Confidence),
			m.Algorithm.String(),
			m.DataType,
			strings.Join(alts, ", "),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("%d of %d fields mapped\n", mapped, len(mappings))
	return nil
}

func confidenceCell(c float64) string {
	s := strconv.FormatFloat(c, 'f', 2, 64)
	switch {
	case c >= 0.8:
		return pterm.Green(s)
	case c >= 0.5:
		return pterm.Yellow(s)
	case c > 0:
		return pterm.Red(s)
	}
	return pterm.Gray(s)
}

func fieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields [field]",
		Short: "List canonical fields, or the known variations of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := newService()
			if len(args) == 0 {
				for _, f := range svc.SupportedFields() {
					pterm.Println(f)
				}
				return nil
			}
			v := svc.FieldVariations(args[0])
			if len(v) == 0 {
				return errors.Newf("unknown field %q", args[0])
			}
			pterm.DefaultHeader.Println(args[0])
			pterm.Println(strings.Join(v, ", "))
			return nil
		},
	}
}

func presetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preset <source> <entity>",
		Short: "Show the column table of a competitor export",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := preset.PresetStructure(args[0], args[1])
			if len(st.Fields) == 0 {
				pterm.Warning.Printf("no preset for %s/%s\n", st.Source, st.EntityType)
				pterm.Info.Printf("sources: %s\n", joinKeys(preset.AvailableSources()))
				pterm.Info.Printf("entities: %s\n", joinKeys(preset.AvailableEntityTypes()))
				return errors.New("unknown preset")
			}
			data := pterm.TableData{{"Field", "Column"}}
			for i := range st.Fields {
				data = append(data, []string{st.Fields[i], st.Columns[i]})
			}
			return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
		},
	}
}

func joinKeys(m map[string]string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
