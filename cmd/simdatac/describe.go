package main

import (
	"fmt"
	"io"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bearlytools/simdata/internal/idl"
)

var format string

var describeCmd = &cobra.Command{
	Use:   "describe [path]",
	Short: "Print the parsed schema as JSON or YAML",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := findSchema(fsys, pathArg(args))
		if err != nil {
			return err
		}
		file, err := parseSchema(cmd.Context(), fsys, schema)
		if err != nil {
			return err
		}
		return describe(cmd.OutOrStdout(), file, format)
	},
}

func init() {
	describeCmd.Flags().StringVar(&format, "format", "json", "output format, json or yaml")
	rootCmd.AddCommand(describeCmd)
}

type schemaInfo struct {
	Package string       `json:"package" yaml:"package"`
	Enums   []enumInfo   `json:"enums,omitempty" yaml:"enums,omitempty"`
	Structs []structInfo `json:"structs,omitempty" yaml:"structs,omitempty"`
}

type enumInfo struct {
	Name   string          `json:"name" yaml:"name"`
	Values []enumValueInfo `json:"values" yaml:"values"`
}

type enumValueInfo struct {
	Text string `json:"text" yaml:"text"`
	Code int32  `json:"code" yaml:"code"`
}

type structInfo struct {
	Name   string      `json:"name" yaml:"name"`
	Fields []fieldInfo `json:"fields" yaml:"fields"`
}

type fieldInfo struct {
	Name    string `json:"name" yaml:"name"`
	Legacy  string `json:"legacy" yaml:"legacy"`
	Type    string `json:"type" yaml:"type"`
	Default string `json:"default,omitempty" yaml:"default,omitempty"`
}

func newSchemaInfo(file *idl.File) schemaInfo {
	si := schemaInfo{Package: file.Package}
	for _, e := range file.Enums() {
		ei := enumInfo{Name: e.Name}
		for _, v := range e.Values {
			ei.Values = append(ei.Values, enumValueInfo{Text: v.Text, Code: v.Code})
		}
		si.Enums = append(si.Enums, ei)
	}
	for _, s := range file.Structs() {
		st := structInfo{Name: s.Name}
		for _, f := range s.Fields {
			st.Fields = append(st.Fields, fieldInfo{Name: f.Name, Legacy: f.Legacy, Type: f.TypeName, Default: f.Default})
		}
		si.Structs = append(si.Structs, st)
	}
	return si
}

func describe(w io.Writer, file *idl.File, format string) error {
	si := newSchemaInfo(file)
	switch format {
	case "json":
		b, err := json.Marshal(si, jsontext.WithIndent("  "))
		if err != nil {
			return pkgerrors.Wrap(err, "describe")
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(si); err != nil {
			return pkgerrors.Wrap(err, "describe")
		}
		return enc.Close()
	}
	return pkgerrors.Errorf("unknown format %q, want json or yaml", format)
}
