package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ThueCoders/oxforddict"
	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Format selects how lookup payloads are written.
type Format string

func (f *Format) Set(val string) error {
	for _, format := range Formats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s", val)
}

func (f Format) String() string {
	return string(f)
}

func (f *Format) Type() string {
	return "Format"
}

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	_       pflag.Value = (*Format)(nil)
	Formats             = []Format{FormatText, FormatJSON, FormatYAML}
)

// Renderer writes lookup payloads in one of the supported output formats.
type Renderer struct {
	writer io.Writer
	format Format
	bold   *color.Color
}

func NewRenderer(writer io.Writer, format Format) *Renderer {
	return &Renderer{
		writer: writer,
		format: format,
		bold:   color.New(color.Bold),
	}
}

func (r *Renderer) Render(payload oxforddict.Response) error {
	switch r.format {
	case FormatJSON:
		out, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("json.MarshalIndent > %w", err)
		}
		fmt.Fprintln(r.writer, string(out))
	case FormatYAML:
		out, err := yaml.Marshal(payload)
		if err != nil {
			return fmt.Errorf("yaml.Marshal > %w", err)
		}
		fmt.Fprint(r.writer, string(out))
	default:
		r.renderValue(map[string]any(payload), 0)
	}
	return nil
}

// renderValue prints maps with sorted bold keys and lists with a dash per
// item, indented two spaces per level.
func (r *Renderer) renderValue(value any, depth int) {
	indent := strings.Repeat("  ", depth)
	switch v := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			child := v[key]
			if isScalar(child) {
				fmt.Fprintf(r.writer, "%s%s: %v\n", indent, r.bold.Sprint(key), child)
				continue
			}
			fmt.Fprintf(r.writer, "%s%s:\n", indent, r.bold.Sprint(key))
			r.renderValue(child, depth+1)
		}
	case []any:
		for _, item := range v {
			if isScalar(item) {
				fmt.Fprintf(r.writer, "%s- %v\n", indent, item)
				continue
			}
			fmt.Fprintf(r.writer, "%s-\n", indent)
			r.renderValue(item, depth+1)
		}
	default:
		fmt.Fprintf(r.writer, "%s%v\n", indent, v)
	}
}

func isScalar(value any) bool {
	switch value.(type) {
	case map[string]any, []any:
		return false
	}
	return true
}
