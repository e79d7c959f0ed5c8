package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Output formats for directory listings.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// dirSet is the serializable form of a directory listing. Runtime is
// omitted from structured output when XDG_RUNTIME_DIR is unset.
type dirSet struct {
	Config  string `json:"config" yaml:"config"`
	Data    string `json:"data" yaml:"data"`
	Cache   string `json:"cache" yaml:"cache"`
	Runtime string `json:"runtime,omitempty" yaml:"runtime,omitempty"`
}

// writeDirSet renders a directory listing in the requested format.
func writeDirSet(w io.Writer, set dirSet, format string) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(set)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(set); err != nil {
			return err
		}
		return enc.Close()
	case outputText, "":
		label := color.New(color.FgCyan).SprintFunc()
		runtime := set.Runtime
		if runtime == "" {
			runtime = "(unset)"
		}
		fmt.Fprintf(w, "%s  %s\n", label("config: "), set.Config)
		fmt.Fprintf(w, "%s  %s\n", label("data:   "), set.Data)
		fmt.Fprintf(w, "%s  %s\n", label("cache:  "), set.Cache)
		fmt.Fprintf(w, "%s  %s\n", label("runtime:"), runtime)
		return nil
	default:
		return errors.Newf("unknown output format %q (valid: text, json, yaml)", format)
	}
}
