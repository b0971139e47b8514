package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jmgilman/go/collection/collection"
	"github.com/jmgilman/go/collection/dostime"
	"github.com/jmgilman/go/collection/errors"
	"github.com/jmgilman/go/collection/internal/config"
	"gopkg.in/yaml.v3"
)

// entryRecord is the serialized form of an entry.
type entryRecord struct {
	Name    string     `json:"name" yaml:"name"`
	Path    string     `json:"path" yaml:"path"`
	Dir     bool       `json:"dir" yaml:"dir"`
	Size    int64      `json:"size,omitempty" yaml:"size,omitempty"`
	Mode    string     `json:"mode,omitempty" yaml:"mode,omitempty"`
	ModTime *time.Time `json:"mod_time,omitempty" yaml:"mod_time,omitempty"`
	DOSTime string     `json:"dos_time,omitempty" yaml:"dos_time,omitempty"`
}

// newRecord describes e. When detailed is set the entry is stat'ed.
func newRecord(e *collection.Entry, detailed bool) (entryRecord, error) {
	r := entryRecord{
		Name: e.Name(),
		Path: e.Path(),
		Dir:  e.IsDir(),
	}
	if !detailed {
		return r, nil
	}

	info, err := e.Info()
	if err != nil {
		return entryRecord{}, err
	}
	mt := info.ModTime()
	r.Size = info.Size()
	r.Mode = info.Mode().String()
	r.ModTime = &mt
	dt, err := e.DOSTime()
	if err != nil {
		return entryRecord{}, err
	}
	r.DOSTime = formatDOSTime(dt)
	return r, nil
}

// formatDOSTime renders a packed DOS timestamp as zero-padded hex.
func formatDOSTime(t dostime.Time) string {
	return fmt.Sprintf("0x%08x", uint32(t))
}

// displayName is the entry's name as shown in text output.
func displayName(r entryRecord) string {
	if r.Dir && r.Name != "" {
		return r.Name + "/"
	}
	if r.Name == "" {
		return "."
	}
	return r.Name
}

// render writes v in format, delegating the text format to text.
func render(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case config.OutputText, "":
		return text(w)
	}
	return errors.WithContext(
		errors.New(errors.CodeInvalidInput, "unsupported output format"),
		"output", format)
}
