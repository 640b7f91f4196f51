package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/tendant/simple-blog/pkg/simpleblog"
	"gopkg.in/yaml.v3"
)

// FileSource reads a snapshot from a local JSON or YAML document.
type FileSource struct {
	Path   string
	Format Format
}

func (f *FileSource) Load(ctx context.Context) (simpleblog.Snapshot, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return simpleblog.Snapshot{}, fmt.Errorf("%w: %s", ErrSeedNotFound, f.Path)
		}
		return simpleblog.Snapshot{}, fmt.Errorf("read seed file: %w", err)
	}
	return Decode(data, f.Format)
}

// Decode parses a seed document and validates the result.
func Decode(data []byte, format Format) (simpleblog.Snapshot, error) {
	var s simpleblog.Snapshot
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return simpleblog.Snapshot{}, fmt.Errorf("decode json seed: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return simpleblog.Snapshot{}, fmt.Errorf("decode yaml seed: %w", err)
		}
	default:
		return simpleblog.Snapshot{}, fmt.Errorf("%w: format %q", ErrUnsupportedSource, format)
	}
	return finish(s)
}

// Encode writes s in the given format.
func Encode(s simpleblog.Snapshot, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(s, "", "  ")
	case FormatYAML:
		return yaml.Marshal(s)
	default:
		return nil, fmt.Errorf("%w: format %q", ErrUnsupportedSource, format)
	}
}
