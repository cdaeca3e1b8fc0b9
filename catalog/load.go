package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/anisan-cli/eprange/filesystem"
	"github.com/anisan-cli/eprange/log"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported catalog format")

type decoder func(path string, contents []byte) (*Series, error)

var decoders = map[string]decoder{
	".json": decodeJSON,
	".yaml": decodeYAML,
	".yml":  decodeYAML,
	".toml": decodeTOML,
	".lua":  decodeLua,
}

// Formats lists the file extensions Load understands.
func Formats() []string {
	return []string{".json", ".yaml", ".yml", ".toml", ".lua"}
}

// Load reads and validates the catalog at path. The decoder is picked by extension.
func Load(path string) (*Series, error) {
	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	contents, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, err
	}

	series, err := decode(path, contents)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if err := series.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.WithField("catalog", path).Infof("loaded %q with %d seasons", series.Title, len(series.Seasons))
	return series, nil
}

func decodeJSON(_ string, contents []byte) (*Series, error) {
	var series Series
	if err := json.Unmarshal(contents, &series); err != nil {
		return nil, err
	}
	return &series, nil
}

func decodeYAML(_ string, contents []byte) (*Series, error) {
	var series Series
	if err := yaml.Unmarshal(contents, &series); err != nil {
		return nil, err
	}
	return &series, nil
}

func decodeTOML(_ string, contents []byte) (*Series, error) {
	var series Series
	decoder := toml.NewDecoder(bytes.NewReader(contents))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&series); err != nil {
		return nil, err
	}
	return &series, nil
}
