// Package config loads a pure.Config from YAML or JSON.
//
//	config:
//	  memo:
//	    normalizer: deep   # default | deep | deep-hash | stringer
//	    log:
//	      level: debug     # off | debug | info | warn | error
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/on-the-ground/memoize_go/log"
	"github.com/on-the-ground/memoize_go/pure"
)

// Format is the encoding of a configuration document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var (
	ErrUnsupportedFormat = fmt.Errorf("unsupported config format")
	ErrLoadFailed        = fmt.Errorf("failed to load config")
	ErrParseFailed       = fmt.Errorf("failed to parse config")
)

// Settings is the raw, unvalidated memo configuration.
type Settings struct {
	Normalizer string
	LogLevel   log.LogLevel
}

// Parse reads Settings from data. Empty data yields zero Settings.
func Parse(data []byte, format Format) (Settings, error) {
	var parser koanf.Parser
	switch format {
	case FormatYAML:
		parser = yaml.Parser()
	case FormatJSON:
		parser = json.Parser()
	default:
		return Settings{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	k := koanf.New(delimiter)
	if len(data) > 0 {
		if err := k.Load(rawbytes.Provider(data), parser); err != nil {
			return Settings{}, fmt.Errorf("%w: %w", ErrParseFailed, err)
		}
	}

	return Settings{
		Normalizer: k.String(ConfigMemoNormalizer),
		LogLevel:   log.LogLevel(k.String(ConfigMemoLogLevel)),
	}, nil
}

// Config resolves Settings into a pure.Config.
func (s Settings) Config() (pure.Config, error) {
	normalizer, err := pure.NormalizerByName(s.Normalizer)
	if err != nil {
		return pure.Config{}, err
	}
	logger, err := log.New(s.LogLevel)
	if err != nil {
		return pure.Config{}, err
	}
	return pure.NewConfig(normalizer, logger), nil
}

// Load parses data and resolves it into a pure.Config.
func Load(data []byte, format Format) (pure.Config, error) {
	settings, err := Parse(data, format)
	if err != nil {
		return pure.Config{}, err
	}
	return settings.Config()
}

// LoadFile is Load for a file; the format follows the extension (.yaml, .yml, .json).
func LoadFile(path string) (pure.Config, error) {
	format, err := detectFormat(path)
	if err != nil {
		return pure.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return pure.Config{}, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return Load(data, format)
}

func detectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
}
