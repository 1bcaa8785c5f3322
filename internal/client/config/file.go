package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/docproc/internal/flagx"
	"github.com/dmitrijs2005/docproc/internal/timex"
	"gopkg.in/yaml.v3"
)

// fileConfig is a DTO used exclusively for config file unmarshalling. It
// relies on timex.Duration so files can specify intervals either as strings
// like "3s" or as integer nanoseconds. Parsed values are copied into the
// runtime Config only when present, so an omitted key keeps its default.
type fileConfig struct {
	ServerBaseURL  string          `json:"server_base_url" yaml:"server_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	UploadTimeout  *timex.Duration `json:"upload_timeout" yaml:"upload_timeout"`
	PollInterval   *timex.Duration `json:"poll_interval" yaml:"poll_interval"`
	OutputDir      string          `json:"output_dir" yaml:"output_dir"`
	SessionID      string          `json:"session_id" yaml:"session_id"`
}

// parseFile overlays cfg with values loaded from the file named by the -c or
// -config flag. Missing flag means no file is loaded. The format follows the
// extension: .yaml/.yml decode as YAML, everything else as JSON. Read or
// unmarshal errors panic; the caller may recover if desired.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	apply(cfg, fc)
}

func apply(cfg *Config, fc fileConfig) {
	if fc.ServerBaseURL != "" {
		cfg.ServerBaseURL = fc.ServerBaseURL
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.UploadTimeout != nil {
		cfg.UploadTimeout = fc.UploadTimeout.Duration
	}
	if fc.PollInterval != nil {
		cfg.PollInterval = fc.PollInterval.Duration
	}
	if fc.OutputDir != "" {
		cfg.OutputDir = fc.OutputDir
	}
	if fc.SessionID != "" {
		cfg.SessionID = fc.SessionID
	}
}
