package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/lexsearch/internal/flagx"
	"github.com/dmitrijs2005/lexsearch/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "30s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	BaseURL             string         `json:"base_url"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	HealthCheckInterval timex.Duration `json:"health_check_interval"`
	SessionDBPath       string         `json:"session_db_path"`
}

// parseJson overlays Config with values loaded from a JSON file selected
// via the -c or -config flags. When no file is given the function returns
// without touching cfg. Read or unmarshal errors panic (caller should
// recover if desired). Zero-valued JSON fields leave the config unchanged
// so a partial file only overrides what it names.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.HealthCheckInterval.Duration != 0 {
		cfg.HealthCheckInterval = time.Duration(jc.HealthCheckInterval.Duration)
	}
	if jc.SessionDBPath != "" {
		cfg.SessionDBPath = jc.SessionDBPath
	}
}
