package app

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFilename = "config.yaml"

const defaultConfigYAML = `# proposer configuration
# Base URL of the core proposal API.
api_base: http://127.0.0.1:8080

# Base URL of the upload broker that issues write-once upload URLs.
broker_base: http://127.0.0.1:8081

# Pause between consecutive requests in a batch draft, in milliseconds.
draft_pause_ms: 500

# Preview length requested on an evidence refresh, in characters.
preview: 120

# Write debug-level entries to the log file.
debug: false
`

// FileConfig models $home/config.yaml.
type FileConfig struct {
	APIBase      string `yaml:"api_base"`
	BrokerBase   string `yaml:"broker_base"`
	DraftPauseMS int    `yaml:"draft_pause_ms"`
	Preview      int    `yaml:"preview"`
	Debug        bool   `yaml:"debug"`
}

// Config holds runtime wiring options for building the app.
type Config struct {
	Home       string        // config directory, e.g. $HOME/.proposer
	APIBase    string        // core proposal API base URL
	BrokerBase string        // upload broker base URL
	DraftPause time.Duration // pacing between batch draft requests
	Preview    int           // evidence refresh preview length
	Debug      bool          // debug logging
	HTTP       *http.Client  // optional; defaults to http.DefaultClient
}

// LoadConfig reads $home/config.yaml, writing a commented default file
// on first run. Flags override the file afterwards.
func LoadConfig(home string) (Config, error) {
	path := filepath.Join(home, configFilename)

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); err != nil {
			return Config{}, err
		}
		b = []byte(defaultConfigYAML)
	} else if err != nil {
		return Config{}, err
	}

	var fc FileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Home:       home,
		APIBase:    fc.APIBase,
		BrokerBase: fc.BrokerBase,
		Preview:    fc.Preview,
		Debug:      fc.Debug,
	}
	if fc.DraftPauseMS > 0 {
		cfg.DraftPause = time.Duration(fc.DraftPauseMS) * time.Millisecond
	}
	return cfg, nil
}
