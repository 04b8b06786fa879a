package forgefeed

import "github.com/ghalamif/ForgeFeed/internal/app/config"

// Config is the YAML run configuration.
type Config = config.Config

// Sink modes accepted by Config.
const (
	SinkModeTimescale = config.SinkModeTimescale
	SinkModeCSV       = config.SinkModeCSV
)

// LoadConfig reads, defaults, and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}
