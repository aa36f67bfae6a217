package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"netprio/application/listing"
	"netprio/application/reconcile"
	"netprio/domain/adapter"
	"netprio/infrastructure/PAL/windows/netsh"
	"netprio/infrastructure/textdecode"
)

const (
	AppDirName     = "netprio"
	ConfigFileName = "config.toml"
	ConfigPathEnv  = "NETPRIO_CONFIG"
	DefaultListen  = "127.0.0.1:8087"
)

type Config struct {
	Language       string         `toml:"language" validate:"omitempty,oneof=en ko"`
	Metrics        Metrics        `toml:"metrics"`
	Commands       Commands       `toml:"commands"`
	Decoding       Decoding       `toml:"decoding"`
	Classification Classification `toml:"classification"`
	UI             UI             `toml:"ui"`
	API            API            `toml:"api"`

	path string
}

type Metrics struct {
	Base int `toml:"base" validate:"min=1,max=9999"`
	Step int `toml:"step" validate:"min=1,max=9999"`
}

type Commands struct {
	Query     []string `toml:"query" validate:"min=1,dive,required"`
	SetMetric string   `toml:"set_metric" validate:"required,metric_template"`
	Separator string   `toml:"separator" validate:"required"`
}

type Decoding struct {
	Encodings []string `toml:"encodings" validate:"dive,required,encoding"`
}

type Classification struct {
	Wireless           []string `toml:"wireless"`
	Wired              []string `toml:"wired"`
	Excluded           []string `toml:"excluded"`
	ConnectedStates    []string `toml:"connected_states" validate:"min=1,dive,required"`
	DisconnectedStates []string `toml:"disconnected_states"`
}

type UI struct {
	AutoCommit bool `toml:"auto_commit"`
}

type API struct {
	Listen string `toml:"listen" validate:"required,hostname_port"`
}

func Default() *Config {
	return &Config{
		Language: "en",
		Metrics: Metrics{
			Base: reconcile.DefaultBase,
			Step: reconcile.DefaultStep,
		},
		Commands: Commands{
			Query:     append([]string(nil), netsh.DefaultQueryCommand...),
			SetMetric: netsh.DefaultSetMetricTemplate,
			Separator: netsh.DefaultSeparator,
		},
		Decoding: Decoding{
			Encodings: append([]string(nil), textdecode.DefaultEncodings...),
		},
		Classification: Classification{
			Wireless:           append([]string(nil), adapter.DefaultWirelessMarkers...),
			Wired:              append([]string(nil), adapter.DefaultWiredMarkers...),
			Excluded:           append([]string(nil), adapter.DefaultExcludedMarkers...),
			ConnectedStates:    append([]string(nil), listing.DefaultConnectedStates...),
			DisconnectedStates: append([]string(nil), listing.DefaultDisconnectedStates...),
		},
		API: API{Listen: DefaultListen},
	}
}

// DefaultPath honours NETPRIO_CONFIG, then the per-user config directory.
func DefaultPath() (string, error) {
	if p := os.Getenv(ConfigPathEnv); p != "" {
		return filepath.Abs(p)
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(dir, AppDirName, ConfigFileName), nil
}

// Load reads the TOML file at path over the defaults. A missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.path = filepath.Clean(path)

	content, err := os.ReadFile(cfg.path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(content, cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("failed to parse config file at line %d, column %d: %s", row, col, derr.Error())
		}
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path is where the config was loaded from; empty for Default().
func (c *Config) Path() string {
	return c.path
}

// Dir is the directory holding the config file and its companions.
func (c *Config) Dir() string {
	if c.path == "" {
		return "."
	}
	return filepath.Dir(c.path)
}
