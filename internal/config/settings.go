package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/myanez987/Forensic-Econ-Loss-Calc/internal/tables"
)

// Settings holds the application-level configuration: where table data comes
// from, where reports go, and how the process logs. Case inputs are separate
// (see InputParser).
type Settings struct {
	Logging LoggingSettings `mapstructure:"logging"`
	Tables  TablesSettings  `mapstructure:"tables"`
	Output  OutputSettings  `mapstructure:"output"`
	Server  ServerSettings  `mapstructure:"server"`
}

// LoggingSettings holds logging configuration options.
type LoggingSettings struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, console
}

// TablesSettings selects the reference-table data source.
type TablesSettings struct {
	Source string `mapstructure:"source"` // embedded, dir, sqlite
	Path   string `mapstructure:"path"`   // directory or database file for non-embedded sources
}

// OutputSettings configures report rendering.
type OutputSettings struct {
	Directory string `mapstructure:"directory"` // case subdirectories are created beneath this
}

// ServerSettings configures the HTTP evaluation service.
type ServerSettings struct {
	Address string `mapstructure:"address"`
}

// LoadSettings loads application settings from an optional YAML file, with
// environment variables overriding file values. An empty path yields the
// built-in defaults.
func LoadSettings(configPath string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("tables.source", "embedded")
	v.SetDefault("output.directory", "cases")
	v.SetDefault("server.address", ":8080")

	v.SetEnvPrefix("ECONLOSS")
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading settings file, %s", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("unable to decode settings into struct, %s", err)
	}
	return &settings, nil
}

// ResolveTables loads the reference tables named by the settings. Tables are
// loaded once and shared read-only across every case run in the process.
func (s *Settings) ResolveTables() (*tables.ReferenceTables, error) {
	switch s.Tables.Source {
	case "", "embedded":
		return tables.Load()
	case "dir":
		if s.Tables.Path == "" {
			return nil, fmt.Errorf("tables.path is required for the dir source")
		}
		return tables.LoadDir(s.Tables.Path)
	case "sqlite":
		if s.Tables.Path == "" {
			return nil, fmt.Errorf("tables.path is required for the sqlite source")
		}
		return tables.LoadSQLite(s.Tables.Path)
	default:
		return nil, fmt.Errorf("unknown tables source %q", s.Tables.Source)
	}
}
