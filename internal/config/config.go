package config

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type DefaultsConfig struct {
	// Label goes into exported report file names.
	Label string `mapstructure:"label"`
	// Month pins the month filter (YYYY-MM); empty means the current month.
	Month string `mapstructure:"month"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""},
		Defaults: DefaultsConfig{Label: "Personal", Month: ""},
	}
}
