package config

type Config struct {
	Entity     EntityConfig   `mapstructure:"entity"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Report     ReportConfig   `mapstructure:"report"`
	ConfigPath string         `mapstructure:"-"`
}

type EntityConfig struct {
	Name   string `mapstructure:"name"`
	Period string `mapstructure:"period"`
}

type DefaultsConfig struct {
	Currency string `mapstructure:"currency"`
}

type ReportConfig struct {
	OutputDir string `mapstructure:"output_dir"`
}

func NewDefault() *Config {
	return &Config{
		Entity:   EntityConfig{Name: "", Period: ""},
		Defaults: DefaultsConfig{Currency: "Rp"},
		Report:   ReportConfig{OutputDir: "."},
	}
}
