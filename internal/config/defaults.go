package config

// Defaults returns the default configuration.
func Defaults() *Config {
	return &Config{
		Version: 1,
		Home:    "~/.mnemosss",
		Split: SplitConfig{
			DefaultThreshold: 3,
			DefaultShares:    5,
			Long:             false,
		},
		Output: OutputConfig{
			DefaultFormat: "auto",
			Color:         "auto",
			Verbose:       false,
		},
		Logging: LoggingConfig{
			Level: "error",
			File:  "~/.mnemosss/mnemosss.log",
		},
	}
}
