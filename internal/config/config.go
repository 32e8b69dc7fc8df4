// Package config provides YAML-based configuration for the trainer.
package config

// Config holds all application settings.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Training TrainingConfig `yaml:"training"`
}

// ServerConfig defines the HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig defines where training history is stored. An empty
// path means the default location in the user's home directory.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// TrainingConfig controls how questions are disguised.
type TrainingConfig struct {
	PreRotate  bool `yaml:"pre_rotate"`
	PostRotate bool `yaml:"post_rotate"`
	PostAUF    bool `yaml:"post_auf"`
	AllowNoAUF bool `yaml:"allow_no_auf"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8000,
		},
		Training: TrainingConfig{
			PreRotate:  true,
			PostRotate: true,
			PostAUF:    true,
		},
	}
}
