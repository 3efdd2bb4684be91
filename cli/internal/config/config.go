package config

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

var AppFs = afero.NewOsFs()

// Config holds the CLI configuration
type Config struct {
	FixturePath string
	Debug       bool
	Watch       bool
}

// LoadConfig loads configuration from config files, environment variables
// and .env files, in that order of increasing priority.
func LoadConfig() (*Config, error) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	viper.SetConfigName(".mock-supabase")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(home)
	viper.AddConfigPath(filepath.Join(home, ".config", "mock-supabase"))

	viper.SetEnvPrefix("MOCK_SUPABASE")
	viper.AutomaticEnv()

	viper.SetDefault("fixture_path", "fixture.yaml")
	viper.SetDefault("debug", false)
	viper.SetDefault("watch", false)

	// Missing config file is fine; defaults apply
	_ = viper.ReadInConfig()

	if _, err := AppFs.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}
	// .env.local wins over .env
	if _, err := AppFs.Stat(".env.local"); err == nil {
		_ = godotenv.Overload(".env.local")
	}

	cfg := &Config{
		FixturePath: viper.GetString("fixture_path"),
		Debug:       viper.GetBool("debug"),
		Watch:       viper.GetBool("watch"),
	}

	return cfg, nil
}

// SaveConfig writes the configuration to $HOME/.config/mock-supabase.
func SaveConfig(cfg *Config) error {
	viper.Set("fixture_path", cfg.FixturePath)
	viper.Set("debug", cfg.Debug)
	viper.Set("watch", cfg.Watch)

	home, err := homedir.Dir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(home, ".config", "mock-supabase")
	if err := AppFs.MkdirAll(configPath, 0o755); err != nil {
		return err
	}

	return viper.WriteConfigAs(filepath.Join(configPath, ".mock-supabase.yaml"))
}
