package store

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// DefaultModel is the generative model used when none is configured.
const DefaultModel = "gemini-3-flash-preview"

type Config interface {
	BasePath() string
	APIKey() string
	Model() string
}

// LoadConfig reads .agenda (yaml implicit) from the working directory or an
// AGENDA_CONFIG_PATH override, with AGENDA_* environment variables on top.
// GEMINI_API_KEY is honored as a fallback for the api key.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.agenda.db")
	viper.SetDefault("model", DefaultModel)
	viper.SetConfigName(".agenda")
	viper.SetEnvPrefix("AGENDA")
	viper.AutomaticEnv()

	if override := os.Getenv("AGENDA_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	key := viper.GetString("api_key")
	if key == "" {
		key = os.Getenv("GEMINI_API_KEY")
	}

	return &fileConfig{Path: path, Key: key, ModelName: viper.GetString("model")}, nil
}

type fileConfig struct {
	Path      string `json:"path"`
	Key       string `json:"api_key"`
	ModelName string `json:"model"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) APIKey() string {
	return f.Key
}

func (f *fileConfig) Model() string {
	return f.ModelName
}
