package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// DefaultSheetID is the published catalog spreadsheet.
const DefaultSheetID = "1hTPuwTZkRnPVoo5GUUC1fhuxbscwJrLdWVG-eHPWaIM"

// EnvConfigPath adds a directory to search for .nongdam.yaml.
const EnvConfigPath = "NONGDAM_CONFIG_PATH"

type Config interface {
	BasePath() string
}

// LoadConfig reads .nongdam.yaml from NONGDAM_CONFIG_PATH or the working
// directory. Every key can also be set as NONGDAM_<KEY>.
func LoadConfig() (*FileConfig, error) {
	v := viper.New()
	v.SetDefault("path", "~/.nongdam.db")
	v.SetDefault("sheet_id", DefaultSheetID)
	v.SetDefault("sheet_name", "")
	v.SetDefault("subgroup_character", "ngn")
	v.SetDefault("companies.old", []string{})
	v.SetDefault("companies.new", []string{})
	v.SetDefault("font", "")
	v.SetDefault("out", ".")
	v.SetDefault("log_level", "warn")
	v.SetConfigName(".nongdam") // .yaml is implicit
	v.SetEnvPrefix("NONGDAM")
	v.AutomaticEnv()

	if override := os.Getenv(EnvConfigPath); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	font, err := homedir.Expand(v.GetString("font"))
	if err != nil {
		return nil, fmt.Errorf("store: expand font: %w", err)
	}
	out, err := homedir.Expand(v.GetString("out"))
	if err != nil {
		return nil, fmt.Errorf("store: expand out: %w", err)
	}

	return &FileConfig{
		Path:              path,
		SheetID:           v.GetString("sheet_id"),
		SheetName:         v.GetString("sheet_name"),
		SubgroupCharacter: v.GetString("subgroup_character"),
		Companies: map[string][]string{
			"old": v.GetStringSlice("companies.old"),
			"new": v.GetStringSlice("companies.new"),
		},
		Font:     font,
		Out:      out,
		LogLevel: v.GetString("log_level"),
		File:     v.ConfigFileUsed(),
	}, nil
}

// FileConfig is the resolved configuration.
type FileConfig struct {
	Path              string              `json:"path"`
	SheetID           string              `json:"sheet_id"`
	SheetName         string              `json:"sheet_name,omitempty"`
	SubgroupCharacter string              `json:"subgroup_character"`
	Companies         map[string][]string `json:"companies"`
	Font              string              `json:"font,omitempty"`
	Out               string              `json:"out"`
	LogLevel          string              `json:"log_level"`
	// File is the config file that was read, if any.
	File string `json:"file,omitempty"`
}

func (f *FileConfig) BasePath() string {
	return f.Path
}
