package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	domainErrors "github.com/Tomas-vilte/predicte-commit/internal/errors"
	"github.com/Tomas-vilte/predicte-commit/internal/ignore"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Provider      string   `json:"provider" validate:"required"`
	Models        []string `json:"models,omitempty" validate:"dive,required"`
	IgnoredFiles  []string `json:"ignored_files"`
	UseLocal      bool     `json:"use_local"`
	LocalProvider string   `json:"local_provider"`
	LocalBaseURL  string   `json:"local_base_url" validate:"omitempty,url"`
	LocalModel    string   `json:"local_model"`
	DebugLogging  bool     `json:"debug_logging"`
	Language      string   `json:"language" validate:"required,oneof=en es"`
	PathFile      string   `json:"path_file"`
}

const (
	LangEN = "en"
	LangES = "es"

	DefaultProvider      = "mistral"
	DefaultLocalProvider = "ollama"
	DefaultLocalModel    = "mistral"
	defaultLang          = LangEN

	configDirName  = ".predicte-commit"
	configFileName = "config.json"
)

// DefaultIgnoredFiles are skipped when collecting staged diffs.
var DefaultIgnoredFiles = []string{"*-lock.json", "*.svg", "dist/**"}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns a configuration with every default applied.
func Default(path string) *Config {
	return &Config{
		Provider:      DefaultProvider,
		IgnoredFiles:  append([]string(nil), DefaultIgnoredFiles...),
		LocalProvider: DefaultLocalProvider,
		LocalModel:    DefaultLocalModel,
		Language:      defaultLang,
		PathFile:      path,
	}
}

// Dir returns the configuration directory under home.
func Dir(home string) string {
	return filepath.Join(home, configDirName)
}

// LoadConfig reads the configuration file. path may be a .json file or a
// directory, in which case the file lives in <path>/.predicte-commit.
// A missing file is created with defaults. A file that cannot be decoded
// or validated yields the defaults and an error matching
// errors.ErrInvalidConfig; the file itself is left untouched.
func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := Dir(path)
		configPath = filepath.Join(configDir, configFileName)

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("error creating config directory: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	} else if err != nil {
		return nil, fmt.Errorf("error checking config file: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Fields absent from the file keep their defaults.
	config := Default(configPath)
	if err := json.Unmarshal(data, config); err != nil {
		return Default(configPath), invalidConfig(configPath, fmt.Errorf("error decoding config file: %w", err))
	}
	config.PathFile = configPath

	if err := validateConfig(config); err != nil {
		return Default(configPath), invalidConfig(configPath, fmt.Errorf("loaded config is invalid: %w", err))
	}

	return config, nil
}

// invalidConfig reports a stored file that could not be used. LoadConfig
// still returns the defaults alongside it so that "config init" can repair
// the file.
func invalidConfig(path string, err error) error {
	return domainErrors.ErrInvalidConfig.WithError(err).WithContext("path", path)
}

func createDefaultConfig(path string) (*Config, error) {
	config := Default(path)

	if err := writeConfig(config); err != nil {
		return nil, fmt.Errorf("error saving default config: %w", err)
	}

	return config, nil
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("config to save is invalid: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("config file path is not set")
	}

	return writeConfig(config)
}

func writeConfig(config *Config) error {
	if err := os.MkdirAll(filepath.Dir(config.PathFile), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("error writing config: %w", err)
	}

	return nil
}

func validateConfig(config *Config) error {
	if err := validate.Struct(config); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("field %s failed '%s' validation", fe.Namespace(), fe.Tag())
		}
		return err
	}
	if strings.TrimSpace(config.Provider) == "" {
		return errors.New("provider cannot be blank")
	}
	return ignore.Validate(config.IgnoredFiles)
}

// Validate checks config without saving it.
func Validate(config *Config) error {
	return validateConfig(config)
}
