package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/tanqiangyes/board-game/internal/card"
	"github.com/tanqiangyes/board-game/internal/logging"
)

// Supported locales for suit names
const (
	LocaleChinese = "zh"
	LocaleEnglish = "en"
)

// Environment variables that override the config file
const (
	EnvLocale   = "BOARD_GAME_LOCALE"
	EnvJokers   = "BOARD_GAME_JOKERS"
	EnvColor    = "BOARD_GAME_COLOR"
	EnvLogLevel = "BOARD_GAME_LOG_LEVEL"
)

// Config represents the application configuration
type Config struct {
	Locale   string `toml:"locale"`
	Jokers   bool   `toml:"jokers"`
	Color    bool   `toml:"color"`
	LogLevel string `toml:"log_level"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		Locale:   LocaleChinese,
		Jokers:   false,
		Color:    true,
		LogLevel: "info",
	}
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetFixtureLibraryPath returns the directory searched for named fixtures
func GetFixtureLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "board-game", "fixtures")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "board-game", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults when missing,
// then applies .env and environment overrides.
func LoadConfig() (*Config, error) {
	config, err := loadFile()
	if err != nil {
		return nil, err
	}

	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// loadFile reads only the config file, without environment overrides
func loadFile() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := writeConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func writeConfig(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvLocale); v != "" {
		c.Locale = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(EnvJokers); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvJokers, err)
		}
		c.Jokers = b
	}
	if v := os.Getenv(EnvColor); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvColor, err)
		}
		c.Color = b
	}
	return nil
}

// ParseLocale normalizes a locale name such as " EN" to "en"
func ParseLocale(s string) (string, error) {
	locale := strings.ToLower(strings.TrimSpace(s))
	switch locale {
	case LocaleChinese, LocaleEnglish:
		return locale, nil
	}
	return "", fmt.Errorf("unsupported locale %q (supported: %s, %s)", s, LocaleChinese, LocaleEnglish)
}

// validate checks the values that have a closed set of options and
// normalizes the locale
func (c *Config) validate() error {
	locale, err := ParseLocale(c.Locale)
	if err != nil {
		return err
	}
	c.Locale = locale
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("unsupported log_level %q", c.LogLevel)
	}
	return nil
}

// SetLocale stores a new locale in the config file and returns the stored
// value. Environment overrides are not written back.
func SetLocale(locale string) (string, error) {
	config, err := loadFile()
	if err != nil {
		return "", err
	}

	config.Locale, err = ParseLocale(locale)
	if err != nil {
		return "", err
	}

	if err := writeConfig(config); err != nil {
		return "", err
	}
	return config.Locale, nil
}

// SuitName returns the suit naming function for a locale
func SuitName(locale string) func(card.Suit) string {
	if locale == LocaleEnglish {
		return card.Suit.EnglishName
	}
	return card.Suit.Name
}

// CardName renders a card in the given locale
func CardName(locale string, c card.Card) string {
	if locale == LocaleEnglish {
		return c.EnglishString()
	}
	return c.String()
}

// GetFixturePath returns the path to a fixture, either in the fixture
// library or a relative path
func GetFixturePath(name string) (string, error) {
	// First, try to find the fixture in the library
	libraryPath := GetFixtureLibraryPath()
	for _, candidate := range []string{name, name + ".toml"} {
		fixturePath := filepath.Join(libraryPath, candidate)
		if _, err := os.Stat(fixturePath); err == nil {
			return fixturePath, nil
		}
	}

	// If not found in the library, treat as a relative path
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	return "", fmt.Errorf("fixture not found: %s", name)
}
