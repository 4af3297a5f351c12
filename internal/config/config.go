package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "RPAGER"

	KeyTheme            = "theme"
	KeyLexer            = "lexer"
	KeyLineNumbers      = "line_numbers"
	KeyTabWidth         = "tab_width"
	KeyHighlightContext = "highlight_context"
	KeyLogFile          = "log_file"
	KeyLogLevel         = "log_level"

	maxTabWidth = 16
)

// Config is the merged result of defaults, config file, environment and flags.
type Config struct {
	Theme            string
	Lexer            string
	LineNumbers      bool
	TabWidth         int
	HighlightContext int
	LogFile          string
	LogLevel         string
}

// flagKeys maps flag names to config keys where they differ.
var flagKeys = map[string]string{
	"theme":             KeyTheme,
	"lexer":             KeyLexer,
	"line-numbers":      KeyLineNumbers,
	"tab-width":         KeyTabWidth,
	"highlight-context": KeyHighlightContext,
	"log-file":          KeyLogFile,
	"log-level":         KeyLogLevel,
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyTheme, "monokai")
	v.SetDefault(KeyLexer, "")
	v.SetDefault(KeyLineNumbers, false)
	v.SetDefault(KeyTabWidth, 4)
	v.SetDefault(KeyHighlightContext, 40)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogLevel, "info")
}

// RegisterFlags adds the configuration flags to flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.StringP("theme", "t", "monokai", "chroma style used for highlighting")
	flags.StringP("lexer", "l", "", "force a chroma lexer instead of detecting one")
	flags.BoolP("line-numbers", "n", false, "show line numbers")
	flags.Int("tab-width", 4, "columns per tab stop")
	flags.Int("highlight-context", 40, "minimum lines laid out around the active line")
	flags.String("log-file", "", "write logs to this file")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
}

// BindFlags makes flags override every other source in v.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads the config file and environment into v and returns the
// validated result. An explicit configFile must exist; the default
// location is optional.
func Load(v *viper.Viper, configFile string) (Config, error) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	} else if dir := DefaultDir(); dir != "" {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		Theme:            v.GetString(KeyTheme),
		Lexer:            v.GetString(KeyLexer),
		LineNumbers:      v.GetBool(KeyLineNumbers),
		TabWidth:         v.GetInt(KeyTabWidth),
		HighlightContext: v.GetInt(KeyHighlightContext),
		LogFile:          v.GetString(KeyLogFile),
		LogLevel:         v.GetString(KeyLogLevel),
	}
	return cfg, cfg.Validate()
}

// Validate reports values the pager cannot work with.
func (c Config) Validate() error {
	if c.TabWidth < 1 || c.TabWidth > maxTabWidth {
		return fmt.Errorf("tab width %d out of range 1-%d", c.TabWidth, maxTabWidth)
	}
	if c.HighlightContext < 0 {
		return fmt.Errorf("highlight context must not be negative, got %d", c.HighlightContext)
	}
	return nil
}

// DefaultDir is $XDG_CONFIG_HOME/rpager, falling back to the OS config dir.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "rpager")
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "rpager")
}
