package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mcoot/connectfour-go/internal/render"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds CLI configuration
type Config struct {
	PlayerOne    string
	PlayerTwo    string
	DisplayToken string
	NoColor      bool
	LogLevel     string
	Output       string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		PlayerOne:    os.Getenv("C4_PLAYER_ONE"),
		PlayerTwo:    os.Getenv("C4_PLAYER_TWO"),
		DisplayToken: getEnvOrDefault("C4_DISPLAY_TOKEN", "O"),
		NoColor:      getEnvBool("C4_NO_COLOR"),
		LogLevel:     getEnvOrDefault("C4_LOG_LEVEL", "warn"),
		Output:       OutputText,
	}
}

// Validate checks flag and env values before any command runs
func (c *Config) Validate() error {
	if _, err := c.Token(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Output != OutputText && c.Output != OutputJSON {
		return fmt.Errorf("invalid output format %q: must be %s or %s", c.Output, OutputText, OutputJSON)
	}
	return nil
}

// Token returns the single rune used to draw tokens
func (c *Config) Token() (rune, error) {
	r, size := utf8.DecodeRuneInString(c.DisplayToken)
	if size == 0 || size != len(c.DisplayToken) || r == utf8.RuneError || unicode.IsSpace(r) {
		return 0, fmt.Errorf("invalid display token %q: must be a single visible character", c.DisplayToken)
	}
	return r, nil
}

// Level parses the configured log level
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Logger builds a JSON logger writing to w at the configured level
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := c.Level()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})), nil
}

// RenderConfig returns the renderer settings
func (c *Config) RenderConfig() (render.Config, error) {
	token, err := c.Token()
	if err != nil {
		return render.Config{}, err
	}
	return render.Config{
		DisplayToken: token,
		Color:        !c.NoColor,
	}, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string) bool {
	val, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	return err == nil && val
}
