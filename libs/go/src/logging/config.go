// Package logging builds the structured slog loggers used by the roman tools.
package logging

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config configures a logger.
type Config struct {
	// Level is one of debug, info, warn or error.
	Level string

	// Format is text or json.
	Format string
}

// DefaultConfig returns sensible defaults for a command line tool.
func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: FormatText,
	}
}
