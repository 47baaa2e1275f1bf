// Package cli implements the roman command line tool.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/auth-platform/roman/libs/go/src/config"
	apperrors "github.com/auth-platform/roman/libs/go/src/errors"
	"github.com/auth-platform/roman/libs/go/src/logging"
)

// envPrefix scopes environment overrides, e.g. ROMAN_OUTPUT_FORMAT.
const envPrefix = "ROMAN"

// Configuration keys.
const (
	keyOutputFormat = "output.format"
	keyLogLevel     = "log.level"
	keyLogFormat    = "log.format"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// version is overridden at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

// app carries state shared by the command tree for one invocation.
type app struct {
	configPath string
	output     string
	logLevel   string
	logFormat  string

	cfg      *config.Config
	logger   *slog.Logger
	exitCode int
}

// Execute runs the command tree with args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd, a := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		return a.report(cmd, err)
	}
	return a.exitCode
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{logger: logging.Nop()}

	cmd := &cobra.Command{
		Use:   "roman",
		Short: "Convert, validate and compute with Roman numerals",
		Long: `roman converts between integers and canonical Roman numerals in the
range 1..3999, validates numerals and evaluates arithmetic on them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML or JSON config file (env "+envPrefix+"_CONFIG)")
	flags.StringVarP(&a.output, "output", "o", formatText, "output format: text, json or yaml")
	flags.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flags.StringVar(&a.logFormat, "log-format", logging.FormatText, "log format: text or json")

	cmd.AddCommand(
		newParseCmd(a),
		newFormatCmd(a),
		newValidateCmd(a),
		newCalcCmd(a),
		newVersionCmd(),
	)
	return cmd, a
}

// setup layers configuration as defaults < file < environment < flags and
// builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	logDefaults := logging.DefaultConfig()
	cfg := config.New().WithDefaults(map[string]any{
		keyOutputFormat: formatText,
		keyLogLevel:     logDefaults.Level,
		keyLogFormat:    logDefaults.Format,
	})

	path := a.configPath
	if path == "" {
		path = os.Getenv(envPrefix + "_CONFIG")
	}
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return apperrors.BadRequest("cannot load config file").
				WithDetail("path", path).
				WithCause(err)
		}
	}
	cfg.LoadEnv(envPrefix)

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Set(keyOutputFormat, a.output)
	}
	if flags.Changed("log-level") {
		cfg.Set(keyLogLevel, a.logLevel)
	}
	if flags.Changed("log-format") {
		cfg.Set(keyLogFormat, a.logFormat)
	}

	checks := []struct {
		key     string
		allowed []string
	}{
		{keyOutputFormat, []string{formatText, formatJSON, formatYAML}},
		{keyLogLevel, []string{"debug", "info", "warn", "error"}},
		{keyLogFormat, []string{logging.FormatText, logging.FormatJSON}},
	}
	for _, c := range checks {
		if err := cfg.ValidateOneOf(c.key, c.allowed...); err != nil {
			return apperrors.BadRequest("invalid configuration").
				WithDetail("key", c.key).
				WithCause(err)
		}
	}

	a.cfg = cfg
	a.logger = logging.NewLogger(cmd.ErrOrStderr(), logging.Config{
		Level:  cfg.GetString(keyLogLevel),
		Format: cfg.GetString(keyLogFormat),
	})
	a.logger.Debug("configuration loaded", "command", cmd.Name(), "settings", cfg.All())
	return nil
}

// format returns the configured output format. Before setup has run it
// falls back to the flag value so early failures still honour -o.
func (a *app) format() string {
	if a.cfg != nil {
		return a.cfg.GetString(keyOutputFormat)
	}
	switch a.output {
	case formatJSON, formatYAML:
		return a.output
	default:
		return formatText
	}
}

// report prints err in the configured format and returns its exit code.
func (a *app) report(cmd *cobra.Command, err error) int {
	appErr, ok := apperrors.AsType[*apperrors.AppError](err)
	if !ok {
		// Errors raised by cobra itself (unknown command, bad flag) are usage errors.
		appErr = apperrors.BadRequest(err.Error()).WithCause(err)
	}

	a.logger.LogAttrs(cmd.Context(), slog.LevelDebug, "command failed", appErr.LogAttrs()...)

	if f := a.format(); f != formatText {
		if encErr := encode(cmd.OutOrStdout(), f, appErr.ToResponse()); encErr == nil {
			return appErr.ExitCode()
		}
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", describe(appErr))
	return appErr.ExitCode()
}

// describe renders an error chain for humans, with the offending input when known.
func describe(e *apperrors.AppError) string {
	var parts []string
	var err error = e
	for err != nil {
		appErr, ok := err.(*apperrors.AppError)
		if !ok {
			parts = append(parts, err.Error())
			break
		}
		parts = append(parts, appErr.Message)
		err = appErr.Unwrap()
	}
	msg := strings.Join(parts, ": ")
	if input, ok := e.Details["input"]; ok {
		msg = fmt.Sprintf("%s (input %q)", msg, input)
	}
	return msg
}
