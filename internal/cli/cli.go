package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/overlaygo/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("overlaygo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
OverlayGo - A declarative build-dependency overlay tool.

Usage:
  overlaygo [options] [OVERLAY_PATH]

Arguments:
  OVERLAY_PATH
    Path to a single .hcl overlay file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	registryFlag := flagSet.String("registry", "", "Path to the base registry YAML document (required).")
	overlayFlag := flagSet.String("overlay", "", "Path to the overlay file or directory.")
	outFlag := flagSet.String("out", "", "Write the augmented registry to this file instead of stdout.")
	checkFlag := flagSet.Bool("check", false, "Validate and merge the overlays without writing any output.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	overlayPath := *overlayFlag
	if overlayPath == "" && flagSet.NArg() > 0 {
		overlayPath = flagSet.Arg(0)
	}
	slog.Debug("Overlay path determined.", "path", overlayPath)

	if *registryFlag == "" || overlayPath == "" {
		slog.Debug("Required paths missing, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		RegistryPath: *registryFlag,
		OverlayPath:  overlayPath,
		OutPath:      *outFlag,
		CheckOnly:    *checkFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
