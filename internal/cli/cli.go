// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/resumedesc/internal/app"
	"github.com/vk/resumedesc/internal/descriptor"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
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

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// The process environment is not read here; callers set Config.Environ.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("resumedesc", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
resumedesc - Load, validate and inspect the resume editor application descriptor.

Usage:
  resumedesc [options] [DESCRIPTOR_PATH]

Arguments:
  DESCRIPTOR_PATH
    Path to a .hcl/.yaml file or a directory of them. When omitted, the
    built-in resume editor descriptor is used.

Options:
`)
		flagSet.PrintDefaults()
	}

	descriptorFlag := flagSet.String("descriptor", "", "Path to the descriptor file or directory.")
	dFlag := flagSet.String("d", "", "Path to the descriptor file or directory (shorthand).")
	getFlag := flagSet.String("get", "", "Print one descriptor field as JSON, e.g. 'documentHead.title'.")
	exportFlag := flagSet.String("export", "", "Print the whole descriptor. Options: 'hcl', 'yaml' or 'json'.")
	renderHeadFlag := flagSet.Bool("render-head", false, "Print the <html> opening tag and the rendered <head> markup.")
	servePortFlag := flagSet.Int("serve-port", 0, "Port for the descriptor HTTP server. 0 is disabled.")
	envPrefixFlag := flagSet.String("env-prefix", descriptor.DefaultEnvPrefix, "Prefix of environment variables overriding runtimeConfig.public. Empty disables.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *descriptorFlag != "" {
		path = *descriptorFlag
	} else if *dFlag != "" {
		path = *dFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: ExitUsage, Message: "at most one DESCRIPTOR_PATH may be given"}
	}
	slog.Debug("Descriptor path determined.", "path", path)

	config, err := app.NewConfig(app.Config{
		DescriptorPath: path,
		Get:            *getFlag,
		Export:         strings.ToLower(*exportFlag),
		RenderHead:     *renderHeadFlag,
		ServePort:      *servePortFlag,
		EnvPrefix:      *envPrefixFlag,
		LogFormat:      strings.ToLower(*logFormatFlag),
		LogLevel:       strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
