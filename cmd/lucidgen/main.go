// Package main provides the CLI entry point for lucidgen, a tool that
// parses, validates, normalizes, and extends schema description files.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lucidgen/core/descriptions"
	"github.com/lucidgen/core/descriptions/serde"
	"github.com/lucidgen/core/extension"
	"github.com/lucidgen/core/log"
	"github.com/lucidgen/core/profiler"
)

func main() {
	logCfg := log.NewConfig()
	profilerCfg := profiler.New()

	rootCmd := &cobra.Command{
		Use:           "lucidgen",
		Short:         "Parse, validate, and extend schema description files",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			handler, err := logCfg.NewHandler(os.Stderr)
			if err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}

			slog.SetDefault(slog.New(handler))

			return profilerCfg.Start()
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return profilerCfg.Stop()
		},
	}

	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	profilerCfg.RegisterFlags(rootCmd.PersistentFlags())

	if err := logCfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	rootCmd.AddCommand(newValidateCmd(), newPrintCmd(), newExtendCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Parse and validate a description file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			_, err := decodeFile(args[0])
			if err != nil {
				return err
			}

			fmt.Println("ok")

			return nil
		},
	}
}

func newPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print <file>",
		Short: "Parse, normalize, and re-serialize a description file to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			d, err := decodeFile(args[0])
			if err != nil {
				return err
			}

			out, err := serde.Encode(d)
			if err != nil {
				return fmt.Errorf("lucidgen: encode: %w", err)
			}

			_, err = os.Stdout.Write(append(out, '\n'))

			return err
		},
	}
}

func newExtendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extend <file> <extension-root> <command>",
		Short: "Parse a description file and hand it to an extension command",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			file, extensionRoot, command := args[0], args[1], args[2]

			d, err := decodeFile(file)
			if err != nil {
				return err
			}

			encoded, err := serde.Encode(d)
			if err != nil {
				return fmt.Errorf("lucidgen: encode: %w", err)
			}

			var input any
			if err := json.Unmarshal(encoded, &input); err != nil {
				return fmt.Errorf("lucidgen: decode normalized form: %w", err)
			}

			raw, err := extension.Request(extensionRoot, command, input)
			if err != nil {
				return fmt.Errorf("lucidgen: %w", err)
			}

			_, err = os.Stdout.Write(append(raw, '\n'))

			return err
		},
	}
}

func decodeFile(path string) (*descriptions.Descriptions, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is an explicit CLI argument.
	if err != nil {
		return nil, fmt.Errorf("lucidgen: read %s: %w", path, err)
	}

	d, err := serde.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("lucidgen: %s: %w", path, err)
	}

	return d, nil
}
