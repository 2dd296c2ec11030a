package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/raymyers/cparse/pkg/cabs"
	"github.com/raymyers/cparse/pkg/cparse"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// Dump options
var (
	dParse       bool
	outputFormat = formatText
	watch        bool
)

// Arena options
var (
	arenaSize  int
	arenaLimit int
)

// Preprocessor options, accepted and ignored
var (
	includePaths []string
	defineFlags  []string
)

// Diagnostics options
var (
	logLevel   string
	profMode   string
	profileDir string
)

const (
	defaultArenaSize  = 1024
	defaultArenaLimit = 64 << 20
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	// Accept the single-dash -dparse spelling as well
	rootCmd.SetArgs(normalizeFlags(os.Args[1:]))
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

// normalizeFlags converts a single-dash -dparse to --dparse
func normalizeFlags(args []string) []string {
	result := make([]string, len(args))
	for i, arg := range args {
		if arg == "-dparse" {
			result[i] = "--dparse"
		} else {
			result[i] = arg
		}
	}
	return result
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cparse [file...]",
		Short: "cparse dumps the struct layouts declared in C headers",
		Long: `cparse parses the struct declarations of C source files and prints
each struct with its fields and their resolved types. Only primitive
field types with pointer and array declarators are understood; no
preprocessing is performed.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				cmd.Help()
				return nil
			}

			log := newLogger(errOut, logLevel)
			stopProfile, err := startProfile(profMode, profileDir)
			if err != nil {
				fmt.Fprintf(errOut, "cparse: %v\n", err)
				return err
			}
			defer stopProfile()

			cfg := &cparse.Config{
				IncludeDirs: includePaths,
				Defines:     defineFlags,
				Logger:      log,
			}

			if watch {
				return watchFiles(cmd.Context(), args, log, func(filename string) {
					// Errors are already reported; keep watching.
					_ = doDump(filename, cfg, out, errOut)
				})
			}

			var failed error
			for _, filename := range args {
				if err := doDump(filename, cfg, out, errOut); err != nil {
					failed = errors.Join(failed, err)
				}
			}
			return failed
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprintf(errOut, "cparse: %v\n", err)
		return err
	})

	rootCmd.Flags().BoolVarP(&dParse, "dparse", "", false, "Also write the dump next to each input as <file>.parsed")
	rootCmd.Flags().VarP(&outputFormat, "format", "f", "Output format (text or yaml)")
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-parse and dump whenever an input file changes")

	rootCmd.Flags().IntVar(&arenaSize, "arena-size", defaultArenaSize, "Initial arena size in bytes")
	rootCmd.Flags().IntVar(&arenaLimit, "arena-limit", defaultArenaLimit, "Largest arena size to retry with, in bytes")

	rootCmd.Flags().StringArrayVarP(&includePaths, "include", "I", nil, "Add directory to include search path (ignored)")
	rootCmd.Flags().StringArrayVarP(&defineFlags, "define", "D", nil, "Define macro NAME or NAME=VALUE (ignored)")

	rootCmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&profMode, "profile", "", "Enable profiling ("+strings.Join(profileModes(), ", ")+")")
	rootCmd.Flags().StringVar(&profileDir, "profile-dir", ".", "Profile output directory")

	return rootCmd
}

// newLogger builds the text logger used for diagnostics on errOut
func newLogger(errOut io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: lvl}))
}

// parseFile parses a file, growing the arena on exhaustion
func parseFile(filename string, cfg *cparse.Config, errOut io.Writer) (*cabs.Unit, error) {
	if len(includePaths) > 0 || len(defineFlags) > 0 {
		cfg.Logger.Warn("preprocessing is not supported; -I and -D are ignored")
	}
	unit, _, err := cparse.ParseFileGrowing(filename, arenaSize, arenaLimit, cfg)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return nil, err
	}
	return unit, nil
}

// render writes a unit in the selected format
func render(w io.Writer, unit *cabs.Unit) error {
	if outputFormat == formatYAML {
		data, err := cabs.MarshalYAML(unit)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	cabs.NewPrinter(w).PrintUnit(unit)
	return nil
}

// doDump parses the file and writes its dump to out, and with -dparse to a
// .parsed file as well
func doDump(filename string, cfg *cparse.Config, out, errOut io.Writer) error {
	unit, err := parseFile(filename, cfg, errOut)
	if err != nil {
		return err
	}

	if dParse {
		outputFilename := parsedOutputFilename(filename)
		outFile, err := os.Create(outputFilename)
		if err != nil {
			fmt.Fprintf(errOut, "cparse: error creating %s: %v\n", outputFilename, err)
			return err
		}
		defer outFile.Close()

		if err := render(outFile, unit); err != nil {
			fmt.Fprintf(errOut, "cparse: error writing %s: %v\n", outputFilename, err)
			return err
		}
	}

	return render(out, unit)
}

// parsedOutputFilename returns the output filename for -dparse
// input.h -> input.parsed (input.parsed.yaml with --format yaml)
func parsedOutputFilename(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	if outputFormat == formatYAML {
		return base + ".parsed.yaml"
	}
	return base + ".parsed"
}
