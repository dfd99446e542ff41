package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dknieriem/editordiff"
	"github.com/dknieriem/editordiff/internal/config"
	"github.com/dknieriem/editordiff/internal/profiling"
)

func runDiff(cmd *cobra.Command, args []string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	originalPath, modifiedPath := args[0], args[1]
	original, err := readLines(originalPath)
	if err != nil {
		return err
	}
	modified, err := readLines(modifiedPath)
	if err != nil {
		return err
	}

	stop, err := profiling.Start(profiling.Mode(flagProfile), flagProfileDir)
	if err != nil {
		return fmt.Errorf("difftool: %w", err)
	}
	defer func() {
		if stopErr := stop(); stopErr != nil {
			logger.Warn("profiling stop failed", zap.Error(stopErr))
		}
	}()

	result, err := editordiff.Compute(editordiff.DiffInput{
		Original: original,
		Modified: modified,
		Options:  opts,
	})
	if err != nil {
		return fmt.Errorf("difftool: compute diff: %w", err)
	}

	if result.HitTimeout {
		logger.Warn("diff computation hit its deadline; result is a partial best effort — rerun with a higher --timeout")
	}

	printSummary(cmd, originalPath, modifiedPath, result)
	printChanges(cmd, result)

	if flagDebug {
		spew.Fdump(cmd.OutOrStdout(), result)
	}

	return nil
}

// resolveOptions merges, in increasing priority, built-in defaults, an
// optional config file, and explicit flags (flags always win since
// cobra reports whether each was Changed).
func resolveOptions(cmd *cobra.Command) (editordiff.DiffOptions, error) {
	cfg := config.Default()
	if flagConfigPath != "" {
		loaded, err := config.Load(flagConfigPath)
		if err != nil {
			return editordiff.DiffOptions{}, fmt.Errorf("difftool: %w", err)
		}
		cfg = loaded
	}
	opts := cfg.Options()

	flags := cmd.Flags()
	if flags.Changed("ignore-trim-whitespace") {
		opts.IgnoreTrimWhitespace = flagIgnoreTrimWhitespace
	}
	if flags.Changed("timeout") {
		opts.MaxComputationTimeMs = flagTimeoutMs
	}
	if flags.Changed("extend-to-subwords") {
		opts.ExtendToSubwords = flagExtendToSubwords
	}
	return opts, nil
}

// readLines reads path whole and splits on raw "\n", preserving any
// trailing "\r" on each line, per the external interface contract; a
// trailing empty element after a final newline is kept.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("difftool: read %s: %w", path, err)
	}
	return strings.Split(string(data), "\n"), nil
}

func printSummary(cmd *cobra.Command, originalPath, modifiedPath string, result editordiff.LinesDiff) {
	inserted, deleted, modifiedCount := 0, 0, 0
	for _, c := range result.Changes {
		switch {
		case c.Original.Empty():
			inserted++
		case c.Modified.Empty():
			deleted++
		default:
			modifiedCount++
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s: %d changed ranges (%d inserted, %d deleted, %d modified), hit_timeout=%v\n",
		originalPath, modifiedPath, len(result.Changes), inserted, deleted, modifiedCount, result.HitTimeout)
}

func printChanges(cmd *cobra.Command, result editordiff.LinesDiff) {
	out := cmd.OutOrStdout()
	for _, c := range result.Changes {
		fmt.Fprintf(out, "@@ original %d,%d modified %d,%d @@\n", c.Original.Start, c.Original.EndExclusive, c.Modified.Start, c.Modified.EndExclusive)
		for _, inner := range c.InnerChanges {
			fmt.Fprintf(out, "    %d:%d-%d:%d -> %d:%d-%d:%d\n",
				inner.Original.Start.Line, inner.Original.Start.Column, inner.Original.End.Line, inner.Original.End.Column,
				inner.Modified.Start.Line, inner.Modified.Start.Column, inner.Modified.End.Line, inner.Modified.End.Column)
		}
	}
}
