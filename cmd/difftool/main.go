// Command difftool is the CLI collaborator from the external interface
// contract: it reads two files, runs editordiff.Compute, and prints a
// header summary followed by each mapping in source order.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	flagIgnoreTrimWhitespace bool
	flagTimeoutMs            uint32
	flagExtendToSubwords     bool
	flagDebug                bool
	flagProfile              string
	flagProfileDir           string
	flagConfigPath           string
	flagVerbose              bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "difftool <original> <modified>",
	Short: "Compute an editor-grade line and character diff between two files",
	Long: `difftool reads two files whole, splits each on raw newlines, and runs
the structured line+character diff engine over them.

It prints a short header summary (how many line ranges changed, how many
of those are insertions, deletions and modifications, and whether the
computation hit its deadline) followed by every changed
line range and its inner character-level highlights, in source order.`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.EncoderConfig.TimeKey = ""
		if flagVerbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		} else {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("difftool: init logger: %w", err)
		}
		return nil
	},
	RunE: runDiff,
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolVar(&flagIgnoreTrimWhitespace, "ignore-trim-whitespace", false, "suppress whitespace-only rescan; trimmed-equal lines read as fully unchanged")
	flags.Uint32Var(&flagTimeoutMs, "timeout", 0, "computation deadline in milliseconds (0 = none)")
	flags.BoolVar(&flagExtendToSubwords, "extend-to-subwords", false, "run the camelCase/digit subword merge pass after whole-word extension (it merges nothing that pass left unmerged)")
	flags.BoolVar(&flagDebug, "debug", false, "dump the full result tree via go-spew")
	flags.StringVar(&flagProfile, "profile", "", "capture a profile while computing: cpu|fgprof")
	flags.StringVar(&flagProfileDir, "profile-dir", ".", "directory profile output is written to")
	flags.StringVar(&flagConfigPath, "config", "", "YAML file supplying default options, overridden by explicit flags")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug-level logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
