// Command entail is an interactive propositional-logic decision tool.
// Axioms accumulate over a session; questions are answered by resolution
// refutation.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-entail/entail/config"
)

var rootCmd = &cobra.Command{
	Use:   "entail",
	Short: "A propositional-logic prover based on resolution refutation",
	Long: `entail accumulates propositional axioms and decides whether a posed
question logically follows from them, using resolution refutation.

Formulas use single-character variables and the operators "!", "&", "|",
"->", "<-" and "<->", plus the constants "*" (tautology) and "~"
(contradiction). Run without a subcommand to start an interactive session:
a line ending in "?" is a question, any other line is an axiom, and a blank
line ends the session.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl(cmd)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "path to a YAML configuration file")
	flags.Bool("verbose", false, "log at debug level")
	flags.Int("max-steps", 0, "resolution step budget per question (0 = unbounded)")
	flags.Bool("trace", false, "log every derived clause")
	flags.Bool("no-color", false, "disable colored output")
}

// loadConfig merges the configuration file with any explicitly set flags.
// Flags win over the file, which wins over the defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("max-steps") {
		cfg.MaxSteps, _ = cmd.Flags().GetInt("max-steps")
	}
	if cmd.Flags().Changed("trace") {
		cfg.Trace, _ = cmd.Flags().GetBool("trace")
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.Color = false
	}
	return cfg, nil
}

// newLogger builds the logger shared by the knowledge base and the engine.
// The resolution trace is debug-level output, so --trace and --verbose both
// lower the threshold.
func newLogger(cmd *cobra.Command, cfg config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose || cfg.Trace {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.StandardLogger().Error(err)
		os.Exit(2)
	}
}
