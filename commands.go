package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/go-entail/entail/kb"
	"github.com/go-entail/entail/logic"
	"github.com/go-entail/entail/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl(cmd)
	},
}

var proveCmd = &cobra.Command{
	Use:   "prove [flags] question",
	Short: "Decide one question against a set of axioms",
	Long: `Decide whether the question follows from the given axioms.
Axioms are passed with repeated -a flags and/or loaded from a file with one
formula per line. The exit status is 0 when the question is entailed and 1
when it is not.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		base := kb.New(kb.WithLogger(newLogger(cmd, cfg)), kb.WithMaxSteps(cfg.MaxSteps))
		axioms, _ := cmd.Flags().GetStringArray("axiom")
		if path, _ := cmd.Flags().GetString("file"); path != "" {
			fromFile, err := readFormulaLines(path)
			if err != nil {
				return err
			}
			axioms = append(axioms, fromFile...)
		}
		for _, axiom := range axioms {
			if err := base.SubmitAxiom(axiom); err != nil {
				return fmt.Errorf("axiom %q: %w", axiom, err)
			}
		}
		proved, err := base.SubmitQuestion(args[0])
		if err != nil {
			return err
		}
		if !proved {
			fmt.Fprintln(cmd.OutOrStdout(), "not proved")
			os.Exit(1)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "proved")
		return nil
	},
}

var cnfCmd = &cobra.Command{
	Use:   "cnf formula",
	Short: "Print the clause-set normal form of a formula",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := logic.Parse(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), logic.Clauses(f))
		return nil
	},
}

var dimacsCmd = &cobra.Command{
	Use:   "dimacs [flags]",
	Short: "Emit the axioms as a DIMACS CNF problem",
	Long: `Normalize a set of axioms and write them in DIMACS CNF format, so
they can be handed to any SAT solver. Axioms are read from the file given
with --file, or from standard input, one formula per line.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		base := kb.New(kb.WithLogger(newLogger(cmd, cfg)))
		var lines []string
		if path, _ := cmd.Flags().GetString("file"); path != "" {
			lines, err = readFormulaLines(path)
		} else {
			lines, err = scanFormulaLines(cmd)
		}
		if err != nil {
			return err
		}
		for _, line := range lines {
			if err := base.SubmitAxiom(line); err != nil {
				return fmt.Errorf("axiom %q: %w", line, err)
			}
		}
		return base.WriteDimacs(cmd.OutOrStdout())
	},
}

func init() {
	proveCmd.Flags().StringArrayP("axiom", "a", nil, "axiom formula (repeatable)")
	proveCmd.Flags().String("file", "", "file with one axiom per line")
	dimacsCmd.Flags().String("file", "", "file with one axiom per line")
	rootCmd.AddCommand(replCmd, proveCmd, cnfCmd, dimacsCmd)
}

// runRepl drives an interactive session on the process's standard streams.
func runRepl(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	base := kb.New(kb.WithLogger(newLogger(cmd, cfg)), kb.WithMaxSteps(cfg.MaxSteps))
	useColor := cfg.Color && isatty.IsTerminal(os.Stdout.Fd())
	return repl.New(base, os.Stdout, repl.WithColor(useColor)).Run(os.Stdin)
}

// readFormulaLines reads one formula per line from path, skipping blank
// lines.
func readFormulaLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// scanFormulaLines reads formulas from the command's standard input until a
// blank line or end of input.
func scanFormulaLines(cmd *cobra.Command) ([]string, error) {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
