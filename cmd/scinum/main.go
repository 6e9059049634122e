package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adavidzh/scinum/domain/number"
	"github.com/adavidzh/scinum/domain/rounding"
	"github.com/adavidzh/scinum/internal"
	"github.com/adavidzh/scinum/internal/config"
)

var logger = internal.DefaultLogger

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "scinum",
		Short: "Significant-figure rounding and formatting for values with uncertainties",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger = internal.NewLogger(internal.LogLevelDebug)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newRoundCmd(cfg),
		newFormatCmd(cfg),
		newPrefixCmd(),
		newSplitCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRoundCmd(cfg *config.Config) *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "round [value] [uncertainty...]",
		Short: "Round a value jointly with its uncertainties",
		Long: `Round a nominal value together with one or more uncertainty magnitudes
at the shared magnitude chosen by the rounding method (pdg, pub or one).

Example: scinum round 1.23 0.45678 0.078 --method pub`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseFloats(args)
			if err != nil {
				return err
			}
			logger.Debug("rounding %v with method %s", values, method)

			valStr, uncStrs, mag, err := rounding.RoundValue(
				values[0], values[1:], rounding.Method(method))
			if err != nil {
				return err
			}

			fmt.Printf("%s (+-%s) x 10^%d\n", valStr, strings.Join(uncStrs, ", +-"), mag)
			return nil
		},
	}

	cmd.Flags().StringVar(&method, "method", cfg.Method,
		"rounding method: pdg, pub or one")

	return cmd
}

func newFormatCmd(cfg *config.Config) *cobra.Command {
	var template string

	cmd := &cobra.Command{
		Use:   "format [value] [up] [down]",
		Short: "Render a value with a symmetric or asymmetric uncertainty",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseFloats(args)
			if err != nil {
				return err
			}
			logger.Debug("formatting %v with template %s", values, template)

			num, err := number.New(values[0], values[1:]...)
			if err != nil {
				return err
			}
			s, err := num.Str(template)
			if err != nil {
				return err
			}

			fmt.Println(s)
			return nil
		},
	}

	cmd.Flags().StringVar(&template, "template", cfg.Template,
		"precision template, e.g. .2 for two fractional digits")

	return cmd
}

func newPrefixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prefix [value]",
		Short: "Infer the SI prefix for a value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[0], err)
			}

			symbol, mag := rounding.InferSIPrefix(v)
			if symbol == "" {
				symbol = "(none)"
			}
			fmt.Printf("%s 10^%d\n", symbol, mag)
			return nil
		},
	}
}

func newSplitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "split [value]",
		Short: "Split a value into mantissa and power-of-ten exponent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[0], err)
			}

			m, e := rounding.SplitValue(v)
			fmt.Printf("%g x 10^%d\n", m, e)
			return nil
		},
	}
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", a, err)
		}
		out[i] = v
	}
	return out, nil
}
