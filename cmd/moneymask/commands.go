package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rpgo/money-mask/internal/binding"
	"github.com/rpgo/money-mask/internal/config"
	"github.com/rpgo/money-mask/internal/output"
	"github.com/rpgo/money-mask/internal/terminal"
	"github.com/rpgo/money-mask/pkg/mask"
)

// ErrNotTerminal is returned by edit when stdin is not an interactive terminal.
var ErrNotTerminal = errors.New("interactive editing requires a terminal")

func newFormatCmd(g *globalFlags) *cobra.Command {
	var asNumber bool
	cmd := &cobra.Command{
		Use:   "format [input...]",
		Short: "Mask raw input (reads lines from stdin when no input is given)",
		Example: `  moneymask format 123456              # 1,234.56
  moneymask format --number 1234.5     # 1,234.50
  moneymask format --prefix 'R$ ' --decimal , --thousands . 1234567`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.resolveConfig(cmd)
			if err != nil {
				return err
			}
			inputs, err := inputsFrom(cmd, args)
			if err != nil {
				return err
			}
			batch := &output.Batch{Kind: output.KindFormat, Config: cfg}
			for _, in := range inputs {
				masked := mask.Format(in, cfg)
				if asNumber {
					v, err := strconv.ParseFloat(strings.TrimSpace(in), 64)
					if err != nil {
						return fmt.Errorf("input %q is not a number: %w", in, err)
					}
					masked = mask.FormatFloat(v, cfg)
				}
				batch.Results = append(batch.Results, output.Result{
					Input:  in,
					Masked: masked,
					Value:  mask.Unformat(masked, cfg.Precision),
				})
			}
			return output.GenerateReport(cmd.OutOrStdout(), batch, g.output)
		},
	}
	cmd.Flags().BoolVarP(&asNumber, "number", "n", false, "treat input as the amount itself instead of typed digits")
	return cmd
}

func newUnformatCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "unformat [masked...]",
		Short: "Recover the number behind masked text",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.resolveConfig(cmd)
			if err != nil {
				return err
			}
			inputs, err := inputsFrom(cmd, args)
			if err != nil {
				return err
			}
			batch := &output.Batch{Kind: output.KindUnformat, Config: cfg}
			for _, in := range inputs {
				batch.Results = append(batch.Results, output.Result{
					Input:  in,
					Masked: in,
					Value:  mask.Unformat(in, cfg.Precision),
				})
			}
			return output.GenerateReport(cmd.OutOrStdout(), batch, g.output)
		},
	}
}

func newCaretCmd(g *globalFlags) *cobra.Command {
	var focus bool
	cmd := &cobra.Command{
		Use:   "caret <text>...",
		Short: "Replay an edit: reformat text whose caret is marked with '|'",
		Example: `  moneymask caret '1,2349|.56'    # 12,349|.56
  moneymask caret --suffix ' %' --focus '1.25 %'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.resolveConfig(cmd)
			if err != nil {
				return err
			}
			batch := &output.Batch{Kind: output.KindCaret, Config: cfg}
			for i, in := range args {
				text, caret := output.SplitCaret(in)
				surface := binding.NewMemorySurface(fmt.Sprintf("arg%d", i), text, caret)
				b, err := binding.Bind(surface, cfg, binding.WithReassertDelay(0), binding.WithLogger(g.logger(cmd)))
				if err != nil {
					return err
				}
				if focus {
					b.Focus()
				}
				pos := surface.Caret()
				batch.Results = append(batch.Results, output.Result{
					Input:  in,
					Masked: surface.Text(),
					Value:  b.Value(),
					Caret:  &pos,
				})
				_ = b.Close()
			}
			return output.GenerateReport(cmd.OutOrStdout(), batch, g.output)
		},
	}
	cmd.Flags().BoolVar(&focus, "focus", false, "place the caret as on focus instead of after an edit")
	return cmd
}

func newPresetsCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the presets of a preset file with a sample amount",
		RunE: func(cmd *cobra.Command, args []string) error {
			if g.configFile == "" {
				return errors.New("presets requires --config")
			}
			parser := config.NewInputParser()
			file, err := parser.LoadFromFile(g.configFile)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PRESET\tSAMPLE")
			for _, name := range config.PresetNames(file) {
				cfg, err := parser.Resolve(file, name)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%s\n", name, mask.FormatFloat(-1234567.891, cfg))
			}
			return tw.Flush()
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init <path>",
		Short: "Write an example preset file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.SaveConfiguration(config.NewInputParser().CreateExampleConfiguration(), args[0]); err != nil {
				return fmt.Errorf("failed to write %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	})
	return cmd
}

func newEditCmd(g *globalFlags) *cobra.Command {
	var label, initial string
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Type an amount into a live-masked terminal field",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return ErrNotTerminal
			}
			cfg, err := g.resolveConfig(cmd)
			if err != nil {
				return err
			}
			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("failed to open terminal: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("failed to initialize terminal: %w", err)
			}
			res, err := terminal.Run(screen, cfg, terminal.Options{Label: label, Initial: initial, Logger: g.logger(cmd)})
			screen.Fini()
			if err != nil {
				return err
			}
			batch := &output.Batch{Kind: output.KindFormat, Config: cfg, Results: []output.Result{
				{Input: initial, Masked: res.Text, Value: res.Value},
			}}
			if g.output == "text" {
				return printModel(cmd.OutOrStdout(), batch)
			}
			return output.GenerateReport(cmd.OutOrStdout(), batch, g.output)
		},
	}
	cmd.Flags().StringVar(&label, "label", "Amount:", "label shown before the field")
	cmd.Flags().StringVar(&initial, "value", "", "initial field content")
	return cmd
}

// printModel prints what a consumer of the field receives: the masked text
// when the configuration is masked, the number otherwise.
func printModel(w io.Writer, batch *output.Batch) error {
	r := batch.Results[0]
	change := binding.Change{Text: r.Masked, Value: r.Value, Masked: batch.Config.Masked}
	if change.Masked {
		_, err := fmt.Fprintln(w, change.Model())
		return err
	}
	_, err := fmt.Fprintln(w, output.FormatValue(r.Value, batch.Config.Precision))
	return err
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// inputsFrom returns args, or the non-empty lines of stdin when args is empty.
func inputsFrom(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var lines []string
	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		if line := strings.TrimRight(sc.Text(), "\r"); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return lines, nil
}
