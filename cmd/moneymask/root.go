package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/rpgo/money-mask/internal/binding"
	"github.com/rpgo/money-mask/internal/config"
	"github.com/rpgo/money-mask/pkg/mask"
)

const version = "2.0.0"

// globalFlags holds the flags shared by every command.
type globalFlags struct {
	configFile string
	preset     string
	output     string
	verbose    bool

	precision int
	decimal   string
	thousands string
	prefix    string
	suffix    string
	masked    bool
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:           "moneymask",
		Short:         "Format and unformat currency input masks",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&g.configFile, "config", "c", "", "preset file (YAML)")
	pf.StringVarP(&g.preset, "preset", "p", "", "preset name from the preset file")
	pf.StringVarP(&g.output, "output", "o", "text", "output format (text, table, csv, json, yaml)")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "log to stderr")
	pf.IntVar(&g.precision, "precision", 2, "fractional digits (0-20)")
	pf.StringVar(&g.decimal, "decimal", ".", "decimal separator")
	pf.StringVar(&g.thousands, "thousands", ",", "thousands separator")
	pf.StringVar(&g.prefix, "prefix", "", "literal placed before the number")
	pf.StringVar(&g.suffix, "suffix", "", "literal placed after the number")
	pf.BoolVar(&g.masked, "masked", false, "report the masked text instead of the number")

	root.AddCommand(
		newFormatCmd(g),
		newUnformatCmd(g),
		newCaretCmd(g),
		newPresetsCmd(g),
		newEditCmd(g),
	)
	return root
}

// resolveConfig merges defaults, the preset file and explicitly set flags.
// Only flags the user actually passed override, so "--thousands ''" clears
// the separator while an absent flag keeps the preset value.
func (g *globalFlags) resolveConfig(cmd *cobra.Command) (mask.Config, error) {
	var file *config.File
	parser := config.NewInputParser()
	if g.configFile != "" {
		f, err := parser.LoadFromFile(g.configFile)
		if err != nil {
			return mask.Config{}, err
		}
		file = f
	}
	cfg, err := parser.Resolve(file, g.preset)
	if err != nil {
		return mask.Config{}, err
	}

	flags := cmd.Flags()
	opts := &mask.Options{}
	if flags.Changed("precision") {
		opts.Precision = mask.Int(g.precision)
	}
	if flags.Changed("decimal") {
		opts.Decimal = mask.String(g.decimal)
	}
	if flags.Changed("thousands") {
		opts.Thousands = mask.String(g.thousands)
	}
	if flags.Changed("prefix") {
		opts.Prefix = mask.String(g.prefix)
	}
	if flags.Changed("suffix") {
		opts.Suffix = mask.String(g.suffix)
	}
	if flags.Changed("masked") {
		opts.Masked = mask.Bool(g.masked)
	}
	return mask.Merge(cfg, opts), nil
}

func (g *globalFlags) logger(cmd *cobra.Command) binding.Logger {
	if !g.verbose {
		return binding.NopLogger{}
	}
	return &stdLogger{l: log.New(cmd.ErrOrStderr(), "moneymask ", log.LstdFlags)}
}

// stdLogger adapts a standard library logger to binding.Logger.
type stdLogger struct{ l *log.Logger }

func (s *stdLogger) Debugf(format string, args ...any) { s.out("DEBUG", format, args...) }
func (s *stdLogger) Infof(format string, args ...any)  { s.out("INFO", format, args...) }
func (s *stdLogger) Warnf(format string, args ...any)  { s.out("WARN", format, args...) }
func (s *stdLogger) Errorf(format string, args ...any) { s.out("ERROR", format, args...) }

func (s *stdLogger) out(level, format string, args ...any) {
	s.l.Printf("%s %s", level, fmt.Sprintf(format, args...))
}
