package output

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/rpgo/money-mask/pkg/mask"
)

// ConsoleFormatter prints one line per result: the recovered value for
// unformat batches, the masked text otherwise. Edit simulations mark the
// caret with '|'.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "text" }

func (c ConsoleFormatter) Format(batch *Batch) ([]byte, error) {
	var buf bytes.Buffer
	for _, r := range batch.Results {
		if batch.Kind == KindUnformat {
			fmt.Fprintln(&buf, FormatValue(r.Value, batch.Config.Precision))
			continue
		}
		fmt.Fprintln(&buf, WithCaret(r.Masked, r.Caret))
	}
	return buf.Bytes(), nil
}

// TableFormatter prints an aligned table with the configuration header.
type TableFormatter struct{}

func (t TableFormatter) Name() string { return "table" }

func (t TableFormatter) Format(batch *Batch) ([]byte, error) {
	var buf bytes.Buffer
	cfg := batch.Config
	fmt.Fprintf(&buf, "precision=%d decimal=%q thousands=%q prefix=%q suffix=%q masked=%t\n",
		cfg.Precision, cfg.Decimal, cfg.Thousands, cfg.Prefix, cfg.Suffix, cfg.Masked)
	fmt.Fprintln(&buf, strings.Repeat("=", 40))
	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INPUT\tMASKED\tVALUE")
	for _, r := range batch.Results {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Input, WithCaret(r.Masked, r.Caret), FormatValue(r.Value, cfg.Precision))
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WithCaret inserts '|' into s at caret, counted in mask.Length units.
func WithCaret(s string, caret *int) string {
	if caret == nil {
		return s
	}
	var b strings.Builder
	i := 0
	for _, g := range mask.Graphemes(s) {
		if i == *caret {
			b.WriteByte('|')
		}
		b.WriteString(g)
		i++
	}
	if *caret >= i {
		b.WriteByte('|')
	}
	return b.String()
}

// SplitCaret removes the first '|' from s and returns the caret offset it
// marked. Without a marker the caret is at the end.
func SplitCaret(s string) (string, int) {
	before, after, found := strings.Cut(s, "|")
	if !found {
		return s, mask.Length(s)
	}
	return before + after, mask.Length(before)
}
