package terminal

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/rpgo/money-mask/internal/binding"
	"github.com/rpgo/money-mask/pkg/mask"
)

// ErrCanceled is returned when the user leaves the field without accepting.
var ErrCanceled = errors.New("input canceled")

// Result is the accepted field content.
type Result struct {
	Text  string
	Value float64
}

// Options configures Run.
type Options struct {
	Label   string
	Initial string
	Logger  binding.Logger
}

// Run edits one masked field on an initialized screen until Enter (accept)
// or Esc/Ctrl-C (cancel).
func Run(screen tcell.Screen, cfg mask.Config, opts Options) (Result, error) {
	field := NewField("terminal", opts.Label)
	field.SetText(opts.Initial)
	field.SetCaret(mask.Length(opts.Initial))

	var last binding.Change
	b, err := binding.Bind(field, cfg,
		binding.WithLogger(opts.Logger),
		// Nothing here resets the caret behind our back.
		binding.WithReassertDelay(0),
		binding.WithChangeHandler(func(c binding.Change) { last = c }),
	)
	if err != nil {
		return Result{}, err
	}
	defer b.Close()
	field.OnInput = b.Input
	field.OnFocus = b.Focus
	field.Focus()

	for {
		draw(screen, field, last)
		switch ev := screen.PollEvent().(type) {
		case nil:
			return Result{}, ErrCanceled
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEnter:
				return Result{Text: field.Text(), Value: b.Value()}, nil
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return Result{}, ErrCanceled
			default:
				field.HandleKey(ev)
			}
		}
	}
}

func draw(screen tcell.Screen, field *Field, last binding.Change) {
	screen.Clear()
	style := tcell.StyleDefault
	field.Draw(screen, 0, 0, style)
	drawString(screen, 0, 1, fmt.Sprintf("value: %v", last.Model()), style.Dim(true))
	drawString(screen, 0, 2, "enter: accept  esc: cancel", style.Dim(true))
	screen.Show()
}
