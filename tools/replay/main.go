package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rpgo/money-mask/internal/binding"
	"github.com/rpgo/money-mask/internal/config"
	"github.com/rpgo/money-mask/internal/output"
	"github.com/rpgo/money-mask/pkg/mask"
)

// replay prints the field after every keystroke of a typing session.
// '<' is a backspace.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: replay <keys> [preset-file preset]")
		return
	}
	keys := os.Args[1]
	cfg := mask.DefaultConfig()
	if len(os.Args) >= 4 {
		p := config.NewInputParser()
		file, err := p.LoadFromFile(os.Args[2])
		if err != nil {
			panic(err)
		}
		if cfg, err = p.Resolve(file, os.Args[3]); err != nil {
			panic(err)
		}
	}

	s := binding.NewMemorySurface("replay", "", 0)
	b, err := binding.Bind(s, cfg, binding.WithReassertDelay(0))
	if err != nil {
		panic(err)
	}
	defer b.Close()

	pos := s.Caret()
	fmt.Printf("%-6s %s\n", "start", output.WithCaret(s.Text(), &pos))
	for _, k := range keys {
		label := string(k)
		if k == '<' {
			label = "bksp"
			s.Backspace()
		} else {
			s.Type(string(k))
		}
		b.Input()
		pos = s.Caret()
		fmt.Printf("%-6s %s\n", label, output.WithCaret(s.Text(), &pos))
	}
	fmt.Println(strings.Repeat("-", 20))
	fmt.Printf("value: %s\n", output.FormatValue(b.Value(), cfg.Precision))
}
