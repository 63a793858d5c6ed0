package integration

import (
	"testing"

	"github.com/rpgo/money-mask/internal/binding"
	"github.com/rpgo/money-mask/internal/config"
	"github.com/rpgo/money-mask/pkg/mask"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadPresets(t *testing.T) (*config.InputParser, *config.File) {
	t.Helper()
	parser := config.NewInputParser()
	file, err := parser.LoadFromFile("../testdata/presets.yaml")
	require.NoError(t, err)
	return parser, file
}

func TestEndToEndTyping(t *testing.T) {
	parser, file := loadPresets(t)
	assert.Equal(t, []string{"brl", "chf", "pct", "usd"}, config.PresetNames(file))

	tests := []struct {
		preset string
		keys   string
		want   string
		model  any
	}{
		{"usd", "123456", "$1,234.56", 1234.56},
		{"brl", "1234567", "R$ 1.234,567 #", 1234.567},
		{"chf", "100000000", "CHF 1'000'000.00", 1000000.0},
		{"pct", "125", "12.5 %", "12.5 %"},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			cfg, err := parser.Resolve(file, tt.preset)
			require.NoError(t, err)

			surface := binding.NewMemorySurface(tt.preset, "", 0)
			var last binding.Change
			b, err := binding.Bind(surface, cfg,
				binding.WithReassertDelay(0),
				binding.WithChangeHandler(func(c binding.Change) { last = c }),
			)
			require.NoError(t, err)
			defer b.Close()

			for _, k := range tt.keys {
				surface.Type(string(k))
				b.Input()
			}
			assert.Equal(t, tt.want, surface.Text())
			assert.Equal(t, tt.model, last.Model())
			assert.Equal(t, mask.Length(tt.want)-mask.Length(cfg.Suffix), surface.Caret())

			// The number survives a reformat with the same configuration.
			assert.Equal(t, tt.want, mask.FormatFloat(b.Value(), cfg))
		})
	}
}

func TestRegistryWithPresetOptions(t *testing.T) {
	_, file := loadPresets(t)
	registry := binding.Install(file.Global)
	defer registry.Close()

	brl := file.Presets["brl"]
	s := binding.NewMemorySurface("price", "9876543", 7)
	b, err := registry.Bind(s, &brl, binding.WithReassertDelay(0))
	require.NoError(t, err)
	assert.Equal(t, "R$ 9.876,543 #", s.Text())

	// Deleting the last digit shifts everything right of the separators.
	s.SetCaret(mask.Length("R$ 9.876,543"))
	s.Backspace()
	b.Input()
	assert.Equal(t, "R$ 987,654 #", s.Text())
	assert.Equal(t, mask.Length("R$ 987,654"), s.Caret())

	require.True(t, registry.Update("price", &mask.Options{Precision: mask.Int(0)}))
	b.Input()
	assert.Equal(t, "987,654", s.Text())

	registry.Unbind("price")
	assert.Zero(t, registry.Len())
}
