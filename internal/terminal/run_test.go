package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/money-mask/pkg/mask"
)

func simScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	t.Cleanup(s.Fini)
	s.SetSize(40, 3)
	return s
}

func TestRun_Accept(t *testing.T) {
	s := simScreen(t)
	for _, r := range "4321" {
		s.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
	s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	res, err := Run(s, mask.DefaultConfig(), Options{Label: "Amount"})
	require.NoError(t, err)
	assert.Equal(t, "43.21", res.Text)
	assert.Equal(t, 43.21, res.Value)
}

func TestRun_InitialValue(t *testing.T) {
	s := simScreen(t)
	s.InjectKey(tcell.KeyBackspace2, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	cfg := mask.Merge(mask.DefaultConfig(), &mask.Options{Suffix: mask.String(" %")})
	res, err := Run(s, cfg, Options{Initial: "1250"})
	require.NoError(t, err)
	assert.Equal(t, "1.25 %", res.Text)
}

func TestRun_Cancel(t *testing.T) {
	s := simScreen(t)
	s.InjectKey(tcell.KeyRune, '7', tcell.ModNone)
	s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	_, err := Run(s, mask.DefaultConfig(), Options{})
	assert.ErrorIs(t, err, ErrCanceled)
}
