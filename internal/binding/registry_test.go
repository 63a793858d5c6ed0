package binding

import (
	"fmt"
	"testing"

	"github.com/rpgo/money-mask/pkg/mask"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	NopLogger
	warnings []string
}

func (l *recordingLogger) Warnf(format string, args ...any) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}

func TestInstall_GlobalOptions(t *testing.T) {
	r := Install(&mask.Options{Prefix: mask.String("€ "), Decimal: mask.String(","), Thousands: mask.String(".")})
	base := r.Base()
	assert.Equal(t, "€ ", base.Prefix)
	assert.Equal(t, 2, base.Precision)

	assert.Equal(t, mask.DefaultConfig(), Install(nil).Base())
}

func TestRegistry_BindMergesOverBase(t *testing.T) {
	r := Install(&mask.Options{Prefix: mask.String("€ "), Decimal: mask.String(","), Thousands: mask.String(".")})
	s := newFakeSurface("price", "123456789")

	b, err := r.Bind(s, &mask.Options{Precision: mask.Int(3)}, WithReassertDelay(0))
	require.NoError(t, err)
	assert.Equal(t, "€ 123.456,789", s.Text())
	assert.Equal(t, 1, r.Len())

	got, ok := r.Lookup("price")
	require.True(t, ok)
	assert.Same(t, b, got)
}

func TestRegistry_BindNil(t *testing.T) {
	_, err := Install(nil).Bind(nil, nil)
	assert.ErrorIs(t, err, ErrNoSurface)
}

func TestRegistry_RebindReplaces(t *testing.T) {
	logger := &recordingLogger{}
	r := NewRegistry(mask.DefaultConfig(), logger)
	s := newFakeSurface("amount", "1")

	first, err := r.Bind(s, nil, WithReassertDelay(0))
	require.NoError(t, err)
	second, err := r.Bind(s, &mask.Options{Precision: mask.Int(0)}, WithReassertDelay(0))
	require.NoError(t, err)

	assert.Equal(t, 1, r.Len())
	got, _ := r.Lookup("amount")
	assert.Same(t, second, got)
	assert.Len(t, logger.warnings, 1)

	// The replaced binding no longer reacts to edits.
	s.SetText("77")
	first.Input()
	assert.Equal(t, "77", s.Text())
}

func TestRegistry_Update(t *testing.T) {
	r := Install(nil)
	s := newFakeSurface("amount", "1234")
	_, err := r.Bind(s, nil, WithReassertDelay(0))
	require.NoError(t, err)

	assert.True(t, r.Update("amount", &mask.Options{Suffix: mask.String(" BRL")}))
	assert.False(t, r.Update("missing", nil))

	b, _ := r.Lookup("amount")
	b.Input()
	assert.Equal(t, "12.34 BRL", s.Text())
}

func TestRegistry_UnbindAndClose(t *testing.T) {
	r := Install(nil)
	for i := 0; i < 3; i++ {
		_, err := r.Bind(newFakeSurface(fmt.Sprintf("f%d", i), ""), nil, WithReassertDelay(0))
		require.NoError(t, err)
	}
	assert.Equal(t, 3, r.Len())

	r.Unbind("f1")
	r.Unbind("nope")
	assert.Equal(t, 2, r.Len())
	_, ok := r.Lookup("f1")
	assert.False(t, ok)

	r.Close()
	assert.Zero(t, r.Len())
}

func TestRegistry_CloseThroughBinding(t *testing.T) {
	r := Install(nil)
	b, err := r.Bind(newFakeSurface("x", ""), nil, WithReassertDelay(0))
	require.NoError(t, err)
	require.NoError(t, b.Close())
	assert.Zero(t, r.Len())
}
