package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigits(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"abc123def456", "123456"},
		{"123.45", "12345"},
		{"$1,234.56", "123456"},
		{"R$ -1.234,567 #", "1234567"},
		{"", "0"},
		{"abc", "0"},
		{"--", "0"},
		{"٣٤٥", "0"}, // non-ASCII digits are not digits here
		{"007", "007"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Digits(tt.in), "Digits(%q)", tt.in)
	}
}

func TestDigitsFloat(t *testing.T) {
	assert.Equal(t, "12345", DigitsFloat(123.45))
	assert.Equal(t, "0", DigitsFloat(0))
	assert.Equal(t, "0", DigitsFloat(-0.0))
	assert.Equal(t, "5", DigitsFloat(-5))
	assert.Equal(t, "121", DigitsFloat(1e21))
	assert.Equal(t, "17", DigitsFloat(1e-7))
	assert.Equal(t, "0000001", DigitsFloat(0.000001))
}

func TestNumberString(t *testing.T) {
	assert.Equal(t, "1e+21", numberString(1e21))
	assert.Equal(t, "1.5e-7", numberString(1.5e-7))
	assert.Equal(t, "123.45", numberString(123.45))
	assert.Equal(t, "NaN", numberString(nanValue()))
}
