package exporter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescli/pkg/contracts/domain"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{name: "zero value", input: 0.0, expected: "0"},
		{name: "positive integer", input: 123.0, expected: "123"},
		{name: "negative integer", input: -456.0, expected: "-456"},
		{name: "trailing zeros removed", input: 123.450000, expected: "123.45"},
		{name: "small decimal", input: 0.001234, expected: "0.001234"},
		{name: "no exponent for small numbers", input: 1.23e-5, expected: "0.0000123"},
		{name: "weekly sales", input: 1643690.9, expected: "1643690.9"},
		{name: "full precision kept", input: 46.66904755831214, expected: "46.66904755831214"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFloat(tt.input))
		})
	}
}

func TestFormatNullFloat(t *testing.T) {
	assert.Equal(t, "", formatNullFloat(domain.Null))
	assert.Equal(t, "20", formatNullFloat(domain.Float(20)))
}

func TestFormatIntAndBool(t *testing.T) {
	assert.Equal(t, "0", formatInt(0))
	assert.Equal(t, "143", formatInt(143))
	assert.Equal(t, "true", formatBool(true))
	assert.Equal(t, "false", formatBool(false))
}

func TestParseHelpers(t *testing.T) {
	f, err := parseFloat(" 12.5 ")
	require.NoError(t, err)
	assert.Equal(t, 12.5, f)

	n, err := parseNullFloat("")
	require.NoError(t, err)
	assert.False(t, n.Valid)

	n, err = parseNullFloat("3")
	require.NoError(t, err)
	assert.Equal(t, domain.Float(3), n)

	_, err = parseNullFloat("x")
	assert.Error(t, err)

	i, err := parseInt("7")
	require.NoError(t, err)
	assert.Equal(t, 7, i)

	b, err := parseBool("True")
	require.NoError(t, err)
	assert.True(t, b)
}

// BenchmarkFormatFloat tests the performance of formatFloat function
func BenchmarkFormatFloat(b *testing.B) {
	values := []float64{0.0, 123.456789, -987.654321, 1234567.890123, 0.000001}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, v := range values {
			_ = formatFloat(v)
		}
	}
}
