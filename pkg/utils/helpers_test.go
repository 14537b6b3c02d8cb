package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want interface{}
	}{
		{"", nil},
		{"   ", nil},
		{"42", 42},
		{" -3 ", -3},
		{"2.50", 2.5},
		{"NaN", nil},
		{"SKU-001", "SKU-001"},
		{"0", 0},
		{"+7", 7},
		{"007", "007"},
		{"-0042", "-0042"},
		{"12345678901234567890", "12345678901234567890"},
		{"1e3", 1000.0},
		{"0.5", 0.5},
		{"-", "-"},
		{"Return-Damaged", "Return-Damaged"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseValue(tt.in))
		})
	}
}

func TestToFloat(t *testing.T) {
	f, ok := ToFloat(int64(4))
	assert.True(t, ok)
	assert.Equal(t, 4.0, f)

	f, ok = ToFloat(json.Number("1.5"))
	assert.True(t, ok)
	assert.Equal(t, 1.5, f)

	f, ok = ToFloat(" 7 ")
	assert.True(t, ok)
	assert.Equal(t, 7.0, f)

	_, ok = ToFloat("seven")
	assert.False(t, ok)

	_, ok = ToFloat(nil)
	assert.False(t, ok)

	f, ok = ToFloat(uint8(3))
	assert.True(t, ok)
	assert.Equal(t, 3.0, f)
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "", FormatValue(nil))
	assert.Equal(t, "3", FormatValue(3.0))
	assert.Equal(t, "0.1", FormatValue(0.1))
	assert.Equal(t, "12", FormatValue(12))
	assert.Equal(t, "A", FormatValue("A"))
	assert.Equal(t, "true", FormatValue(true))
}
