package validator

import (
	"testing"

	"github.com/dmitrijs2005/peoplekeeper/internal/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePositiveID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "plain", input: "42", want: 42},
		{name: "surrounding spaces", input: " 7 ", want: 7},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-3", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "decimal", input: "1.5", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePositiveID(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNonEmpty(t *testing.T) {
	assert.True(t, NonEmpty("Ana"))
	assert.True(t, NonEmpty("  x  "))
	assert.False(t, NonEmpty(""))
	assert.False(t, NonEmpty(" \t\n"))
}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"3001234567", true},
		{"123-456", true},
		{"(1) 2 3", true},
		{"123456", false},
		{"abcdefgh", false},
		{"   12345   ", false},
		{"", false},
		{"ñññññ-1", true},
		{"٣٠٠١٢٣٤٥", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPhone(tt.input))
		})
	}
}

func TestParseNonNegativeBalance(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "integer", input: "100", want: "100"},
		{name: "two decimals", input: "50.50", want: "50.5"},
		{name: "zero", input: "0", want: "0"},
		{name: "trimmed", input: " 12.34 ", want: "12.34"},
		{name: "negative", input: "-5", wantErr: true},
		{name: "garbage", input: "ten", wantErr: true},
		{name: "currency symbol", input: "$10", wantErr: true},
		{name: "inner space", input: "1 000", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNonNegativeBalance(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}
