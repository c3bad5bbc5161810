package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateVerificationCode(t *testing.T) {
	code, err := GenerateVerificationCode()
	require.NoError(t, err)

	assert.Len(t, code, VerificationCodeLength)
	assert.True(t, ValidVerificationCode(code))
	for _, r := range code {
		assert.Contains(t, codeAlphabet, string(r))
	}
}

func TestValidVerificationCode(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		valid bool
	}{
		{"six uppercase", "A1B2C3", true},
		{"four characters", "AB12", true},
		{"lowercase accepted", "ab12cd", true},
		{"too short", "AB1", false},
		{"too long", "A1B2C3D", false},
		{"empty", "", false},
		{"punctuation rejected", "AB-12", false},
		{"whitespace rejected", "AB 12", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidVerificationCode(tt.code))
		})
	}
}

func TestCalculateDistance(t *testing.T) {
	// Jakarta to Bandung is roughly 120km
	jakarta := GeoPoint{Latitude: -6.2088, Longitude: 106.8456}
	bandung := GeoPoint{Latitude: -6.9175, Longitude: 107.6191}

	distance := CalculateDistance(jakarta, bandung)
	assert.InDelta(t, 120, distance, 10)

	assert.Zero(t, CalculateDistance(jakarta, jakarta))
}

func TestEncodeCell(t *testing.T) {
	cell := EncodeCell(-6.2088, 106.8456)
	assert.Len(t, cell, CellPrecision)

	// nearby points share a cell at this precision
	assert.Equal(t, cell, EncodeCell(-6.2089, 106.8457))
}

func TestCellNeighbors(t *testing.T) {
	cell := EncodeCell(-6.2088, 106.8456)
	neighbors := CellNeighbors(cell)

	assert.Len(t, neighbors, 9)
	assert.Contains(t, neighbors, cell)
}
