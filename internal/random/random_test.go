package random

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failingReader struct {
	err error
}

func (f *failingReader) Read(p []byte) (int, error) {
	return 0, f.err
}

func TestRandom_String(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantErr bool
	}{
		{"ValidLengthZero", 0, false},
		{"ConnectionIDLength", 8, false},
		{"NegativeLength", -1, true},
		{"VeryLargeLength", 1_000_000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := New().String(tt.length)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidLength)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, result, tt.length)
			assert.Empty(t, strings.Trim(result, alphabet))
		})
	}
}

func TestRandom_Deterministic(t *testing.T) {
	randomizer := NewFromReader(bytes.NewReader([]byte{0x00, 0x01, 0x1a, 0xff}))

	result, err := randomizer.String(4)
	assert.NoError(t, err)
	assert.Equal(t, "01af", result)
}

func TestRandomWithFailingReader_String(t *testing.T) {
	errEntropy := errors.New("entropy source unavailable")
	randomizer := NewFromReader(&failingReader{err: errEntropy})

	result, err := randomizer.String(20)
	assert.ErrorIs(t, err, errEntropy)
	assert.Equal(t, "", result)
}

func TestRandomWithShortReader_String(t *testing.T) {
	randomizer := NewFromReader(bytes.NewReader([]byte{0x01, 0x02}))

	result, err := randomizer.String(8)
	assert.Error(t, err)
	assert.Equal(t, "", result)
}
