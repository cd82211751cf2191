package random

import (
	"crypto/rand"
	"fmt"
	"io"
)

var (
	ErrInvalidLength = fmt.Errorf("invalid length")
)

const alphabet = "0123456789abcdef"

// Random produces short opaque identifiers, used to correlate the log lines
// of a single connection.
type Random interface {
	String(length int) (string, error)
}

type random struct {
	reader io.Reader
}

func New() Random {
	return NewFromReader(rand.Reader)
}

func NewFromReader(reader io.Reader) Random {
	return &random{reader: reader}
}

func (ran *random) String(length int) (string, error) {
	if length < 0 {
		return "", ErrInvalidLength
	}

	b := make([]byte, length)
	if _, err := io.ReadFull(ran.reader, b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	for i := range b {
		b[i] = alphabet[b[i]&0x0f]
	}
	return string(b), nil
}
