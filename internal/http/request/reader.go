package request

import (
	"errors"
	"fmt"
	"io"
)

const DefaultBufferSize = 1024

// slideBuffer is a fixed capacity read buffer. Bytes are read into the free
// tail and consumed from the front; consume slides the remainder back to
// offset zero so the capacity never grows.
type slideBuffer struct {
	data []byte
	end  int
}

func newSlideBuffer(size int) *slideBuffer {
	return &slideBuffer{data: make([]byte, size)}
}

func (b *slideBuffer) free() []byte {
	return b.data[b.end:]
}

func (b *slideBuffer) filled() []byte {
	return b.data[:b.end]
}

func (b *slideBuffer) commit(n int) {
	b.end += n
}

func (b *slideBuffer) consume(n int) {
	copy(b.data, b.data[n:b.end])
	b.end -= n
}

func (b *slideBuffer) full() bool {
	return b.end == len(b.data)
}

// FromReader reads and parses a single request from reader using a read
// buffer of bufferSize bytes. No single line of the request may be longer
// than the buffer.
func FromReader(reader io.Reader, bufferSize int) (*Request, error) {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	buf := newSlideBuffer(bufferSize)
	req := New()

	for !req.Done() {
		if buf.full() {
			return nil, fmt.Errorf("%w: %d bytes buffered while parsing %s", ErrLineTooLong, bufferSize, req.state)
		}

		n, readErr := reader.Read(buf.free())
		buf.commit(n)

		consumed, err := req.Parse(buf.filled())
		if err != nil {
			return nil, err
		}
		buf.consume(consumed)

		if req.Done() {
			break
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return nil, fmt.Errorf("%w: stopped in %s", ErrIncompleteRequest, req.state)
			}
			return nil, fmt.Errorf("read request: %w", readErr)
		}
	}

	return req, nil
}
