package headers

import (
	"bytes"
	"fmt"
)

var (
	ErrMalformedHeader = fmt.Errorf("malformed header")
)

var crlf = []byte("\r\n")

// Parse consumes every complete header line in data. It reports done once the
// blank line closing the block has been consumed. A trailing partial line is
// left in data so the caller can retry once more bytes arrive.
func (h *Headers) Parse(data []byte) (n int, done bool, err error) {
	for {
		lineEnd := bytes.Index(data[n:], crlf)
		if lineEnd == -1 {
			return n, false, nil
		}

		if lineEnd == 0 {
			return n + len(crlf), true, nil
		}

		name, value, err := parseFieldLine(data[n : n+lineEnd])
		if err != nil {
			return n, false, err
		}

		h.Set(name, value)
		n += lineEnd + len(crlf)
	}
}

func parseFieldLine(line []byte) (string, string, error) {
	line = bytes.TrimSpace(line)

	colonIdx := bytes.IndexByte(line, ':')
	if colonIdx == -1 {
		return "", "", fmt.Errorf("%w: missing colon in %q", ErrMalformedHeader, line)
	}

	name := line[:colonIdx]
	if len(name) == 0 {
		return "", "", fmt.Errorf("%w: empty field name", ErrMalformedHeader)
	}

	if last := name[len(name)-1]; last == ' ' || last == '\t' {
		return "", "", fmt.Errorf("%w: whitespace before colon in %q", ErrMalformedHeader, line)
	}

	if !isToken(name) {
		return "", "", fmt.Errorf("%w: invalid field name %q", ErrMalformedHeader, name)
	}

	value := bytes.TrimSpace(line[colonIdx+1:])
	return string(name), string(value), nil
}

func isToken(name []byte) bool {
	for _, c := range name {
		if !isTokenChar(c) {
			return false
		}
	}
	return true
}

func isTokenChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	}
	return false
}
