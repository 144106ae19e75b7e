// Package encoding normalises imported files to UTF-8.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	xencoding "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const peekSize = 4096

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Fallback is the charset assumed when detection gives no usable answer.
const Fallback = "windows-1252"

var charsets = map[string]xencoding.Encoding{
	"windows-1252": charmap.Windows1252,
	"ISO-8859-1":   charmap.Windows1252,
	"ISO-8859-9":   charmap.ISO8859_9,
	"windows-1256": charmap.Windows1256,
	"ISO-8859-6":   charmap.ISO8859_6,
	"UTF-16LE":     unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"UTF-16BE":     unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
}

// Decoder returns a UTF-8 decoder for a chardet charset name. ok is false for
// names that have no mapping.
func Decoder(charset string) (dec *xencoding.Decoder, ok bool) {
	enc, ok := charsets[charset]
	if !ok {
		return nil, false
	}

	return enc.NewDecoder(), true
}

// NewUTF8Reader sniffs the start of r and returns a reader producing UTF-8.
//
// A BOM wins, then valid UTF-8 is passed through, then chardet picks among
// the Latin and Arabic single-byte charsets, and finally Fallback is used.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReaderSize(r, peekSize)

	buf, err := br.Peek(peekSize)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("peek: %w", err)
	}

	switch {
	case bytes.HasPrefix(buf, bomUTF8):
		_, _ = br.Discard(len(bomUTF8))
		return br, nil
	case bytes.HasPrefix(buf, bomUTF16LE):
		return decode(br, "UTF-16LE"), nil
	case bytes.HasPrefix(buf, bomUTF16BE):
		return decode(br, "UTF-16BE"), nil
	case utf8.Valid(buf):
		return br, nil
	}

	if result, err := chardet.NewTextDetector().DetectBest(buf); err == nil {
		if result.Charset == "UTF-8" {
			return br, nil
		}

		if _, ok := charsets[result.Charset]; ok {
			return decode(br, result.Charset), nil
		}
	}

	return decode(br, Fallback), nil
}

func decode(r io.Reader, charset string) io.Reader {
	dec, _ := Decoder(charset)
	return transform.NewReader(r, dec)
}
