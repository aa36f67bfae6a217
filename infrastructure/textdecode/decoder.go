package textdecode

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/unicode"
)

// DefaultEncodings is the order netsh output is tried in on Korean and English Windows.
var DefaultEncodings = []string{"utf-8", "cp949", "euc-kr"}

const utf8Name = "utf-8"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// aliases covers console code pages that the WHATWG label index does not know.
var aliases = map[string]encoding.Encoding{
	"cp949":        korean.EUCKR,
	"windows-949":  korean.EUCKR,
	"euc-kr":       korean.EUCKR,
	"ibm437":       charmap.CodePage437,
	"cp437":        charmap.CodePage437,
	"ibm850":       charmap.CodePage850,
	"cp850":        charmap.CodePage850,
	"ibm866":       charmap.CodePage866,
	"cp866":        charmap.CodePage866,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
	"utf-16le":     unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
}

type candidate struct {
	name     string
	encoding encoding.Encoding // nil for utf-8
}

// Decoder turns raw command output into text. It never fails: when no
// configured encoding decodes the input cleanly, invalid sequences are
// replaced with U+FFFD.
type Decoder struct {
	candidates []candidate
}

func NewDecoder(names []string) (*Decoder, error) {
	candidates := make([]candidate, 0, len(names))
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == utf8Name || name == "utf8" {
			candidates = append(candidates, candidate{name: utf8Name})
			continue
		}
		enc, err := lookup(name)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate{name: name, encoding: enc})
	}
	return &Decoder{candidates: candidates}, nil
}

func NewDefaultDecoder() *Decoder {
	d, err := NewDecoder(DefaultEncodings)
	if err != nil {
		// DefaultEncodings are all in the alias table.
		panic(err)
	}
	return d
}

// Supported reports whether name resolves to a known encoding.
func Supported(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == utf8Name || name == "utf8" {
		return true
	}
	_, err := lookup(name)
	return err == nil
}

func lookup(name string) (encoding.Encoding, error) {
	if enc, ok := aliases[name]; ok {
		return enc, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", name, err)
	}
	return enc, nil
}

// Decode returns data decoded with the first encoding that accepts it.
func (d *Decoder) Decode(data []byte) string {
	text, _ := d.DecodeWith(data)
	return text
}

// DecodeWith is Decode that also names the encoding used, or "lossy".
func (d *Decoder) DecodeWith(data []byte) (string, string) {
	data = bytes.TrimPrefix(data, utf8BOM)
	for _, c := range d.candidates {
		if text, ok := c.decode(data); ok {
			return text, c.name
		}
	}
	return lossy(data), "lossy"
}

func (c candidate) decode(data []byte) (string, bool) {
	if c.encoding == nil {
		if !utf8.Valid(data) {
			return "", false
		}
		return string(data), true
	}
	out, err := c.encoding.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	// x/text decoders substitute U+FFFD for invalid input instead of failing.
	if bytes.ContainsRune(out, utf8.RuneError) {
		return "", false
	}
	return string(out), true
}

func lossy(data []byte) string {
	out, err := unicode.UTF8.NewDecoder().Bytes(data)
	if err != nil {
		return strings.ToValidUTF8(string(data), string(utf8.RuneError))
	}
	return string(out)
}
