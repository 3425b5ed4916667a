package treetext

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// charset resolves a charset name. The empty name is UTF-8.
func charset(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", CharsetUTF8, "utf8":
		return unicode.UTF8, nil
	case CharsetWindows1252, "cp1252":
		return charmap.Windows1252, nil
	case CharsetLatin1, "latin1", "latin-1":
		return charmap.ISO8859_1, nil
	}
	return nil, fmt.Errorf("treetext: unsupported charset %q", name)
}

// decoder returns a decoder for enc. UTF-8 input may start with a BOM.
func decoder(enc encoding.Encoding) *encoding.Decoder {
	if enc == unicode.UTF8 {
		return unicode.UTF8BOM.NewDecoder()
	}
	return enc.NewDecoder()
}
