// Package keys holds helpers for building and inspecting tree keys.
package keys

import (
	"path"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/joshuapare/pathtree/pkg/tree"
)

var (
	extSuffix   = regexp.MustCompile(`^(.+)\.[A-Za-z]+$`)
	repeatSlash = regexp.MustCompile(`/+`)
	separators  = strings.NewReplacer(" ", "_", "-", "_", ".", "_", "/", "_", "\\", "_")
)

// ToSnake converts a name, file name or path into a snake_case key.
//
// A trailing alphabetic extension is dropped, separators (space, dash, dot
// and slashes) become underscores, accents are folded, and anything else
// that is not a letter, digit or underscore is removed. Leading digits are
// stripped so the result can start an identifier.
//
//	ToSnake("dir/my-plugin.php") == "dir_my_plugin"
//	ToSnake("Café Menu")         == "cafe_menu"
func ToSnake(s string) string {
	if m := extSuffix.FindStringSubmatch(s); m != nil && !strings.HasSuffix(m[1], "/") {
		s = m[1]
	}
	s = fold(s)
	s = separators.Replace(s)

	var b strings.Builder
	for _, r := range s {
		if r == '_' || r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	return strings.TrimLeftFunc(b.String(), unicode.IsDigit)
}

// fold removes diacritics and case-folds s.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC, cases.Fold())
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// PathHas reports whether p contains sub once repeated slashes in p are
// collapsed.
func PathHas(p, sub string) bool {
	return strings.Contains(repeatSlash.ReplaceAllString(p, "/"), sub)
}

// Base returns the last element of a slash-separated path.
func Base(p string) string {
	if p == "" {
		return ""
	}
	return path.Base(p)
}

// Quoted renders the top-level keys of t as a single-quoted, comma
// separated list: 'a', 'b', '0'.
func Quoted(t *tree.Tree) string {
	ks := t.Keys()
	parts := make([]string, len(ks))
	for i, k := range ks {
		parts[i] = "'" + k.String() + "'"
	}
	return strings.Join(parts, ", ")
}
