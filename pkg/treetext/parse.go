// Package treetext reads and writes trees in a line-oriented text format.
//
// A document is a sequence of lines:
//
//	# comment (";" works too)
//	title = "Settings"
//	[display/colors]
//	theme = "dark"
//	depth = 24
//	[servers/0]
//	host = example.org
//
// A [section] line selects the subtree the following entries go to; its
// path is split on "/" and "[]" returns to the root. Values are quoted
// strings, true, false, null, integers, floats, or bare text. Names and
// path segments may be quoted to include separators.
package treetext

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/transform"

	"github.com/joshuapare/pathtree/pkg/tree"
)

// Options controls parsing and writing.
type Options struct {
	// Charset of the text. Default: UTF-8.
	Charset string

	// Factory builds the tree returned by Parse. Nil uses tree.DefaultConfig.
	Factory *tree.Factory
}

// SyntaxError reports a malformed line.
type SyntaxError struct {
	Line int
	Text string
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("treetext: line %d: %s: %q", e.Line, e.Msg, e.Text)
}

// Parse reads a document from r into a new tree.
func Parse(r io.Reader, opts Options) (*tree.Tree, error) {
	t := tree.New()
	if opts.Factory != nil {
		t = opts.Factory.New()
	}
	if err := ParseInto(t, r, opts); err != nil {
		return nil, err
	}
	return t, nil
}

// ParseString is Parse over a string.
func ParseString(s string, opts Options) (*tree.Tree, error) {
	return Parse(strings.NewReader(s), opts)
}

// ParseInto merges a document from r into t. Entries already in t are
// overwritten in place. On error t may hold the lines before the bad one.
func ParseInto(t *tree.Tree, r io.Reader, opts Options) error {
	enc, err := charset(opts.Charset)
	if err != nil {
		return err
	}
	scanner := bufio.NewScanner(transform.NewReader(r, decoder(enc)))
	buf := make([]byte, 0, ScannerInitialBufferSize)
	scanner.Buffer(buf, ScannerMaxLineSize)

	section := t
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		line := strings.TrimSpace(raw)

		if line == "" || strings.HasPrefix(line, CommentPrefix) || strings.HasPrefix(line, AltCommentPrefix) {
			continue
		}
		fail := func(msg string) error {
			return &SyntaxError{Line: lineNo, Text: raw, Msg: msg}
		}

		if strings.HasPrefix(line, SectionOpen) {
			if !strings.HasSuffix(line, SectionClose) {
				return fail("unterminated section header")
			}
			segs, err := parseSection(line[len(SectionOpen) : len(line)-len(SectionClose)])
			if err != nil {
				return fail(err.Error())
			}
			section, err = descend(t, segs)
			if err != nil {
				return fail(err.Error())
			}
			continue
		}

		name, rest, err := parseName(line)
		if err != nil {
			return fail(err.Error())
		}
		value, err := parseValue(rest)
		if err != nil {
			return fail(err.Error())
		}
		k := tree.NameKey(name)
		if cur, ok := section.Lookup([]tree.Key{k}); ok {
			if _, isTree := cur.(*tree.Tree); isTree {
				return fail("entry replaces section " + strconv.Quote(name))
			}
		}
		section.Set([]tree.Key{k}, value)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("treetext: scanning: %w", err)
	}
	return nil
}

// descend returns the subtree at segs, creating missing sections.
func descend(t *tree.Tree, segs []string) (*tree.Tree, error) {
	cur := t
	for i, s := range segs {
		k := tree.NameKey(s)
		v, ok := cur.Lookup([]tree.Key{k})
		if ok && v != nil {
			sub, isTree := v.(*tree.Tree)
			if !isTree {
				return nil, fmt.Errorf("%s is a value, not a section", strings.Join(segs[:i+1], PathSeparator))
			}
			cur = sub
			continue
		}
		cur = cur.Get([]tree.Key{k}).(*tree.Tree)
	}
	return cur, nil
}

// parseSection splits a section path. Unquoted segments are trimmed and
// empty ones dropped.
func parseSection(s string) ([]string, error) {
	var segs []string
	for {
		s = strings.TrimLeft(s, " \t")
		if s == "" {
			return segs, nil
		}
		if strings.HasPrefix(s, Quote) {
			seg, rest, err := unquote(s)
			if err != nil {
				return nil, err
			}
			segs = append(segs, seg)
			rest = strings.TrimLeft(rest, " \t")
			if rest != "" && !strings.HasPrefix(rest, PathSeparator) {
				return nil, fmt.Errorf("unexpected text after quoted segment")
			}
			s = strings.TrimPrefix(rest, PathSeparator)
			continue
		}
		seg, rest, _ := strings.Cut(s, PathSeparator)
		if seg = strings.TrimSpace(seg); seg != "" {
			segs = append(segs, seg)
		}
		s = rest
	}
}

// parseName splits an entry line into its name and the value text.
func parseName(line string) (string, string, error) {
	if strings.HasPrefix(line, Quote) {
		name, rest, err := unquote(line)
		if err != nil {
			return "", "", err
		}
		rest = strings.TrimLeft(rest, " \t")
		if !strings.HasPrefix(rest, Assignment) {
			return "", "", fmt.Errorf("expected %q after name", Assignment)
		}
		return name, strings.TrimPrefix(rest, Assignment), nil
	}
	name, rest, ok := strings.Cut(line, Assignment)
	if !ok {
		return "", "", fmt.Errorf("expected name %s value", Assignment)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", fmt.Errorf("empty name")
	}
	return name, rest, nil
}

// parseValue converts the text after "=".
func parseValue(s string) (any, error) {
	s = strings.TrimSpace(s)
	switch s {
	case LiteralTrue:
		return true, nil
	case LiteralFalse:
		return false, nil
	case LiteralNull:
		return nil, nil
	}
	if strings.HasPrefix(s, Quote) {
		v, rest, err := unquote(s)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(rest) != "" {
			return nil, fmt.Errorf("unexpected text after quoted value")
		}
		return v, nil
	}
	if i, err := strconv.ParseInt(s, 10, 0); err == nil {
		return int(i), nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}
	return s, nil
}

// unquote reads a double-quoted string with Go escapes from the start of
// s and returns it with the remaining text.
func unquote(s string) (string, string, error) {
	i := len(Quote)
	for i < len(s) {
		switch s[i] {
		case '\\':
			i += 2
			continue
		case '"':
			v, err := strconv.Unquote(s[:i+1])
			if err != nil {
				return "", "", fmt.Errorf("bad quoted string: %w", err)
			}
			return v, s[i+1:], nil
		}
		i++
	}
	return "", "", fmt.Errorf("unterminated quoted string")
}
