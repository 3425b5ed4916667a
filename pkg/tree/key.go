package tree

import (
	"math"
	"strconv"
)

// Append is the segment that means "insert as a new element" rather than
// address an existing key.
const Append = "[ ]"

// Key addresses one entry of a Tree. A key is either a name or an index.
// Canonical decimal strings are indices, so "8" and 8 are the same key.
type Key struct {
	name    string
	index   int
	isIndex bool
}

// IndexKey returns the index key i.
func IndexKey(i int) Key {
	return Key{index: i, isIndex: true}
}

// NameKey returns the key for s, normalizing canonical integers to indices.
func NameKey(s string) Key {
	if i, ok := parseIndex(s); ok {
		return IndexKey(i)
	}
	return Key{name: s}
}

// IsIndex reports whether k is an index key.
func (k Key) IsIndex() bool { return k.isIndex }

// Index returns the index of k and whether k is an index key.
func (k Key) Index() (int, bool) { return k.index, k.isIndex }

// String returns the textual form of k.
func (k Key) String() string {
	if k.isIndex {
		return strconv.Itoa(k.index)
	}
	return k.name
}

// KeyOf converts a scalar into a Key. Booleans become 0/1 and floats are
// truncated toward zero. It reports false for any other type.
func KeyOf(v any) (Key, bool) {
	switch x := v.(type) {
	case Key:
		return x, true
	case string:
		return NameKey(x), true
	case int:
		return IndexKey(x), true
	case int8:
		return IndexKey(int(x)), true
	case int16:
		return IndexKey(int(x)), true
	case int32:
		return IndexKey(int(x)), true
	case int64:
		if x > math.MaxInt || x < math.MinInt {
			return NameKey(strconv.FormatInt(x, 10)), true
		}
		return IndexKey(int(x)), true
	case uint:
		if uint64(x) > math.MaxInt {
			return Key{name: strconv.FormatUint(uint64(x), 10)}, true
		}
		return IndexKey(int(x)), true
	case uint8:
		return IndexKey(int(x)), true
	case uint16:
		return IndexKey(int(x)), true
	case uint32:
		return IndexKey(int(x)), true
	case uint64:
		if x > math.MaxInt {
			return Key{name: strconv.FormatUint(x, 10)}, true
		}
		return IndexKey(int(x)), true
	case bool:
		if x {
			return IndexKey(1), true
		}
		return IndexKey(0), true
	case float32:
		return floatKey(float64(x))
	case float64:
		return floatKey(x)
	}
	return Key{}, false
}

func floatKey(f float64) (Key, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt || f < math.MinInt {
		return Key{}, false
	}
	return IndexKey(int(f)), true
}

// parseIndex accepts "0" and optionally signed decimals without leading zeros.
func parseIndex(s string) (int, bool) {
	if s == "" || len(s) > 20 {
		return 0, false
	}
	digits := s
	if s[0] == '-' {
		digits = s[1:]
	}
	if digits == "" || (digits[0] == '0' && len(digits) > 1) || (s[0] == '-' && digits == "0") {
		return 0, false
	}
	for i := range len(digits) {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
