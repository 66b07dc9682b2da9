package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Key is the hash input for tag colors. A single key is one text value; a
// composite key is an ordered sequence where element boundaries and order
// both matter.
type Key struct {
	parts     []string
	composite bool
}

func SingleKey(text string) Key {
	return Key{parts: []string{text}}
}

func CompositeKey(parts ...string) Key {
	return Key{parts: append([]string{}, parts...), composite: true}
}

func (k Key) IsComposite() bool {
	return k.composite
}

// Parts returns a copy of the key elements. A single key has exactly one.
func (k Key) Parts() []string {
	if !k.composite && len(k.parts) == 0 {
		return []string{""}
	}
	return append([]string{}, k.parts...)
}

// Text returns the single key text, or the composite elements joined by "/".
func (k Key) Text() string {
	if !k.composite {
		if len(k.parts) == 0 {
			return ""
		}
		return k.parts[0]
	}
	return strings.Join(k.parts, "/")
}

func (k Key) String() string {
	if !k.composite {
		return k.Text()
	}
	return "[" + strings.Join(k.parts, ", ") + "]"
}

func (k Key) Equal(other Key) bool {
	if k.composite != other.composite {
		return false
	}
	a, b := k.Parts(), other.Parts()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (k Key) MarshalJSON() ([]byte, error) {
	if k.composite {
		return json.Marshal(k.Parts())
	}
	return json.Marshal(k.Text())
}

func (k *Key) UnmarshalJSON(data []byte) error {
	parsed, err := ParseKey(data)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKey decodes a JSON string as a single key and a JSON array of strings
// as a composite key.
func ParseKey(data []byte) (Key, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Key{}, fmt.Errorf("%w: key is empty", ErrInvalidInput)
	}
	switch trimmed[0] {
	case '"':
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return Key{}, fmt.Errorf("%w: key: %v", ErrInvalidInput, err)
		}
		return SingleKey(text), nil
	case '[':
		var parts []string
		if err := json.Unmarshal(trimmed, &parts); err != nil {
			return Key{}, fmt.Errorf("%w: composite key must be an array of strings", ErrInvalidInput)
		}
		return CompositeKey(parts...), nil
	default:
		return Key{}, fmt.Errorf("%w: key must be a string or an array of strings", ErrInvalidInput)
	}
}
