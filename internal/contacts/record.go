package contacts

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

type Kind int

const (
	KindStructured Kind = iota // {"title": ..., "items": [...]}
	KindLegacy                 // {"phone": ..., "email": ..., "address": ...}
)

type Item struct {
	Name  string
	Value string
	URL   string
}

type Structured struct {
	Title string // "" means "use the locale default"
	Items []Item
}

// Legacy fields are nil when absent from the file.
type Legacy struct {
	Phone   *string
	Email   *string
	Address *string
}

// Record is one of the two on-disk shapes. Exactly one of Structured and
// Legacy is set, according to Kind.
type Record struct {
	Kind       Kind
	Structured *Structured
	Legacy     *Legacy
}

var ErrNotObject = errors.New("top-level value is not an object")

// Empty is what a missing or broken file degrades to.
func Empty() Record {
	return Record{Kind: KindStructured, Structured: &Structured{}}
}

// Load reads the record at path. It always returns a usable record: on any
// failure that record is Empty() and the error says what was recovered.
func Load(path string) (Record, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Empty(), fmt.Errorf("read %s: %w", path, err)
	}
	rec, err := Decode(b)
	if err != nil {
		return Empty(), fmt.Errorf("decode %s: %w", path, err)
	}
	return rec, nil
}

// Decode tries the structured shape first and falls back to the legacy one.
func Decode(b []byte) (Record, error) {
	b = bytes.TrimPrefix(b, []byte("\xef\xbb\xbf"))

	var top map[string]json.RawMessage
	if err := json.Unmarshal(b, &top); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return Empty(), ErrNotObject
		}
		return Empty(), err
	}
	if top == nil {
		// literal null
		return Empty(), ErrNotObject
	}

	var rawItems []json.RawMessage
	if raw, ok := top["items"]; ok && json.Unmarshal(raw, &rawItems) == nil && rawItems != nil {
		s := &Structured{
			Title: stringOnly(top["title"]),
			Items: make([]Item, 0, len(rawItems)),
		}
		for _, ri := range rawItems {
			var fields map[string]json.RawMessage
			if json.Unmarshal(ri, &fields) != nil || fields == nil {
				continue
			}
			s.Items = append(s.Items, Item{
				Name:  scalar(fields["name"]),
				Value: scalar(fields["value"]),
				URL:   scalar(fields["url"]),
			})
		}
		return Record{Kind: KindStructured, Structured: s}, nil
	}

	return Record{Kind: KindLegacy, Legacy: &Legacy{
		Phone:   optionalScalar(top, "phone"),
		Email:   optionalScalar(top, "email"),
		Address: optionalScalar(top, "address"),
	}}, nil
}

// scalar turns a JSON string, number or bool into text; anything else
// (null, object, array, missing) is "".
func scalar(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if json.Unmarshal(raw, &s) != nil {
			return ""
		}
		return s
	case 'n', '{', '[':
		return ""
	default:
		return strings.TrimSpace(string(raw))
	}
}

// stringOnly accepts a JSON string and nothing else.
func stringOnly(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

func optionalScalar(top map[string]json.RawMessage, key string) *string {
	raw, ok := top[key]
	if !ok || string(bytes.TrimSpace(raw)) == "null" {
		return nil
	}
	s := scalar(raw)
	return &s
}
