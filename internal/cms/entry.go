package cms

import (
	"encoding/json"
	"strings"
)

// Entry is one CMS record with its raw shape resolved up front. The content
// API returns entities either "flat" (fields directly on the object) or
// "wrapped" (fields under data.attributes), and nothing guarantees which
// shape a given endpoint uses. Classification happens once, here; accessors
// read uniformly afterwards.
type Entry struct {
	attrs map[string]any
}

// EntryFrom classifies a raw payload holding a single entity. It accepts
// the wrapped shape ({data: {attributes: {...}}}), the half-wrapped shape
// ({data: {...}}), and the flat shape ({...}).
func EntryFrom(raw any) (Entry, bool) {
	m, ok := raw.(map[string]any)
	if !ok {
		return Entry{}, false
	}
	if inner, present := m["data"]; present {
		if inner == nil {
			return Entry{}, false
		}
		return entryFromValue(inner)
	}
	return entryFromValue(m)
}

// EntriesFrom classifies a raw payload holding a collection. A bare array,
// {data: [...]}, and a single-entity payload (yielding one element) are all
// accepted. ok is false when the collection is absent or null, true (with an
// empty non-nil slice) when it is present but empty.
func EntriesFrom(raw any) ([]Entry, bool) {
	switch v := raw.(type) {
	case []any:
		return entriesFromList(v)
	case map[string]any:
		inner, present := v["data"]
		if !present {
			e, ok := entryFromValue(v)
			if !ok {
				return nil, false
			}
			return []Entry{e}, true
		}
		if inner == nil {
			return nil, false
		}
		if list, ok := inner.([]any); ok {
			return entriesFromList(list)
		}
		e, ok := entryFromValue(inner)
		if !ok {
			return nil, false
		}
		return []Entry{e}, true
	}
	return nil, false
}

func entriesFromList(list []any) ([]Entry, bool) {
	out := make([]Entry, 0, len(list))
	for _, item := range list {
		if e, ok := entryFromValue(item); ok {
			out = append(out, e)
		}
	}
	return out, true
}

func entryFromValue(v any) (Entry, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return Entry{}, false
	}
	if attrs, ok := m["attributes"].(map[string]any); ok {
		// Wrapped entities keep their identifier outside the attribute map;
		// fold it back in so accessors see one namespace.
		if id, present := m["id"]; present {
			merged := make(map[string]any, len(attrs)+1)
			for k, val := range attrs {
				merged[k] = val
			}
			if _, taken := merged["id"]; !taken {
				merged["id"] = id
			}
			return Entry{attrs: merged}, true
		}
		return Entry{attrs: attrs}, true
	}
	return Entry{attrs: m}, true
}

// Has reports whether key is present and non-null.
func (e Entry) Has(key string) bool {
	v, ok := e.attrs[key]
	return ok && v != nil
}

// String returns the trimmed string value for key, or "" when the field is
// missing or not a string.
func (e Entry) String(key string) string {
	if s, ok := e.attrs[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// StringOr returns the trimmed string value for key, or fallback when the
// field is missing or empty.
func (e Entry) StringOr(key, fallback string) string {
	if s := e.String(key); s != "" {
		return s
	}
	return fallback
}

// Int returns the integer value for key, coercing the numeric types JSON
// decoding can produce. Missing or non-numeric fields yield 0.
func (e Entry) Int(key string) int64 {
	switch n := e.attrs[key].(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0
		}
		return i
	}
	return 0
}

// Float returns the float value for key, or 0 when missing or non-numeric.
func (e Entry) Float(key string) float64 {
	switch n := e.attrs[key].(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

// Bool returns the boolean value for key, or false when missing.
func (e Entry) Bool(key string) bool {
	b, _ := e.attrs[key].(bool)
	return b
}

// Entry returns the nested entity under key. Nested components may
// themselves be wrapped; they are re-classified on descent.
func (e Entry) Entry(key string) (Entry, bool) {
	v, ok := e.attrs[key]
	if !ok || v == nil {
		return Entry{}, false
	}
	m, ok := v.(map[string]any)
	if !ok {
		return Entry{}, false
	}
	return EntryFrom(m)
}

// Entries returns the nested collection under key. ok distinguishes an
// absent/null collection (false) from a present-but-empty one (true with an
// empty non-nil slice).
func (e Entry) Entries(key string) ([]Entry, bool) {
	v, ok := e.attrs[key]
	if !ok || v == nil {
		return nil, false
	}
	return EntriesFrom(v)
}

// Strings returns the list of trimmed, non-empty string elements under key.
func (e Entry) Strings(key string) []string {
	list, ok := e.attrs[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
