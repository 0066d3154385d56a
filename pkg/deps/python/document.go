package python

import (
	"slices"
	"sort"

	"github.com/BurntSushi/toml"
)

// document is a read-only view over a decoded TOML manifest. The decoded
// tree loses table ordering, so the decoder's key list is kept alongside to
// recover document order for named groups.
type document struct {
	tree map[string]any
	keys []toml.Key
}

func parseDocument(content string) (*document, error) {
	var tree map[string]any
	md, err := toml.Decode(content, &tree)
	if err != nil {
		return nil, err
	}
	return &document{tree: tree, keys: md.Keys()}, nil
}

func (d *document) lookup(path ...string) (any, bool) {
	var cur any = d.tree
	for _, p := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = m[p]; !ok {
			return nil, false
		}
	}
	return cur, true
}

func (d *document) has(path ...string) bool {
	_, ok := d.lookup(path...)
	return ok
}

func (d *document) table(path ...string) (map[string]any, bool) {
	v, ok := d.lookup(path...)
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	return m, ok
}

func (d *document) str(path ...string) (string, bool) {
	v, ok := d.lookup(path...)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// childKeys returns the keys of the table at path in document order.
func (d *document) childKeys(path ...string) []string {
	t, ok := d.table(path...)
	if !ok {
		return nil
	}
	seen := make(map[string]bool, len(t))
	out := make([]string, 0, len(t))
	for _, k := range d.keys {
		if len(k) != len(path)+1 || !slices.Equal(k[:len(path)], path) {
			continue
		}
		name := k[len(path)]
		if _, ok := t[name]; ok && !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	var rest []string
	for name := range t {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// stringList converts a decoded TOML array into strings. Any non-string
// element makes the whole array unusable.
func stringList(v any) ([]string, bool) {
	switch arr := v.(type) {
	case []string:
		return arr, true
	case []any:
		out := make([]string, 0, len(arr))
		for _, item := range arr {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

// tableList converts a decoded array of tables. Arrays of tables decode as
// []map[string]any; inline arrays of inline tables decode as []any.
func tableList(v any) []map[string]any {
	switch arr := v.(type) {
	case []map[string]any:
		return arr
	case []any:
		out := make([]map[string]any, 0, len(arr))
		for _, item := range arr {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	}
	return nil
}
