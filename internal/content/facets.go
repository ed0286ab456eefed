package content

import (
	"sort"

	"sitecontent/internal/cms"
)

// ExtractFacets scans every record for each requested field and returns the
// distinct values observed, trimmed, deduplicated and sorted ascending.
// Output is deterministic for a given record sequence: set iteration order
// never leaks because values are sorted before facets are built.
func ExtractFacets(entries []cms.Entry, fields []string) map[string][]Facet {
	out := make(map[string][]Facet, len(fields))

	for _, field := range fields {
		set := make(map[string]struct{})
		for _, e := range entries {
			v := e.String(field) // trimmed; "" when missing or whitespace-only
			if v == "" {
				continue
			}
			set[v] = struct{}{}
		}

		values := make([]string, 0, len(set))
		for v := range set {
			values = append(values, v)
		}
		sort.Strings(values)

		facets := make([]Facet, 0, len(values))
		for _, v := range values {
			facets = append(facets, Facet{Value: v, Label: v})
		}
		out[field] = facets
	}

	return out
}
