// Package query builds the WHERE / ORDER BY / LIMIT fragments shared by every
// entity search operation. Fragments carry their bound arguments so the list
// query and the matching COUNT query always run with identical SQL and params.
package query

import (
	"fmt"
	"strings"
)

// TokenFields is the fixed subset of columns a tokenized (free-text) search
// matches against. Per entity it is intersected with that entity's allowed
// search fields, so entities without any of these columns simply get no
// free-text filtering.
var TokenFields = []string{"first_name", "last_name", "id_number", "program_code"}

// Filter accumulates SQL conditions and their bound arguments. Conditions are
// ANDed together; placeholders are numbered as arguments are appended, so a
// Filter can be rendered once and reused for both the page query and the
// count query.
type Filter struct {
	conds []string
	args  []interface{}
}

// AndEq appends an exact-match condition on column.
func (f *Filter) AndEq(column string, value interface{}) *Filter {
	f.args = append(f.args, value)
	f.conds = append(f.conds, fmt.Sprintf("%s = $%d", column, len(f.args)))
	return f
}

// andILike appends a case-insensitive substring match on column.
func (f *Filter) andILike(column, term string) {
	f.args = append(f.args, "%"+term+"%")
	f.conds = append(f.conds, fmt.Sprintf("%s ILIKE $%d", column, len(f.args)))
}

// andGroup appends a pre-rendered OR-group as a single condition.
func (f *Filter) andGroup(group string) {
	f.conds = append(f.conds, group)
}

// Clause renders the accumulated conditions as a WHERE fragment. An empty
// filter renders to the empty string so callers can splice it into a query
// unconditionally.
func (f *Filter) Clause() string {
	if f == nil || len(f.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(f.conds, " AND ")
}

// Args returns the bound arguments in placeholder order.
func (f *Filter) Args() []interface{} {
	if f == nil {
		return nil
	}
	return f.args
}

// BuildSearch translates a free-text search request into a Filter.
//
// A blank term yields an empty filter. When searchBy names a column in
// allowed, the filter is a single ILIKE on that column. Otherwise the term is
// split on whitespace and each token must match at least one of TokenFields
// (restricted to allowed): an AND of OR-groups. Every value is bound as a
// parameter, never interpolated.
func BuildSearch(term, searchBy string, allowed []string) *Filter {
	f := &Filter{}

	term = strings.TrimSpace(term)
	if term == "" {
		return f
	}

	if searchBy != "" && contains(allowed, searchBy) {
		f.andILike(searchBy, term)
		return f
	}

	fields := intersect(TokenFields, allowed)
	if len(fields) == 0 {
		return f
	}

	for _, token := range strings.Fields(term) {
		var parts []string
		for _, field := range fields {
			f.args = append(f.args, "%"+token+"%")
			parts = append(parts, fmt.Sprintf("%s ILIKE $%d", field, len(f.args)))
		}
		f.andGroup("(" + strings.Join(parts, " OR ") + ")")
	}

	return f
}

func contains(fields []string, name string) bool {
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}

// intersect keeps the elements of subset that also appear in allowed,
// preserving subset order so placeholder numbering is deterministic.
func intersect(subset, allowed []string) []string {
	var out []string
	for _, f := range subset {
		if contains(allowed, f) {
			out = append(out, f)
		}
	}
	return out
}
