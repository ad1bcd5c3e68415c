package query

import "strings"

// personFields is the column shape that identifies a person-like entity. When
// an entity's allowed sort fields include all of these, secondary ordering is
// added so paginated listings stay stable when the primary key has duplicates.
var personFields = []string{"id_number", "first_name", "last_name"}

// BuildSort renders an ORDER BY clause. An unknown sortBy falls back to the
// first allowed field and an unknown direction to ASC; the builder never
// rejects input.
//
// Person-like entities get deterministic tie-breaks: sorting by last_name adds
// first_name ASC, sorting by anything else adds last_name ASC, first_name ASC.
// All other entity shapes order by the single requested field.
func BuildSort(sortBy, sortOrder string, allowed []string) string {
	if len(allowed) == 0 {
		return ""
	}

	if !contains(allowed, sortBy) {
		sortBy = allowed[0]
	}

	sortOrder = strings.ToUpper(sortOrder)
	if sortOrder != "ASC" && sortOrder != "DESC" {
		sortOrder = "ASC"
	}

	terms := []string{sortBy + " " + sortOrder}
	if isPersonShape(allowed) {
		switch sortBy {
		case "last_name":
			terms = append(terms, "first_name ASC")
		default:
			terms = append(terms, "last_name ASC", "first_name ASC")
		}
	}

	// A tiebreak column equal to the primary sort column would be redundant.
	seen := map[string]bool{sortBy: true}
	out := terms[:1]
	for _, t := range terms[1:] {
		col := strings.SplitN(t, " ", 2)[0]
		if !seen[col] {
			seen[col] = true
			out = append(out, t)
		}
	}

	return "ORDER BY " + strings.Join(out, ", ")
}

func isPersonShape(allowed []string) bool {
	for _, f := range personFields {
		if !contains(allowed, f) {
			return false
		}
	}
	return true
}
