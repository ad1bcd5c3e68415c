package query

import "testing"

func TestBuildSort(t *testing.T) {
	students := []string{"id_number", "first_name", "last_name", "year_level", "gender", "program_code"}
	programs := []string{"program_code", "program_name", "college_code"}
	colleges := []string{"college_code", "college_name"}

	tests := []struct {
		name    string
		sortBy  string
		order   string
		allowed []string
		want    string
	}{
		{
			name:    "person primary key sort adds name tiebreaks",
			sortBy:  "id_number",
			order:   "ASC",
			allowed: students,
			want:    "ORDER BY id_number ASC, last_name ASC, first_name ASC",
		},
		{
			name:    "person last_name sort adds first_name tiebreak only",
			sortBy:  "last_name",
			order:   "DESC",
			allowed: students,
			want:    "ORDER BY last_name DESC, first_name ASC",
		},
		{
			name:    "person first_name sort skips redundant tiebreak",
			sortBy:  "first_name",
			order:   "ASC",
			allowed: students,
			want:    "ORDER BY first_name ASC, last_name ASC",
		},
		{
			name:    "person year_level sort",
			sortBy:  "year_level",
			order:   "DESC",
			allowed: students,
			want:    "ORDER BY year_level DESC, last_name ASC, first_name ASC",
		},
		{
			name:    "unknown field falls back to first allowed",
			sortBy:  "password_hash",
			order:   "ASC",
			allowed: colleges,
			want:    "ORDER BY college_code ASC",
		},
		{
			name:    "unknown direction falls back to ASC",
			sortBy:  "college_name",
			order:   "SIDEWAYS",
			allowed: colleges,
			want:    "ORDER BY college_name ASC",
		},
		{
			name:    "lowercase direction normalized",
			sortBy:  "program_name",
			order:   "desc",
			allowed: programs,
			want:    "ORDER BY program_name DESC",
		},
		{
			name:    "non-person shape has no tiebreak",
			sortBy:  "college_code",
			order:   "DESC",
			allowed: programs,
			want:    "ORDER BY college_code DESC",
		},
		{
			name:    "empty inputs fall back entirely",
			sortBy:  "",
			order:   "",
			allowed: students,
			want:    "ORDER BY id_number ASC, last_name ASC, first_name ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildSort(tt.sortBy, tt.order, tt.allowed); got != tt.want {
				t.Errorf("BuildSort(%q, %q) = %q, want %q", tt.sortBy, tt.order, got, tt.want)
			}
		})
	}
}

func TestBuildSort_NoAllowedFields(t *testing.T) {
	if got := BuildSort("anything", "ASC", nil); got != "" {
		t.Errorf("BuildSort with no allowed fields = %q, want empty", got)
	}
}
