package query

import (
	"reflect"
	"testing"
)

var studentFields = []string{"id_number", "first_name", "last_name", "year_level", "gender", "program_code"}

func TestBuildSearch_EmptyTerm(t *testing.T) {
	for _, term := range []string{"", "   ", "\t\n"} {
		f := BuildSearch(term, "", studentFields)
		if got := f.Clause(); got != "" {
			t.Errorf("BuildSearch(%q) clause = %q, want empty", term, got)
		}
		if len(f.Args()) != 0 {
			t.Errorf("BuildSearch(%q) args = %v, want none", term, f.Args())
		}
	}
}

func TestBuildSearch_SingleField(t *testing.T) {
	f := BuildSearch("doe", "last_name", studentFields)

	wantClause := "WHERE last_name ILIKE $1"
	if got := f.Clause(); got != wantClause {
		t.Errorf("clause = %q, want %q", got, wantClause)
	}
	wantArgs := []interface{}{"%doe%"}
	if !reflect.DeepEqual(f.Args(), wantArgs) {
		t.Errorf("args = %v, want %v", f.Args(), wantArgs)
	}
}

func TestBuildSearch_SingleFieldTrimsTerm(t *testing.T) {
	f := BuildSearch("  doe  ", "last_name", studentFields)
	if want := []interface{}{"%doe%"}; !reflect.DeepEqual(f.Args(), want) {
		t.Errorf("args = %v, want %v", f.Args(), want)
	}
}

func TestBuildSearch_UnknownFieldFallsBackToTokenized(t *testing.T) {
	f := BuildSearch("doe", "password_hash", studentFields)

	want := "WHERE (first_name ILIKE $1 OR last_name ILIKE $2 OR id_number ILIKE $3 OR program_code ILIKE $4)"
	if got := f.Clause(); got != want {
		t.Errorf("clause = %q, want %q", got, want)
	}
}

func TestBuildSearch_TokenizedMultiToken(t *testing.T) {
	f := BuildSearch("john doe", "", studentFields)

	want := "WHERE (first_name ILIKE $1 OR last_name ILIKE $2 OR id_number ILIKE $3 OR program_code ILIKE $4)" +
		" AND (first_name ILIKE $5 OR last_name ILIKE $6 OR id_number ILIKE $7 OR program_code ILIKE $8)"
	if got := f.Clause(); got != want {
		t.Errorf("clause = %q, want %q", got, want)
	}

	args := f.Args()
	if len(args) != 8 {
		t.Fatalf("len(args) = %d, want 8", len(args))
	}
	for i := 0; i < 4; i++ {
		if args[i] != "%john%" {
			t.Errorf("args[%d] = %v, want %%john%%", i, args[i])
		}
	}
	for i := 4; i < 8; i++ {
		if args[i] != "%doe%" {
			t.Errorf("args[%d] = %v, want %%doe%%", i, args[i])
		}
	}
}

func TestBuildSearch_TokenizedIntersectsAllowed(t *testing.T) {
	// Program whitelist only shares program_code with the token fields.
	programFields := []string{"program_code", "program_name", "college_code"}

	f := BuildSearch("bscs", "", programFields)
	if want := "WHERE (program_code ILIKE $1)"; f.Clause() != want {
		t.Errorf("clause = %q, want %q", f.Clause(), want)
	}
}

func TestBuildSearch_NoSearchableIntersection(t *testing.T) {
	// College whitelist shares nothing with the token fields, so free-text
	// search degrades to no filtering.
	collegeFields := []string{"college_code", "college_name"}

	f := BuildSearch("engineering", "", collegeFields)
	if got := f.Clause(); got != "" {
		t.Errorf("clause = %q, want empty", got)
	}
	if len(f.Args()) != 0 {
		t.Errorf("args = %v, want none", f.Args())
	}
}

func TestBuildSearch_ValuesAlwaysBound(t *testing.T) {
	// A hostile term must end up in args, never in the clause text.
	term := "'; DROP TABLE students; --"
	f := BuildSearch(term, "last_name", studentFields)

	if got := f.Clause(); got != "WHERE last_name ILIKE $1" {
		t.Errorf("clause = %q, term leaked into SQL", got)
	}
	if want := "%" + term + "%"; f.Args()[0] != want {
		t.Errorf("args[0] = %v, want %q", f.Args()[0], want)
	}
}

func TestFilter_AndEq(t *testing.T) {
	f := BuildSearch("doe", "last_name", studentFields)
	f.AndEq("gender", "FEMALE").AndEq("year_level", 3)

	want := "WHERE last_name ILIKE $1 AND gender = $2 AND year_level = $3"
	if got := f.Clause(); got != want {
		t.Errorf("clause = %q, want %q", got, want)
	}
	wantArgs := []interface{}{"%doe%", "FEMALE", 3}
	if !reflect.DeepEqual(f.Args(), wantArgs) {
		t.Errorf("args = %v, want %v", f.Args(), wantArgs)
	}
}

func TestFilter_AndEqOnEmptyFilter(t *testing.T) {
	f := &Filter{}
	f.AndEq("program_code", "BSCS")

	if want := "WHERE program_code = $1"; f.Clause() != want {
		t.Errorf("clause = %q, want %q", f.Clause(), want)
	}
}

func TestFilter_NilSafe(t *testing.T) {
	var f *Filter
	if f.Clause() != "" || f.Args() != nil {
		t.Error("nil filter should render empty")
	}
}
