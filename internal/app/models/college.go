package models

// College defines the college model based on the 'colleges' table
type College struct {
	Code string `json:"college_code" db:"college_code"`
	Name string `json:"college_name" db:"college_name"`
}

// CollegeSortFields is the whitelist of columns colleges may be sorted or
// searched by.
var CollegeSortFields = []string{"college_code", "college_name"}
