package models

// Program defines the program model based on the 'programs' table
type Program struct {
	Code        string `json:"program_code" db:"program_code"`
	Name        string `json:"program_name" db:"program_name"`
	CollegeCode string `json:"college_code" db:"college_code"`
}

// ProgramSortFields is the whitelist of columns programs may be sorted or
// searched by.
var ProgramSortFields = []string{"program_code", "program_name", "college_code"}
