package models

// Student defines the student model based on the 'students' table. IDNumber
// follows the NNNN-NNNN format (e.g. "2021-1234").
type Student struct {
	IDNumber    string `json:"id_number" db:"id_number"`
	FirstName   string `json:"first_name" db:"first_name"`
	LastName    string `json:"last_name" db:"last_name"`
	YearLevel   int    `json:"year_level" db:"year_level"`
	Gender      Gender `json:"gender" db:"gender"`
	ProgramCode string `json:"program_code" db:"program_code"`
	PhotoPath   string `json:"photo_path" db:"photo_path"`
}

// StudentSortFields is the whitelist of columns students may be sorted or
// searched by. Its shape (id_number + first_name + last_name) makes student
// listings receive deterministic tie-break ordering.
var StudentSortFields = []string{"id_number", "first_name", "last_name", "year_level", "gender", "program_code"}
