package dto

// CreateStudentRequest represents the payload for creating a student
type CreateStudentRequest struct {
	IDNumber    string `json:"id_number" binding:"required"`
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	YearLevel   int    `json:"year_level" binding:"required"`
	Gender      string `json:"gender" binding:"required"`
	ProgramCode string `json:"program_code" binding:"required"`
	PhotoPath   string `json:"photo_path"`
}

// UpdateStudentRequest represents a partial student update; nil fields are
// left untouched and only changed fields are re-validated.
type UpdateStudentRequest struct {
	IDNumber    *string `json:"id_number"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	YearLevel   *int    `json:"year_level"`
	Gender      *string `json:"gender"`
	ProgramCode *string `json:"program_code"`
	PhotoPath   *string `json:"photo_path"`
}

// StudentListFilters are the exact-match filters accepted by the student list
// endpoint on top of free-text search.
type StudentListFilters struct {
	Gender      string
	YearLevel   *int
	ProgramCode string
}
