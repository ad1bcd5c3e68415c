package dto

// CreateProgramRequest represents the payload for creating a program
type CreateProgramRequest struct {
	Code        string `json:"program_code" binding:"required"`
	Name        string `json:"program_name" binding:"required"`
	CollegeCode string `json:"college_code" binding:"required"`
}

// UpdateProgramRequest represents a partial program update; nil fields are
// left untouched.
type UpdateProgramRequest struct {
	Code        *string `json:"program_code"`
	Name        *string `json:"program_name"`
	CollegeCode *string `json:"college_code"`
}
