package dto

// CreateCollegeRequest represents the payload for creating a college
type CreateCollegeRequest struct {
	Code string `json:"college_code" binding:"required"`
	Name string `json:"college_name" binding:"required"`
}

// UpdateCollegeRequest represents a partial college update; nil fields are
// left untouched.
type UpdateCollegeRequest struct {
	Code *string `json:"college_code"`
	Name *string `json:"college_name"`
}
