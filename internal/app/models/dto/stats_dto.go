package dto

// CollegeStudentCount is the number of students enrolled under one college.
type CollegeStudentCount struct {
	CollegeCode string `json:"college_code"`
	CollegeName string `json:"college_name"`
	Students    int64  `json:"students"`
}

// GenderCount is the number of students per gender value.
type GenderCount struct {
	Gender   string `json:"gender"`
	Students int64  `json:"students"`
}

// StatsOverview aggregates entity totals for the dashboard.
type StatsOverview struct {
	Colleges           int64                 `json:"colleges"`
	Programs           int64                 `json:"programs"`
	Students           int64                 `json:"students"`
	Users              int64                 `json:"users"`
	StudentsPerCollege []CollegeStudentCount `json:"students_per_college"`
	GenderBreakdown    []GenderCount         `json:"gender_breakdown"`
}
