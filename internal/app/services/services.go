package services

import (
	"github.com/jdelacruz/ssis-backend/internal/app/repositories"
	"github.com/jdelacruz/ssis-backend/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService    *AuthService
	CollegeService *CollegeService
	ProgramService *ProgramService
	StudentService *StudentService
	UserService    *UserService
	StatsService   *StatsService
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	return &Services{
		AuthService:    NewAuthService(repos.UserRepository, jwtService),
		CollegeService: NewCollegeService(repos.CollegeRepository),
		ProgramService: NewProgramService(repos.ProgramRepository, repos.CollegeRepository),
		StudentService: NewStudentService(repos.StudentRepository, repos.ProgramRepository),
		UserService:    NewUserService(repos.UserRepository),
		StatsService:   NewStatsService(repos.StatsRepository),
	}
}
