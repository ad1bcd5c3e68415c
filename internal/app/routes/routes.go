package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jdelacruz/ssis-backend/internal/app/controllers"
	"github.com/jdelacruz/ssis-backend/internal/app/models"
	"github.com/jdelacruz/ssis-backend/internal/app/models/dto"
	"github.com/jdelacruz/ssis-backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	collegeController *controllers.CollegeController,
	programController *controllers.ProgramController,
	studentController *controllers.StudentController,
	userController *controllers.UserController,
	statsController *controllers.StatsController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse("", gin.H{"status": "ok"}))
	})

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/signup", authController.Signup)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.Me)

		colleges := authenticated.Group("/colleges")
		{
			colleges.GET("", collegeController.ListColleges)
			colleges.POST("", collegeController.CreateCollege)
			colleges.GET("/:code", collegeController.GetCollege)
			colleges.PUT("/:code", collegeController.UpdateCollege)
			colleges.DELETE("/:code", collegeController.DeleteCollege)
			colleges.GET("/:code/programs", collegeController.ListCollegePrograms)
		}

		programs := authenticated.Group("/programs")
		{
			programs.GET("", programController.ListPrograms)
			programs.POST("", programController.CreateProgram)
			programs.GET("/:code", programController.GetProgram)
			programs.PUT("/:code", programController.UpdateProgram)
			programs.DELETE("/:code", programController.DeleteProgram)
			programs.GET("/:code/students", programController.ListProgramStudents)
		}

		students := authenticated.Group("/students")
		{
			students.GET("", studentController.ListStudents)
			students.POST("", studentController.CreateStudent)
			students.GET("/:id_number", studentController.GetStudent)
			students.PUT("/:id_number", studentController.UpdateStudent)
			students.DELETE("/:id_number", studentController.DeleteStudent)
		}

		authenticated.GET("/stats/overview", statsController.Overview)

		// Account administration is restricted to admins
		users := authenticated.Group("/users")
		users.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			users.GET("", userController.ListUsers)
			users.POST("", userController.CreateUser)
			users.GET("/:id", userController.GetUser)
			users.PUT("/:id", userController.UpdateUser)
			users.DELETE("/:id", userController.DeleteUser)
		}
	}
}
