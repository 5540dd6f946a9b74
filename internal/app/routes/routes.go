package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/snpzone/skillhunt/internal/app/controllers"
	"github.com/snpzone/skillhunt/internal/app/models/dto"
	"github.com/snpzone/skillhunt/internal/middleware"
	"github.com/snpzone/skillhunt/internal/pkg/auth"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	companyController *controllers.CompanyController,
	studentController *controllers.StudentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Company routes ---
	company := api.Group("/company")
	{
		// Registration flow (public)
		company.POST("/send-otp", companyController.SendOTP)
		company.POST("/verify-otp", companyController.VerifyOTP)
		company.POST("/complete-registration", companyController.CompleteRegistration)

		// Login flow (public)
		company.POST("/send-login-password", companyController.SendLoginPassword)
		company.POST("/login", companyController.Login)
		company.GET("/check-session", companyController.CheckSession)
		company.POST("/logout", companyController.Logout)

		// Session-protected company routes
		companyProtected := company.Group("")
		companyProtected.Use(authMiddleware.SessionAuth(auth.KindCompany))
		{
			companyProtected.GET("/profile", companyController.GetProfile)
			companyProtected.POST("/jobs", companyController.CreateJob)
			companyProtected.GET("/jobs", companyController.ListJobs)
			companyProtected.GET("/jobs/:jobId", companyController.GetJob)
			companyProtected.GET("/applications", companyController.ListApplications)
			companyProtected.GET("/students/:studentId", companyController.GetStudent)
		}
	}

	// --- Student routes ---
	student := api.Group("/student")
	{
		// Registration flow (public)
		student.POST("/send-otp", studentController.SendOTP)
		student.POST("/verify-otp", studentController.VerifyOTP)
		student.POST("/complete-registration", studentController.CompleteRegistration)

		// Login flow (public)
		student.POST("/send-login-password", studentController.SendLoginPassword)
		student.POST("/login", studentController.Login)
		student.GET("/check-session", studentController.CheckSession)
		student.POST("/logout", studentController.Logout)

		// Session-protected student routes
		studentProtected := student.Group("")
		studentProtected.Use(authMiddleware.SessionAuth(auth.KindStudent))
		{
			studentProtected.GET("/profile", studentController.GetProfile)
			studentProtected.GET("/jobs", studentController.ListAllJobs)
			studentProtected.GET("/jobs/:jobId", studentController.GetJob)
			studentProtected.POST("/apply-job", studentController.ApplyJob)
		}
	}

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
