package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mkaraca/careergate/internal/app/controllers"
	"github.com/mkaraca/careergate/internal/app/models"
	"github.com/mkaraca/careergate/internal/app/models/dto"
	"github.com/mkaraca/careergate/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	companyController *controllers.CompanyController,
	facultyController *controllers.FacultyController,
	adminController *controllers.AdminController,
	careerFairController *controllers.CareerFairController,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	// Every request resolves its session cookie first
	router.Use(sessionMiddleware.Load())

	// --- Public Auth routes ---
	auth := router.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
		auth.GET("/session", authController.Session)
	}

	// Admin login is a separate surface with its own token handshake
	router.POST("/admin/login", authController.AdminLogin)

	// --- Career fair routes ---
	careerFair := router.Group("/careerFair")
	{
		// Browsing positions works without a session
		careerFair.GET("/positions", careerFairController.Positions)

		// Applying is guarded inside the service, not the router, so the
		// response can report the rejected state instead of a bare 401
		careerFair.POST("/positions/apply", careerFairController.Apply)

		careerFairProtected := careerFair.Group("")
		careerFairProtected.Use(sessionMiddleware.RoleRequired(models.RoleStudent))
		{
			careerFairProtected.POST("/:fairId/register", careerFairController.Register)
			careerFairProtected.POST("/:fairId/attend", careerFairController.Attend)
			careerFairProtected.DELETE("/:fairId/register", careerFairController.CancelRegistration)
		}
	}

	// --- Student routes ---
	student := router.Group("/student")
	student.Use(sessionMiddleware.RoleRequired(models.RoleStudent))
	{
		student.GET("/:id/profile", studentController.Profile)
		student.PATCH("/:id/profile", studentController.UpdateProfile)
		student.GET("/:id/dashboard", studentController.Dashboard)
		student.GET("/:id/appliedPositions", studentController.AppliedPositions)
		student.POST("/:id/resume", studentController.UploadResume)
	}

	// --- Company routes ---
	company := router.Group("/company")
	company.Use(sessionMiddleware.RoleRequired(models.RoleCompany))
	{
		company.GET("/:id/profile", companyController.Profile)
		company.PATCH("/:id/profile", companyController.UpdateProfile)
		company.GET("/:id/dashboard", companyController.Dashboard)
		company.POST("/:id/positions", companyController.CreatePosition)
		company.PATCH("/:id/positions/:posId", companyController.UpdatePosition)
	}

	// --- Faculty routes ---
	faculty := router.Group("/faculty")
	faculty.Use(sessionMiddleware.RoleRequired(models.RoleFaculty))
	{
		faculty.GET("/:id/profile", facultyController.Profile)
		faculty.PATCH("/:id/profile", facultyController.UpdateProfile)
		faculty.GET("/:id/dashboard", facultyController.Dashboard)
	}

	// --- Admin routes ---
	admin := router.Group("/admin")
	admin.Use(sessionMiddleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/:id/announcements", adminController.Announcements)
		admin.POST("/:id/announcements", adminController.CreateAnnouncement)
		admin.PATCH("/:id/announcements/:annId", adminController.UpdateAnnouncement)
		admin.DELETE("/:id/announcements/:annId", adminController.DeleteAnnouncement)
	}

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
