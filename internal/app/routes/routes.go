package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/interconnect/backend/internal/app/controllers"
	"github.com/interconnect/backend/internal/middleware"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Auth     *controllers.AuthController
	Student  *controllers.StudentController
	Employer *controllers.EmployerController
	Admin    *controllers.AdminController
	Health   *controllers.HealthController
}

// SetupRouter configures all application routes. Role checks happen inside
// each handler, so the portal groups only require a valid token.
func SetupRouter(
	router *gin.Engine,
	ctrl Controllers,
	authMiddleware *middleware.AuthMiddleware,
	authLimiter *middleware.RateLimiter,
) {
	api := router.Group("/api")

	api.GET("/health", ctrl.Health.Health)

	// --- Public Auth routes ---
	auth := api.Group("/auth")
	if authLimiter != nil {
		auth.Use(authLimiter.Handler())
	}
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
		auth.GET("/me", authMiddleware.JWTAuth(), ctrl.Auth.Me)
	}

	// --- Authenticated Routes Group ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	student := authenticated.Group("/student")
	{
		student.GET("/dashboard", ctrl.Student.Dashboard)
		student.GET("/internships", ctrl.Student.BrowseInternships)
		student.GET("/internships/:id", ctrl.Student.GetInternship)
		student.POST("/applications", ctrl.Student.Apply)
		student.POST("/apply", ctrl.Student.Apply)
		student.GET("/applications", ctrl.Student.ListApplications)
		student.GET("/profile", ctrl.Student.GetProfile)
		student.PUT("/profile", ctrl.Student.UpdateProfile)
	}

	employer := authenticated.Group("/employer")
	{
		employer.GET("/dashboard", ctrl.Employer.Dashboard)
		employer.POST("/internships", ctrl.Employer.CreateInternship)
		employer.GET("/internships", ctrl.Employer.ListInternships)
		employer.GET("/internships/:id", ctrl.Employer.GetInternship)
		employer.PUT("/internships/:id", ctrl.Employer.UpdateInternship)
		employer.PATCH("/internships/:id/status", ctrl.Employer.UpdateInternshipStatus)
		employer.GET("/applications", ctrl.Employer.ListApplications)
		employer.PATCH("/applications/:id/status", ctrl.Employer.UpdateApplicationStatus)
	}

	admin := authenticated.Group("/admin")
	{
		admin.GET("/dashboard", ctrl.Admin.Dashboard)
		admin.GET("/analytics", ctrl.Admin.Analytics)
		admin.GET("/users", ctrl.Admin.ListUsers)
		admin.DELETE("/users/:id", ctrl.Admin.DeleteUser)
	}
}
