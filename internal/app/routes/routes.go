package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pushkov-fedor/course-selection/internal/app/controllers"
	"github.com/pushkov-fedor/course-selection/internal/middleware"
	"github.com/pushkov-fedor/course-selection/internal/pkg/auth"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	offeringController *controllers.OfferingController,
	cohortController *controllers.CohortController,
	enrollmentController *controllers.EnrollmentController,
	catalogController *controllers.CatalogController,
	jwtService *auth.JWTService,
) {
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", authController.Login)
	}

	// --- Public read routes ---
	v1.GET("/catalog", catalogController.GetCatalog)

	courses := v1.Group("/course")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
	}

	offerings := v1.Group("/course-offering")
	{
		offerings.GET("", offeringController.GetAllOfferings)
		offerings.GET("/:id", offeringController.GetOfferingByID)
	}

	cohorts := v1.Group("/cohort")
	{
		cohorts.GET("", cohortController.GetAllCohorts)
		cohorts.GET("/:id", cohortController.GetCohortByID)
	}

	semesters := v1.Group("/cohort-semesters")
	{
		semesters.GET("", cohortController.GetAllSemesters)
		semesters.GET("/:id", cohortController.GetSemesterByID)
	}

	// --- Public enrollment routes ---
	// Students submit and look up their own requests without a token.
	enrollment := v1.Group("/enrollment-request")
	{
		enrollment.POST("", enrollmentController.CreateRequest)
		enrollment.GET("", enrollmentController.GetRequest)
	}

	// --- Admin-protected mutations ---
	admin := v1.Group("")
	admin.Use(middleware.AdminRequired(jwtService))
	{
		admin.POST("/course", courseController.CreateCourse)
		admin.PATCH("/course/:id", courseController.UpdateCourse)
		admin.DELETE("/course/:id", courseController.DeleteCourse)

		admin.POST("/course-offering", offeringController.CreateOffering)
		admin.PATCH("/course-offering/:id", offeringController.UpdateOffering)
		admin.DELETE("/course-offering/:id", offeringController.DeleteOffering)

		admin.POST("/cohort", cohortController.CreateCohort)
		admin.PATCH("/cohort/:id", cohortController.UpdateCohort)
		admin.DELETE("/cohort/:id", cohortController.DeleteCohort)

		admin.POST("/cohort-semesters", cohortController.CreateSemester)
		admin.PATCH("/cohort-semesters/:id", cohortController.UpdateSemester)
		admin.DELETE("/cohort-semesters/:id", cohortController.DeleteSemester)
	}
}
