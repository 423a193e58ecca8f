package routes

import (
	"glucolog/controllers"
	"glucolog/middlewares"
	"glucolog/services"

	"github.com/gin-gonic/gin"
)

// Deps carries everything the router wires into controllers. Advisory and
// Push are optional; their routes are skipped when the service is absent.
type Deps struct {
	Auth     *services.AuthService
	Users    *services.UserService
	Catalog  *services.FoodCatalogService
	Glucose  *services.GlucoseService
	Meals    *services.MealService
	Analysis *services.AnalysisService
	Advisory *services.AdvisoryService
	Push     *services.PushService
	Hub      *services.RealtimeHub
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	authCtrl := controllers.NewAuthController(d.Auth)
	userCtrl := controllers.NewUserController(d.Users)
	foodCtrl := controllers.NewFoodController(d.Catalog)
	glucoseCtrl := controllers.NewGlucoseController(d.Glucose)
	mealCtrl := controllers.NewMealController(d.Meals)
	analysisCtrl := controllers.NewAnalysisController(d.Analysis, d.Users)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
	}

	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware())
	{
		user := protected.Group("/user")
		{
			user.GET("/profile", userCtrl.GetProfile)
			user.PUT("/profile", userCtrl.UpdateProfile)
			user.DELETE("/profile", userCtrl.DeleteAccount)
		}

		foods := protected.Group("/foods")
		{
			foods.GET("", foodCtrl.List)
			foods.GET("/categories", foodCtrl.Categories)
			foods.GET("/recommended", foodCtrl.Recommended)
			foods.GET("/:id", foodCtrl.Get)
			foods.POST("", foodCtrl.Create)
			foods.PUT("/:id", foodCtrl.Update)
			foods.DELETE("/:id", foodCtrl.Delete)
		}

		glucose := protected.Group("/glucose")
		{
			glucose.POST("", glucoseCtrl.Create)
			glucose.GET("", glucoseCtrl.History)
			glucose.GET("/latest", glucoseCtrl.Latest)
			glucose.GET("/stats", glucoseCtrl.Stats)
			glucose.DELETE("/:id", glucoseCtrl.Delete)
		}

		meals := protected.Group("/meals")
		{
			meals.POST("", mealCtrl.Add)
			meals.GET("", mealCtrl.List)
			meals.GET("/:id", mealCtrl.Get)
			meals.DELETE("/:id", mealCtrl.Delete)
			meals.POST("/:id/glucose", mealCtrl.AddPostMealReading)
			meals.PUT("/:id/analysis", mealCtrl.AttachAnalysis)
		}

		analysis := protected.Group("/analysis")
		{
			analysis.POST("", analysisCtrl.Analyze)
			analysis.GET("", analysisCtrl.History)
			analysis.GET("/stats", analysisCtrl.Stats)
			analysis.GET("/:id", analysisCtrl.Get)
			analysis.PUT("/:id/feedback", analysisCtrl.Feedback)
			analysis.POST("/:id/share", analysisCtrl.Share)
		}

		if d.Advisory != nil {
			advisoryCtrl := controllers.NewAdvisoryController(d.Advisory, d.Users)
			advisory := protected.Group("/advisory")
			{
				advisory.POST("", advisoryCtrl.Analyze)
				advisory.GET("", advisoryCtrl.History)
				advisory.GET("/:id", advisoryCtrl.Get)
			}
		}

		protected.GET("/alerts", controllers.ListAlerts)
		protected.POST("/photos", controllers.UploadMealPhoto)

		if d.Push != nil {
			deviceCtrl := controllers.NewDeviceController(d.Push)
			protected.POST("/devices", deviceCtrl.Register)
			protected.POST("/user/notifications/toggle", deviceCtrl.ToggleNotifications)
		}

		if d.Hub != nil {
			rtCtrl := controllers.NewRealtimeController(d.Hub)
			protected.GET("/ws/alerts", rtCtrl.AlertsWS)
		}
	}

	return r
}
