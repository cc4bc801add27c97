package routes

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"venuescout-api/config"
	"venuescout-api/controllers"
	"venuescout-api/middleware"
	"venuescout-api/repositories"
	"venuescout-api/services"
)

// SetupRoutes wires all services, controllers and endpoints onto the router.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	photoService, err := services.NewPhotoService(db, cfg)
	if err != nil {
		log.Fatal("Failed to initialize photo storage:", err)
	}
	if err := photoService.EnsureBucket(context.Background()); err != nil {
		log.Println("Warning: photo bucket unavailable:", err)
	}

	csvService := services.NewCSVService(db)
	narrativeClient := services.NewOpenAINarrativeClient(cfg.OpenAIKey)
	descriptionService := services.NewDescriptionService(db, narrativeClient)
	outreachService := services.NewOutreachService(cfg)
	proposalService := services.NewProposalService()
	activityRepo := repositories.NewActivityRepository(db)

	authController := controllers.NewAuthController(db, cfg.JWTSecret)
	venueController := controllers.NewVenueController(db, photoService, csvService)
	clientController := controllers.NewClientController(db)
	cateringController := controllers.NewCateringController(db)
	projectController := controllers.NewProjectController(db, activityRepo)
	projectVenueController := controllers.NewProjectVenueController(db, descriptionService, outreachService, activityRepo)
	proposalController := controllers.NewProposalController(db, proposalService, activityRepo)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		protected.GET("/auth/profile", authController.GetProfile)

		venues := protected.Group("/venues")
		{
			venues.GET("", venueController.GetVenues)
			venues.POST("", venueController.CreateVenue)
			venues.GET("/upload-template", venueController.GetCSVTemplate)
			venues.POST("/upload-csv", venueController.UploadCSV)
			venues.GET("/:id", venueController.GetVenue)
			venues.PATCH("/:id", venueController.UpdateVenue)
			venues.DELETE("/:id", venueController.DeleteVenue)
			venues.POST("/:id/photos", venueController.UploadPhoto)
			venues.DELETE("/:id/photos/:photo_id", venueController.DeletePhoto)
		}

		clients := protected.Group("/clients")
		{
			clients.GET("", clientController.GetClients)
			clients.POST("", clientController.CreateClient)
			clients.GET("/:id", clientController.GetClient)
			clients.PATCH("/:id", clientController.UpdateClient)
			clients.DELETE("/:id", clientController.DeleteClient)
		}

		catering := protected.Group("/catering-providers")
		{
			catering.GET("", cateringController.GetProviders)
			catering.POST("", cateringController.CreateProvider)
			catering.DELETE("/:id", cateringController.DeactivateProvider)
		}

		projects := protected.Group("/projects")
		{
			projects.GET("", projectController.GetProjects)
			projects.POST("", projectController.CreateProject)
			projects.GET("/:id", projectController.GetProject)
			projects.PATCH("/:id", projectController.UpdateProject)
			projects.DELETE("/:id", projectController.DeleteProject)
			projects.GET("/:id/activity", projectController.GetActivity)

			projects.GET("/:id/venues", projectVenueController.ListVenues)
			projects.POST("/:id/venues", projectVenueController.AddVenue)
			projects.PATCH("/:id/venues/:venue_id", projectVenueController.UpdateVenue)
			projects.DELETE("/:id/venues/:venue_id", projectVenueController.RemoveVenue)
			projects.POST("/:id/venues/:venue_id/generate-description", projectVenueController.GenerateDescription)
			projects.POST("/:id/venues/:venue_id/send-inquiry", projectVenueController.SendInquiry)

			projects.GET("/:id/proposal/preview", proposalController.PreviewProposal)
			projects.GET("/:id/proposal/download", proposalController.DownloadProposal)
		}
	}
}
