package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"velvetleash/server/config"
)

// NewRouter builds the engine with middleware and every route registered.
func NewRouter(h *Handler, cfg *config.Config, logger *logrus.Logger) (*gin.Engine, error) {
	if err := RegisterValidators(); err != nil {
		return nil, err
	}
	gin.SetMode(cfg.Server.GinMode)

	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger(logger), CORS())

	var limiter *IPRateLimiter
	if cfg.RateLimit.RequestsPerMinute > 0 {
		limiter = NewIPRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	}
	SetupRoutes(router, h, limiter)
	return router, nil
}

func SetupRoutes(router *gin.Engine, h *Handler, limiter *IPRateLimiter) {
	api := router.Group("/api")
	if limiter != nil {
		api.Use(limiter.Middleware())
	}

	api.GET("/health", h.Health)

	sitters := api.Group("/sitters")
	{
		sitters.GET("", h.GetSitters)
		sitters.GET("/nearby", h.GetNearbySitters)
		sitters.GET("/:id", h.GetSitter)
		sitters.POST("", h.CreateSitter)
		sitters.PUT("/:id", h.UpdateSitter)
	}

	boarding := api.Group("/boarding")
	{
		boarding.GET("", h.GetBoardingRequests)
		boarding.GET("/:id", h.GetBoardingRequest)
		boarding.POST("", h.CreateBoardingRequest)
		boarding.PUT("/:id", h.UpdateBoardingRequest)
		boarding.PATCH("/:id/status", h.UpdateBoardingStatus)
		boarding.DELETE("/:id", h.DeleteBoardingRequest)
	}

	pets := api.Group("/pets")
	{
		pets.GET("", h.GetPets)
		pets.GET("/types", h.GetPetTypes)
		pets.GET("/sizes", h.GetPetSizes)
		pets.GET("/ages", h.GetPetAges)
		pets.GET("/user/:userId", h.GetPetsByUser)
		pets.GET("/:id", h.GetPet)
		pets.POST("", h.CreatePet)
		pets.PUT("/:id", h.UpdatePet)
		pets.DELETE("/:id", h.DeletePet)
	}

	user := api.Group("/user")
	{
		user.POST("", h.RegisterUser)
		user.PATCH("/profile", h.UpdateUserProfile)
		user.GET("/:id", h.GetUser)
		user.GET("/:id/pets", h.GetUserPets)
	}

	notifications := api.Group("/notifications")
	{
		notifications.GET("/:userId", h.GetNotifications)
		notifications.GET("/:userId/unread-count", h.GetUnreadCount)
		notifications.PUT("/read-all/:userId", h.MarkAllNotificationsRead)
		notifications.PUT("/:id/read", h.MarkNotificationRead)
		notifications.DELETE("/:id", h.DeleteNotification)
	}

	location := api.Group("/location")
	{
		location.GET("/zip-codes", h.GetZipCodes)
		location.GET("/coordinates/:zipCode", h.GetCoordinates)
		location.POST("/reverse-geocode", h.ReverseGeocode)
		location.GET("/nearby-cities", h.GetNearbyCities)
		location.GET("/states", h.GetStates)
	}
}
