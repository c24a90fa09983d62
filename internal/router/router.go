package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/skillswap/skillswap-api/internal/handler"
	"github.com/skillswap/skillswap-api/internal/middleware"
	"github.com/skillswap/skillswap-api/internal/service"
	"github.com/skillswap/skillswap-api/pkg/config"
	"github.com/skillswap/skillswap-api/pkg/logger"
	corsmiddleware "github.com/skillswap/skillswap-api/pkg/middleware/cors"
	reqidmiddleware "github.com/skillswap/skillswap-api/pkg/middleware/requestid"
)

// Handlers bundles every route handler the router mounts.
type Handlers struct {
	Auth          *handler.AuthHandler
	Users         *handler.UserHandler
	Skills        *handler.SkillHandler
	Sessions      *handler.SessionHandler
	Notifications *handler.NotificationHandler
}

// New assembles the gin engine with the full middleware chain and API surface.
func New(cfg *config.Config, logr *zap.Logger, authSvc *service.AuthService, metricsSvc *service.MetricsService, h Handlers) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if metricsSvc != nil {
		r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	auth := middleware.JWT(authSvc)
	api := r.Group(cfg.APIPrefix)

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.GET("/me", auth, h.Auth.Me)
	}

	users := api.Group("/users", auth)
	{
		users.GET("/profile", h.Users.Profile)
		users.PUT("/profile", h.Users.UpdateProfile)
		users.GET("/shared-skills", h.Users.SharedSkills)
		users.GET("/skills/learn", h.Users.SkillsToLearn)
		users.POST("/skills/teach", h.Users.AddSkillsToTeach)
		users.GET("/recordings", h.Users.MyRecordings)
		users.POST("/recordings/:id/bookmark", h.Users.Bookmark)
		users.DELETE("/recordings/:id/bookmark", h.Users.RemoveBookmark)
	}

	skills := api.Group("/skills")
	{
		skills.GET("", h.Skills.List)
		skills.GET("/learn", h.Skills.BrowseToLearn)
		skills.GET("/user/:userId", h.Skills.ListByUser)
		skills.POST("/add", auth, h.Skills.Add)
		skills.POST("/teach", auth, h.Skills.Teach)
		skills.PUT("/update/:id", auth, h.Skills.Update)
		skills.DELETE("/delete/:id", auth, h.Skills.Delete)
		skills.POST("/:id/interest", auth, h.Skills.ExpressInterest)
		skills.DELETE("/:id/interest", auth, h.Skills.RemoveInterest)
	}

	sessions := api.Group("/sessions", auth)
	{
		sessions.POST("/create", h.Sessions.Create)
		sessions.GET("/my-sessions", h.Sessions.MySessions)
		sessions.POST("/record/:id", h.Sessions.Record)
		sessions.GET("/record/:id", h.Sessions.Recordings)
		sessions.POST("/attend/:id", h.Sessions.TrackAttendance)
		sessions.POST("/:id/gmeet", h.Sessions.SetGMeetLink)
		sessions.GET("/:id", h.Sessions.Detail)
	}

	notifications := api.Group("/notifications")
	{
		notifications.POST("/send", h.Notifications.Send)
		notifications.GET("/:userId", h.Notifications.ListForUser)
	}

	return r
}
