package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-site-backend/controllers"
	"hotel-site-backend/middleware"
	"hotel-site-backend/models"
	"hotel-site-backend/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Controllers bundles everything SetupRouter mounts.
type Controllers struct {
	Rooms       *controllers.ResourceController[models.Room]
	Facilities  *controllers.ResourceController[models.Facility]
	Services    *controllers.ResourceController[models.Service]
	Reviews     *controllers.ResourceController[models.Review]
	FooterLogos *controllers.ResourceController[models.FooterLogo]
	Settings    *controllers.SettingsController
	Auth        *controllers.AuthController
	Profile     *controllers.ProfileController
	Uploads     *controllers.UploadController
	Dashboard   *controllers.DashboardController
	Realtime    *controllers.RealtimeController
	AuthService *services.AuthService
}

func SetupRouter(ctl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Table-level change feed for public site and admin panel alike.
	r.GET("/ws", ctl.Realtime.Serve)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimitAuth(), ctl.Auth.Login)
			auth.POST("/register", middleware.RateLimitAuth(), ctl.Auth.Register)
			auth.GET("/me", middleware.AuthRequired(ctl.AuthService), ctl.Auth.Me)
			auth.PUT("/password", middleware.AuthRequired(ctl.AuthService), ctl.Auth.ChangePassword)
		}

		// Public read surface: active records only, display order, settings.
		public := api.Group("/public")
		{
			public.GET("/rooms", ctl.Rooms.ListPublic)
			public.GET("/facilities", ctl.Facilities.ListPublic)
			public.GET("/services", ctl.Services.ListPublic)
			public.GET("/reviews", ctl.Reviews.ListPublic)
			public.GET("/footer-logos", ctl.FooterLogos.ListPublic)
		}
		api.GET("/settings", ctl.Settings.Get)

		admin := api.Group("/admin")
		admin.Use(middleware.AuthRequired(ctl.AuthService), middleware.AdminRequired())
		{
			admin.GET("/dashboard", ctl.Dashboard.Stats)

			mountResource(admin.Group("/rooms"), ctl.Rooms)
			mountResource(admin.Group("/facilities"), ctl.Facilities)
			mountResource(admin.Group("/services"), ctl.Services)
			mountResource(admin.Group("/reviews"), ctl.Reviews)
			mountResource(admin.Group("/footer-logos"), ctl.FooterLogos)

			admin.PUT("/settings", ctl.Settings.Update)

			admin.GET("/profile", ctl.Profile.Get)
			admin.PUT("/profile", ctl.Profile.Update)
			admin.POST("/profile/avatar", ctl.Profile.UploadAvatar)

			admin.POST("/uploads", ctl.Uploads.Upload)
			admin.POST("/uploads/batch", ctl.Uploads.UploadBatch)
		}
	}

	return r
}

func mountResource[T services.Record](g *gin.RouterGroup, rc *controllers.ResourceController[T]) {
	g.GET("", rc.List)
	g.GET("/:id", rc.Get)
	g.POST("", rc.Create)
	g.PUT("/:id", rc.Update)
	g.PATCH("/:id", rc.Update)
	g.DELETE("/:id", rc.Delete)
}
