package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pcm-swm/backend/config"
	"pcm-swm/backend/internal/api/handler"
	"pcm-swm/backend/internal/api/middleware"
	"pcm-swm/backend/internal/model"
	"pcm-swm/backend/pkg/jwt"
	"pcm-swm/backend/pkg/redis"
)

// maxBodyBytes leaves headroom for a full weekly-program spreadsheet upload.
const maxBodyBytes = 10 << 20

// Setup builds the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// authentication (public)
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 10, time.Minute))
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// everything else requires a valid access token
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			// work orders
			orders := authorized.Group("/orders")
			{
				orders.GET("", h.Order.List)
				orders.GET("/:id", h.Order.Get)
				orders.GET("/:id/logs", h.Order.Logs)
				orders.POST("", h.Order.Create)
				orders.PUT("/:id", h.Order.Update)
				orders.DELETE("/:id", h.Order.Delete)
				orders.POST("/import", h.Order.Import)
			}

			// roster
			technicians := authorized.Group("/technicians")
			{
				technicians.GET("", h.Technician.List)
				technicians.GET("/:id", h.Technician.Get)
				technicians.POST("", h.Technician.Create)
				technicians.PUT("/:id", h.Technician.Update)
				technicians.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.Technician.Delete)
			}

			// shutdown windows
			shutdowns := authorized.Group("/shutdowns")
			{
				shutdowns.GET("", h.Shutdown.List)
				shutdowns.GET("/:id", h.Shutdown.Get)
				shutdowns.POST("", h.Shutdown.Create)
				shutdowns.PUT("/:id", h.Shutdown.Update)
				shutdowns.DELETE("/:id", h.Shutdown.Delete)
			}

			// asset register
			assets := authorized.Group("/assets")
			{
				assets.GET("", h.Asset.List)
				assets.GET("/:id", h.Asset.Get)
				assets.POST("", h.Asset.Create)
				assets.PUT("/:id", h.Asset.Update)
				assets.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.Asset.Delete)
			}

			// weekly planning
			planning := authorized.Group("/planning")
			{
				planning.GET("/week", h.Planning.Week)
				planning.GET("/dashboard", h.Planning.Dashboard)
				planning.GET("/export", h.Export.Week)
			}

			// administration
			admin := authorized.Group("/admin")
			admin.Use(middleware.RoleAuth(model.RoleAdmin))
			{
				admin.POST("/wipe", h.System.Wipe)
			}
		}
	}

	return r
}
