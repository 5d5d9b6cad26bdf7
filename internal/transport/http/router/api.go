package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"taskhub/internal/core/auth"
	"taskhub/internal/transport/http/handler"
	mdw "taskhub/internal/transport/http/middleware"
)

func NewAPIEngine(l *zap.Logger, jwter *auth.JWTer, userH *handler.UserHandler, taskH *handler.TaskHandler) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})

	api.POST("/auth/signup", userH.Signup)
	api.POST("/auth/login", userH.Login)

	authed := api.Group("")
	authed.Use(mdw.AuthJWT(jwter))

	authed.GET("/profile", userH.Profile)
	authed.PUT("/profile", userH.UpdateProfile)

	authed.POST("/tasks", taskH.Create)
	authed.GET("/tasks", taskH.List)
	authed.GET("/tasks/:id", taskH.Get)
	authed.PUT("/tasks/:id", taskH.Update)
	authed.DELETE("/tasks/:id", taskH.Delete)

	return r
}
