package api

import (
	"github.com/gin-gonic/gin"
	"github.com/yourname/wellnesstracker/internal/auth"
)

// NewRouter wires the wellness API routes. Auth endpoints are open; log
// endpoints sit behind the bearer-token middleware.
func NewRouter(app App, provider auth.Provider) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())

	r.POST("/auth/login", PostLogin(app))
	r.POST("/auth/signup", PostSignup(app))

	logs := r.Group("/wellness-logs")
	logs.Use(auth.AuthMiddleware(provider, app.Config()))
	logs.GET("", GetLogs(app))
	logs.POST("", PostLog(app))
	logs.PUT("/:id", PutLog(app))
	logs.DELETE("/:id", DeleteLog(app))

	return r
}
