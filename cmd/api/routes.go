package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	if app.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	// simple logger middleware that uses zap
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "duration", time.Since(start))
	})

	r.Use(app.CORSMiddleware())

	if app.Config.Limiter.Enabled {
		r.Use(app.RateLimitMiddleware())
	}

	r.GET("/health", app.Health)

	api := r.Group("/api")
	api.Use(app.AuthMiddleware())
	{
		api.POST("/add-career", app.Handler.AddCareer)
		api.POST("/update-career", app.Handler.UpdateCareer)
		api.GET("/careers", app.Handler.ListCareers)
		api.GET("/careers/:id", app.Handler.GetCareer)
	}

	return r
}

func (app *application) Health(c *gin.Context) {
	status := gin.H{"status": "ok"}

	if err := app.DB.Ping(c.Request.Context()); err != nil {
		status["status"] = "degraded"
		status["database"] = err.Error()
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}
	if app.Redis != nil {
		if err := app.Redis.Ping(c.Request.Context()).Err(); err != nil {
			status["cache"] = err.Error()
		}
	}

	c.JSON(http.StatusOK, status)
}
