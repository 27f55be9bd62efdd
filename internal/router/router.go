package router

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/cart-backend/config"
	"github.com/ikkim/cart-backend/internal/app/controller"
	apperrors "github.com/ikkim/cart-backend/internal/errors"
	"github.com/ikkim/cart-backend/internal/middleware"
)

type Router struct {
	graphQLController *controller.GraphQLController
	uploadController  *controller.UploadController
	config            *config.Config
}

func NewRouter(
	graphQLController *controller.GraphQLController,
	uploadController *controller.UploadController,
	cfg *config.Config,
) *Router {
	return &Router{
		graphQLController: graphQLController,
		uploadController:  uploadController,
		config:            cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.CustomRecovery(recoverWithError))
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Cart API is running",
		})
	})

	router.POST(r.config.GraphQL.Path, r.graphQLController.Execute)

	v1 := router.Group("/api/v1")
	{
		uploads := v1.Group("/uploads")
		{
			uploads.POST("/presigned-url", r.uploadController.GeneratePresignedURL)
		}
	}

	return router
}

// recoverWithError answers a panicking request with the standard error body.
func recoverWithError(c *gin.Context, recovered interface{}) {
	middleware.GetLoggerFromContext(c).Error("Recovered from panic", fmt.Errorf("%v", recovered), map[string]interface{}{
		"path": c.Request.URL.Path,
	})
	apperrors.InternalError(c, "")
	c.Abort()
}
