package handler

import (
	"net/http"
	"runtime/debug"

	"codescore/internal/controller"
	"codescore/pkg/mcp"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func SetupRouter(analysisController *controller.AnalysisController, mcpServer *mcp.ComplexityServer, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(CustomRecoveryMiddleware(logger))
	router.Use(LoggerMiddleware(logger))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/analyzeComplexity", analysisController.AnalyzeComplexity)
		v1.POST("/extractFeatures", analysisController.ExtractFeatures)
		v1.POST("/patternEffectiveness", analysisController.PatternEffectiveness)
		v1.POST("/analyzeActorModel", analysisController.AnalyzeActorModel)
		v1.GET("/languages", analysisController.ListLanguages)
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "healthy",
			})
		})
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup MCP routes
	if mcpServer != nil {
		mcpServer.SetupHTTPRoutes(router)
	}

	return router
}

func LoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger.Info("HTTP Request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("client_ip", c.ClientIP()),
		)
		c.Next()
	}
}

func CustomRecoveryMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered",
					zap.Any("error", err),
					zap.String("stack", string(debug.Stack())),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
				)
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
