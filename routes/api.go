package routes

import (
	"github.com/branch-locator/app/controllers"
	"github.com/gin-gonic/gin"
)

// SetupAssetRoutes serves the dataset at /<file>, the path the loader fetches
func SetupAssetRoutes(router *gin.Engine, assetController *controllers.AssetController) {
	path := "/" + assetController.FileName()
	router.GET(path, assetController.Dataset)
	router.HEAD(path, assetController.Dataset)
}

// SetupHealthRoutes health check routes
func SetupHealthRoutes(router *gin.Engine, assetController *controllers.AssetController) {
	router.GET("/health", assetController.HealthCheck)
	router.GET("/ready", assetController.HealthCheck)
	router.GET("/live", assetController.HealthCheck)
}

// SetupAllRoutes wires middleware, asset and health routes plus a JSON 404
func SetupAllRoutes(router *gin.Engine, assetController *controllers.AssetController) {
	router.Use(gin.Recovery())

	SetupAssetRoutes(router, assetController)
	SetupHealthRoutes(router, assetController)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":  "Route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})
}
