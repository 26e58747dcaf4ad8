package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/interconnect/backend/docs"
)

// SetupSwagger serves the API documentation under /swagger. A non-empty host
// replaces the one baked into the generated spec, so "Try it out" targets the
// running server.
func SetupSwagger(router *gin.Engine, host string) {
	if host != "" {
		docs.SwaggerInfo.Host = host
	}
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.URL("/swagger/doc.json"),
		ginSwagger.DocExpansion("none"),
		ginSwagger.DefaultModelsExpandDepth(1)))
}
