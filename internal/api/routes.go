package api

import (
	_ "embed"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mehrbod2002/brokerdb/internal/config"
	"github.com/mehrbod2002/brokerdb/internal/middleware"
	"github.com/mehrbod2002/brokerdb/internal/service"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//go:embed swagger.json
var swaggerJSON []byte

func SetupRoutes(r *gin.Engine, cfg *config.Config, bootstrapService service.BootstrapService, symbolService service.SymbolService, logService service.LogService) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	bootstrapHandler := NewBootstrapHandler(bootstrapService)
	symbolHandler := NewSymbolHandler(symbolService)
	logHandler := NewLogHandler(logService)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/docs/swagger.json")))
	r.GET("/docs/swagger.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", swaggerJSON)
	})

	v1 := r.Group("/api/v1")
	{
		v1.GET("/plan", bootstrapHandler.GetPlan)
		v1.GET("/symbols", symbolHandler.GetAllSymbols)
		v1.GET("/symbols/:symbol", symbolHandler.GetSymbol)

		admin := v1.Group("/admin").Use(middleware.AdminAuthMiddleware(cfg))
		{
			admin.GET("/verify", bootstrapHandler.Verify)
			admin.GET("/runs", logHandler.GetAllLogs)
			admin.GET("/runs/:run_id", logHandler.GetRunLogs)
		}
	}
}
