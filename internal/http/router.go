package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cardstudio/internal/http/handlers"
	"cardstudio/internal/http/middleware"
)

type RouterDependencies struct {
	Logger          *slog.Logger
	HealthHandler   *handlers.HealthHandler
	PeopleHandler   *handlers.PeopleHandler
	TemplateHandler *handlers.TemplateHandler
	CardHandler     *handlers.CardHandler
	GenerateHandler *handlers.GenerateHandler
	CronHandler     *handlers.CronHandler
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(deps.Logger))

	r.GET("/healthz", deps.HealthHandler.Healthz)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.GET("/people", deps.PeopleHandler.List)
		api.POST("/people", deps.PeopleHandler.Create)
		api.GET("/people/:id", deps.PeopleHandler.Get)
		api.PUT("/people/:id", deps.PeopleHandler.Update)
		api.DELETE("/people/:id", deps.PeopleHandler.Delete)

		api.GET("/templates", deps.TemplateHandler.List)
		api.POST("/templates", deps.TemplateHandler.Create)
		api.GET("/templates/:id", deps.TemplateHandler.Get)
		api.PUT("/templates/:id", deps.TemplateHandler.Update)
		api.DELETE("/templates/:id", deps.TemplateHandler.Delete)
		api.POST("/templates/:id/render", deps.TemplateHandler.Render)

		api.GET("/cards", deps.CardHandler.List)
		api.POST("/cards", deps.CardHandler.Create)

		api.POST("/generate-image", deps.GenerateHandler.GenerateImage)
		api.POST("/generate-message", deps.GenerateHandler.GenerateMessage)

		api.GET("/cron/birthday", deps.CronHandler.RunBirthdayScan)
	}

	return r
}
