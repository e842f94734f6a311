package infrastructure

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	apperrors "vaultline.io/application/appErrors"
	"vaultline.io/infrastructure/logger"
	middlewares "vaultline.io/infrastructure/middleware"
	ratelimit "vaultline.io/infrastructure/ratelimit"
	webRoutev1 "vaultline.io/infrastructure/routes/ginRouter/web/v1"
	server_response "vaultline.io/infrastructure/serverResponse"
	startup "vaultline.io/infrastructure/startUp"
)

type ginServer struct{}

func (s *ginServer) Start() {
	err := godotenv.Load()

	if err != nil {
		logger.Info("error loading env variables")
	}

	startup.StartServices()
	defer startup.CleanUpServices()

	server := gin.Default()
	origins := []string{}
	if os.Getenv("GIN_MODE") == "debug" {
		origins = append(origins, "http://localhost:4200")
	} else if os.Getenv("GIN_MODE") == "release" {
		origins = append(origins, strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",")...)
	}
	corsConfig := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "User-Agent"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	server.Use(cors.New(corsConfig))
	server.Use(ratelimit.TokenBucketPerIP())
	server.MaxMultipartMemory = 15 << 20

	server.Use(logger.RequestMetricMonitor.RequestMetricMiddleware().(func(*gin.Context)))
	server.Use(middlewares.ActivityLogMiddleware())

	api := server.Group("/api")
	api.Use(middlewares.UserAgentMiddleware())

	webRoutev1.AuthRouter(api)

	clientGroup := api.Group("")
	clientGroup.Use(middlewares.ClientGuardMiddleware())
	webRoutev1.ClientRouter(clientGroup)

	agentGroup := api.Group("")
	agentGroup.Use(middlewares.AgentGuardMiddleware())
	webRoutev1.AgentRouter(agentGroup)

	adminGroup := api.Group("")
	adminGroup.Use(middlewares.AdminGuardMiddleware())
	webRoutev1.AdminRouter(adminGroup)

	server.GET("/ping", func(ctx *gin.Context) {
		server_response.Responder.Respond(ctx, http.StatusOK, "pong!", nil, nil, nil)
	})

	server.NoRoute(func(ctx *gin.Context) {
		apperrors.NotFoundError(ctx, fmt.Sprintf("%s %s does not exist", ctx.Request.Method, ctx.Request.URL))
	})

	gin_mode := os.Getenv("GIN_MODE")
	port := os.Getenv("PORT")
	if gin_mode == "debug" || gin_mode == "release" {
		logger.Info(fmt.Sprintf("Server starting on PORT %s", port))
		server.Run(fmt.Sprintf(":%s", port))
	} else {
		panic(fmt.Sprintf("invalid gin mode used - %s", gin_mode))
	}
}
