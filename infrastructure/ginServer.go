package infrastructure

import (
	"fmt"
	"net/http"
	"os"
	"time"

	apperrors "stockroom.io/application/appErrors"
	"stockroom.io/infrastructure/logger"
	middlewares "stockroom.io/infrastructure/middleware"
	ratelimit "stockroom.io/infrastructure/ratelimit"
	webRoutev1 "stockroom.io/infrastructure/routes/ginRouter/web/v1"
	server_response "stockroom.io/infrastructure/serverResponse"
	startup "stockroom.io/infrastructure/startUp"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func StartServer() {
	startup.StartServices()
	defer startup.CleanUpServices()

	server := gin.Default()
	origins := []string{}
	if os.Getenv("GIN_MODE") == "debug" {
		origins = append(origins, "http://localhost:3000")
	} else if os.Getenv("GIN_MODE") == "release" {
		origins = append(origins, "https://stockroom.io", "https://www.stockroom.io")
	}
	corsConfig := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-Id", "User-Agent"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	server.Use(cors.New(corsConfig))
	server.Use(ratelimit.TokenBucketPerIP())

	// edge gate: cookie presence check for every page route. api, assets and
	// the login page itself are exempt
	server.Use(middlewares.RouteGateMiddleware("/login"))

	server.Static("/assets", "./web/assets")
	server.StaticFile("/login", "./web/login.html")
	server.StaticFile("/", "./web/index.html")

	v1 := server.Group("/api")
	routerV1 := v1.Group("/v1")
	routerV1.Use(middlewares.UserAgentMiddleware())
	{
		webRoutev1.AuthRouter(routerV1)
		webRoutev1.UserRouter(routerV1)
		webRoutev1.VendorRouter(routerV1)
		webRoutev1.ProductRouter(routerV1)
		webRoutev1.InventoryRouter(routerV1)
	}

	server.GET("/ping", func(ctx *gin.Context) {
		server_response.Responder.Respond(ctx, http.StatusOK, "pong!", nil, nil)
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
