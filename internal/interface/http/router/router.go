package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/xiebiao/bookreview/internal/infrastructure/config"
	"github.com/xiebiao/bookreview/internal/interface/http/handler"
	"github.com/xiebiao/bookreview/internal/interface/http/middleware"
)

// New 创建并配置Gin引擎
// 设计说明：
// 1. 路由注册独立成包，测试可以用内存实现组装出同一个引擎
// 2. 对外路径是既有契约，保持原样：目录和检索挂在根路径，
//    书评写接口挂在/auth下由认证中间件保护
func New(
	cfg *config.Config,
	log zerolog.Logger,
	catalogHandler *handler.CatalogHandler,
	userHandler *handler.UserHandler,
	reviewHandler *handler.ReviewHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.Server.Mode == "test" {
		gin.SetMode(gin.TestMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// 运维端点
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 用户模块（公开接口）
	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)

	// 目录模块（公开接口）
	r.GET("/", catalogHandler.List)
	r.GET("/isbn/:isbn", catalogHandler.GetByISBN)
	r.GET("/author/:author", catalogHandler.ByAuthor)
	r.GET("/title/:title", catalogHandler.ByTitle)
	r.GET("/review/:isbn", catalogHandler.Reviews)

	// 异步镜像路由（响应与同步版完全一致）
	async := r.Group("/async")
	{
		async.GET("", catalogHandler.AsyncList)
		async.GET("/isbn/:isbn", catalogHandler.AsyncGetByISBN)
		async.GET("/author/:author", catalogHandler.AsyncByAuthor)
		async.GET("/title/:title", catalogHandler.AsyncByTitle)
	}

	// 书评模块（需要登录）
	auth := r.Group("/auth")
	auth.Use(authMiddleware.RequireAuth())
	{
		auth.PUT("/review/:isbn", reviewHandler.Add)
		auth.DELETE("/review/:isbn", reviewHandler.Delete)
	}

	return r
}
