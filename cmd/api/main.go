package main

import (
	"fmt"
	stdlog "log"
	"net/http"

	appcatalog "github.com/xiebiao/bookreview/internal/application/catalog"
	appreview "github.com/xiebiao/bookreview/internal/application/review"
	appuser "github.com/xiebiao/bookreview/internal/application/user"
	"github.com/xiebiao/bookreview/internal/domain/book"
	"github.com/xiebiao/bookreview/internal/domain/user"
	"github.com/xiebiao/bookreview/internal/infrastructure/config"
	"github.com/xiebiao/bookreview/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/bookreview/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookreview/internal/interface/http/handler"
	"github.com/xiebiao/bookreview/internal/interface/http/middleware"
	"github.com/xiebiao/bookreview/internal/interface/http/router"
	"github.com/xiebiao/bookreview/pkg/jwt"
	"github.com/xiebiao/bookreview/pkg/logger"
	"github.com/xiebiao/bookreview/pkg/metrics"
	"github.com/xiebiao/bookreview/pkg/mq"
)

// main 主程序入口
// 说明：手动依赖注入（wire.go中有等价的Wire配置，运行wire gen可生成）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化日志
	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	log.Info().
		Int("port", cfg.Server.Port).
		Str("mode", cfg.Server.Mode).
		Str("redis", cfg.Redis.Addr()).
		Str("seed_file", cfg.Catalog.SeedFile).
		Msg("配置加载成功")

	// 3. 初始化指标
	metrics.InitMetrics()

	// 4. 加载图书种子数据
	seed, err := memory.LoadSeed(cfg.Catalog.SeedFile)
	if err != nil {
		log.Fatal().Err(err).Msg("加载图书种子数据失败")
	}
	log.Info().Int("count", len(seed)).Msg("图书目录加载完成")

	// 5. 初始化Redis连接（会话存储）
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("初始化Redis失败")
	}

	// 6. 初始化消息队列（可选组件，禁用时发布为空操作）
	var publisher *mq.Publisher
	if cfg.MQ.Enabled {
		publisher, err = mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
		if err != nil {
			log.Fatal().Err(err).Msg("初始化RabbitMQ失败")
		}
		defer publisher.Close()
		log.Info().Str("exchange", cfg.MQ.Exchange).Msg("事件发布已启用")
	}

	// 7. 依赖注入（手动组装）
	// Repository ← Service ← UseCase ← Handler

	// 基础设施层
	bookRepo := memory.NewBookStore(seed)
	userRepo := memory.NewUserStore()
	sessionStore := redis.NewSessionStore(redisClient)
	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpire)

	// 领域层
	bookService := book.NewService(bookRepo)
	userService := user.NewService(userRepo)

	// 应用层
	listBooksUseCase := appcatalog.NewListBooksUseCase(bookService)
	getBookUseCase := appcatalog.NewGetBookUseCase(bookService)
	searchBooksUseCase := appcatalog.NewSearchBooksUseCase(bookService)
	getReviewsUseCase := appcatalog.NewGetReviewsUseCase(bookService)
	registerUseCase := appuser.NewRegisterUseCase(userService, publisher)
	loginUseCase := appuser.NewLoginUseCase(userService, jwtManager, sessionStore)
	addReviewUseCase := appreview.NewAddReviewUseCase(bookService, publisher)
	deleteReviewUseCase := appreview.NewDeleteReviewUseCase(bookService, publisher)

	// 接口层
	catalogHandler := handler.NewCatalogHandler(
		listBooksUseCase,
		getBookUseCase,
		searchBooksUseCase,
		getReviewsUseCase,
	)
	userHandler := handler.NewUserHandler(registerUseCase, loginUseCase)
	reviewHandler := handler.NewReviewHandler(addReviewUseCase, deleteReviewUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 8. 初始化Gin引擎并注册路由
	r := router.New(cfg, log, catalogHandler, userHandler, reviewHandler, authMiddleware)

	// 9. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Info().Str("addr", addr).Msg("服务启动")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("启动服务失败")
	}
}
