//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 说明：
// 1. Wire是编译期依赖注入工具，运行 `wire gen ./cmd/api` 生成wire_gen.go
// 2. 本文件与main.go中的手动组装保持等价，二选一使用
// 3. 组件构造函数参数并非都能从Config直接取到，
//    需要自定义Provider做参数提取（见下方provide*函数）

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"github.com/rs/zerolog"

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
	"github.com/xiebiao/bookreview/pkg/mq"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,     // 加载配置文件
	provideLogger,   // 结构化日志
	provideSeed,     // 图书种子数据
	redis.NewClient, // 创建Redis连接
	providePublisher, // 事件发布（MQ禁用时为nil）
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	memory.NewBookStore,   // 图书仓储（内存实现）
	memory.NewUserStore,   // 用户仓储（内存实现）
	redis.NewSessionStore, // 会话存储（Redis实现）
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	book.NewService, // 图书领域服务
	user.NewService, // 用户领域服务
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appcatalog.NewListBooksUseCase,   // 图书目录用例
	appcatalog.NewGetBookUseCase,     // 单本检索用例
	appcatalog.NewSearchBooksUseCase, // 按作者/书名检索用例
	appcatalog.NewGetReviewsUseCase,  // 读取书评用例
	appuser.NewRegisterUseCase,       // 用户注册用例
	appuser.NewLoginUseCase,          // 用户登录用例
	appreview.NewAddReviewUseCase,    // 写书评用例
	appreview.NewDeleteReviewUseCase, // 删书评用例
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,            // JWT管理器
	middleware.NewAuthMiddleware, // 认证中间件
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewCatalogHandler, // 目录处理器
	handler.NewUserHandler,    // 用户处理器
	handler.NewReviewHandler,  // 书评处理器
)

// provideLogger 从配置创建日志器
func provideLogger(cfg *config.Config) zerolog.Logger {
	return logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
}

// provideSeed 从配置指定的种子文件加载图书目录
func provideSeed(cfg *config.Config) ([]memory.SeedBook, error) {
	return memory.LoadSeed(cfg.Catalog.SeedFile)
}

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpire)
}

// providePublisher 从配置创建事件发布器
// MQ禁用时返回nil，Publisher的方法对nil接收者是空操作
func providePublisher(cfg *config.Config) (*mq.Publisher, error) {
	if !cfg.MQ.Enabled {
		return nil, nil
	}
	return mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
}

// InitializeApp 初始化整个应用
// Wire会按依赖关系生成完整的组装代码
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		router.New,
	)
	return nil, nil
}
