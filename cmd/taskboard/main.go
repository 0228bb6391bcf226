package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"taskboard/internal/api/router"
	"taskboard/internal/confirm"
	"taskboard/internal/pkg/config"
	"taskboard/internal/pkg/logger"
	"taskboard/internal/pkg/seed"
	"taskboard/internal/repository"
	"taskboard/internal/scheduler"
	"taskboard/internal/service"
)

// @title taskboard API
// @version 1.0
// @description 项目与任务看板 API 文档
// @description 提供任务看板、项目、团队、协作者、报表、日历等功能

// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

var (
	configFile = flag.String("config", "", "配置文件路径 (例如: -config=configs/config.yaml)")
	version    = flag.Bool("version", false, "显示版本信息")
)

const (
	appVersion = "1.0.0"
	appName    = "taskboard"
)

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("%s version %s\n", appName, appVersion)
		os.Exit(0)
	}

	// .env 可选，存在时先加载，供 CONFIG_FILE 等环境变量使用
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("加载 .env 失败: %v\n", err)
	}

	// init config logger
	var cfg *config.Config
	{
		// 优先级: 命令行参数 > 环境变量 > 默认路径
		configPath := getConfigPath()

		c, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("加载配置失败: %v\n", err)
			fmt.Println("\n使用方式:")
			fmt.Println("  1. 命令行参数指定:")
			fmt.Println("     ./taskboard -config=configs/config.yaml")
			fmt.Println("  2. 环境变量指定:")
			fmt.Println("     export CONFIG_FILE=configs/config.yaml")
			fmt.Println("     ./taskboard")
			fmt.Println("  3. 使用默认配置:")
			fmt.Println("     ./taskboard  (将使用 configs/config.yaml)")
			os.Exit(1)
		}
		cfg = c

		if err := logger.Init(&cfg.Log); err != nil {
			fmt.Printf("初始化日志失败: %v\n", err)
			os.Exit(1)
		}
		logger.Info(fmt.Sprintf("Load config file: %s of %s", configPath, getConfigSource()))

		defer func() {
			_ = logger.Close()
		}()
	}

	logger.Info(fmt.Sprintf("服务 %s 启动中...", appName), zap.String("version", appVersion))

	// 加载初始数据
	initial, err := seed.Load(cfg.Seed.File)
	if err != nil {
		logger.Fatal("加载初始数据失败", zap.Error(err), zap.String("file", cfg.Seed.File))
	}
	store := repository.NewStore()
	store.Load(initial.Snapshot)
	logger.Info("初始数据加载完成",
		zap.Int("users", len(initial.Users)),
		zap.Int("projects", len(initial.Projects)),
		zap.Int("teams", len(initial.Teams)),
		zap.Int("tasks", len(initial.Tasks)))

	stager := confirm.NewStager(cfg.Confirmation.GetTTL())
	services := service.NewServices(cfg, store, stager, initial.Avatars)

	// 初始化并启动定时任务调度器
	taskScheduler := scheduler.NewScheduler(logger.Log, services)
	if err := taskScheduler.Start(&cfg.Scheduler); err != nil {
		logger.Warn("定时任务调度器启动失败", zap.Error(err))
	}

	// 设置路由
	r := router.Setup(cfg, services)

	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: r,
	}

	go func() {
		logger.Info(fmt.Sprintf("%s 服务启动成功", cfg.Server.Name),
			zap.String("address", srv.Addr),
			zap.String("mode", cfg.Server.Mode),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("服务器启动失败", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("服务正在关闭...")

	taskScheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	logger.Info("服务已关闭")
}

// getConfigPath 获取配置文件路径
// 优先级: 命令行参数 > 环境变量 > 默认路径
func getConfigPath() string {
	if *configFile != "" {
		return *configFile
	}
	if envConfig := os.Getenv("CONFIG_FILE"); envConfig != "" {
		return envConfig
	}
	return "configs/config.yaml"
}

// getConfigSource 获取配置来源说明
func getConfigSource() string {
	if *configFile != "" {
		return "命令行参数"
	}
	if os.Getenv("CONFIG_FILE") != "" {
		return "环境变量"
	}
	return "默认配置"
}
