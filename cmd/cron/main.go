package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"credits-service/internal/conf"

	"github.com/gaoyong06/go-pkg/logger"
	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/robfig/cron/v3"
	_ "go.uber.org/automaxprocs"
)

const (
	// 默认每 10 分钟对账一次
	defaultReconcileSpec = "0 */10 * * * *"
	// 默认回看 24 小时内完成的结账会话
	defaultReconcileLookback = 24 * time.Hour
)

var (
	flagconf string
	flagOnce bool
)

func init() {
	flag.StringVar(&flagconf, "conf", "../../configs/config.yaml", "config path, eg: -conf config.yaml")
	flag.BoolVar(&flagOnce, "once", false, "run a single reconcile pass and exit")
}

func main() {
	flag.Parse()

	// 初始化配置
	c := config.New(
		config.WithSource(
			file.NewSource(flagconf),
		),
	)
	defer c.Close()

	if err := c.Load(); err != nil {
		panic(err)
	}

	var bc conf.Bootstrap
	if err := c.Scan(&bc); err != nil {
		panic(err)
	}

	// 初始化日志 (使用 go-pkg/logger)
	logConfig := &logger.Config{
		Level:         "info",
		Format:        "json",
		Output:        "stdout",
		FilePath:      "logs/credits-cron.log",
		MaxSize:       100,
		MaxAge:        30,
		MaxBackups:    10,
		Compress:      true,
		EnableConsole: true,
	}

	loggerInstance := logger.NewLogger(logConfig)

	// 添加基本字段
	loggerInstance = log.With(loggerInstance,
		"ts", log.DefaultTimestamp,
		"caller", log.DefaultCaller,
		"service.name", "credits-cron",
	)

	logHelper := log.NewHelper(loggerInstance)

	// 初始化应用
	app, cleanup, err := wireApp(&bc, loggerInstance)
	if err != nil {
		panic(err)
	}
	defer cleanup()

	spec, lookback := defaultReconcileSpec, defaultReconcileLookback
	if bc.Cron != nil {
		if bc.Cron.ReconcileSpec != "" {
			spec = bc.Cron.ReconcileSpec
		}
		if d := bc.Cron.ReconcileLookback.AsDuration(); d > 0 {
			lookback = d
		}
	}

	reconcile := func() {
		logHelper.Info("[CRON] Starting payment reconcile...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		report, err := app.reconcileUsecase.Reconcile(ctx, lookback)
		if err != nil {
			logHelper.Errorf("[CRON] Error reconciling payments: %v", err)
			return
		}
		logHelper.Infof("[CRON] Reconcile completed: seen=%d, applied=%d, already_applied=%d, skipped=%d, failed=%d",
			report.Seen, report.Applied, report.AlreadyApplied, report.Skipped, report.Failed)
	}

	if flagOnce {
		reconcile()
		return
	}

	// 创建定时任务调度器（支持秒级调度）
	cronScheduler := cron.New(cron.WithSeconds())
	if _, err := cronScheduler.AddFunc(spec, reconcile); err != nil {
		logHelper.Errorf("Failed to add reconcile job: %v", err)
		return
	}

	// 启动定时任务
	cronScheduler.Start()
	logHelper.Info("========================================")
	logHelper.Info("Cron jobs started successfully")
	logHelper.Info("Scheduled jobs:")
	logHelper.Infof("  - Payment reconcile: %s (lookback %s)", spec, lookback)
	logHelper.Info("========================================")

	// 优雅退出
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logHelper.Info("Shutting down gracefully...")

	// 停止定时任务
	ctx := cronScheduler.Stop()
	select {
	case <-ctx.Done():
		logHelper.Info("Cron jobs stopped gracefully")
	case <-time.After(5 * time.Second):
		logHelper.Info("Cron jobs forced to stop after timeout")
	}
}
