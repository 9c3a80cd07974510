package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	candidacyapp "github.com/ubvoting/election/internal/candidacy/application"
	candidacydomain "github.com/ubvoting/election/internal/candidacy/domain"
	"github.com/ubvoting/election/internal/candidacy/infrastructure/mail"
	"github.com/ubvoting/election/internal/candidacy/infrastructure/messaging"
	"github.com/ubvoting/election/internal/candidacy/infrastructure/notify"
	candidacymysql "github.com/ubvoting/election/internal/candidacy/infrastructure/persistence/mysql"
	candidacyhttp "github.com/ubvoting/election/internal/candidacy/interfaces/http"
	notificationapp "github.com/ubvoting/election/internal/notification/application"
	notificationdomain "github.com/ubvoting/election/internal/notification/domain"
	notificationmysql "github.com/ubvoting/election/internal/notification/infrastructure/persistence/mysql"
	notificationhttp "github.com/ubvoting/election/internal/notification/interfaces/http"
	"github.com/ubvoting/election/pkg/cache"
	"github.com/ubvoting/election/pkg/config"
	"github.com/ubvoting/election/pkg/db"
	"github.com/ubvoting/election/pkg/logger"
	"github.com/ubvoting/election/pkg/metrics"
	"github.com/ubvoting/election/pkg/middleware"
	"github.com/ubvoting/election/pkg/mq"
	"github.com/ubvoting/election/pkg/ratelimit"
)

var configPath = flag.String("config", "configs/election/config.toml", "config file path")

func main() {
	flag.Parse()

	// 1. 配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	// 2. 日志
	if err := logger.Init(logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		FilePath:   cfg.Logger.FilePath,
		MaxSize:    cfg.Logger.MaxSize,
		MaxBackups: cfg.Logger.MaxBackups,
		MaxAge:     cfg.Logger.MaxAge,
		Compress:   cfg.Logger.Compress,
		WithCaller: cfg.Logger.WithCaller,
	}); err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}

	// 3. 指标
	metricsImpl := metrics.New(cfg.ServiceName)
	if cfg.Metrics.Enabled {
		if err := metricsImpl.Register(); err != nil {
			slog.Error("failed to register metrics", "error", err)
		}
		_ = metrics.StartHTTPServer(cfg.Metrics.Port, cfg.Metrics.Path)
	}

	// 4. 数据库
	database, err := db.Init(db.Config{
		Driver:             cfg.Database.Driver,
		DSN:                cfg.Database.DSN,
		MaxOpenConns:       cfg.Database.MaxOpenConns,
		MaxIdleConns:       cfg.Database.MaxIdleConns,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		LogEnabled:         cfg.Database.LogEnabled,
		SlowQueryThreshold: cfg.Database.SlowQueryThreshold,
	}, metricsImpl)
	if err != nil {
		slog.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	if cfg.Environment == "dev" {
		if err := database.AutoMigrate(
			&candidacydomain.Application{},
			&candidacydomain.User{},
			&notificationdomain.Notification{},
		); err != nil {
			slog.Error("failed to migrate database", "error", err)
		}
	}

	// 5. Redis（限流）
	var limiter ratelimit.RateLimiter
	redisCache, err := cache.New(cache.Config{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		MaxPoolSize:  cfg.Redis.MaxPoolSize,
		ConnTimeout:  cfg.Redis.ConnTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		slog.Error("failed to init redis, rate limiting disabled", "error", err)
	} else {
		limiter = ratelimit.NewRedisRateLimiter(redisCache.GetClient())
	}

	// 6. Kafka（无 broker 配置时事件发布关闭）
	var publisher candidacydomain.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err := mq.NewProducer(mq.KafkaConfig{
			Brokers:      cfg.Kafka.Brokers,
			MaxRetries:   cfg.Kafka.MaxRetries,
			RetryBackoff: cfg.Kafka.RetryBackoff,
		})
		if err != nil {
			slog.Error("failed to init kafka producer", "error", err)
		} else {
			defer producer.Close()
			publisher = messaging.NewKafkaPublisher(producer)
		}
	}

	// 7. 仓储
	applicationRepo := candidacymysql.NewApplicationRepository(database.DB)
	userRepo := candidacymysql.NewUserRepository(database.DB)
	notificationRepo := notificationmysql.NewNotificationRepository(database.DB)

	// 8. 应用服务
	notificationCommand := notificationapp.NewNotificationCommand(notificationRepo)
	notificationQuery := notificationapp.NewNotificationQuery(notificationRepo)

	smtpCfg := cfg.SMTP.Resolve()
	mailer := mail.NewMailer(mail.NewSMTPSender(smtpCfg, metricsImpl))
	notifier := notify.NewServiceNotifier(notificationCommand, metricsImpl)

	applicationCommand := candidacyapp.NewApplicationCommand(applicationRepo, userRepo, notifier, mailer, publisher)
	applicationQuery := candidacyapp.NewApplicationQuery(applicationRepo)

	// 9. 接口层
	if cfg.Environment != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.GinLoggingMiddleware())
	r.Use(middleware.GinRecoveryMiddleware())
	r.Use(middleware.GinCORSMiddleware())
	r.Use(middleware.GinMetricsMiddleware(metricsImpl))
	if limiter != nil {
		r.Use(middleware.RateLimitMiddleware(limiter, cfg.RateLimit))
	}

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "UB Voting System API", "version": cfg.Version})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := r.Group("/api")
	candidacyhttp.NewApplicationHandler(applicationCommand, applicationQuery, metricsImpl).RegisterRoutes(api)
	notificationhttp.NewNotificationHandler(notificationCommand, notificationQuery).RegisterRoutes(api)

	// 10. 启动
	g, ctx := errgroup.WithContext(context.Background())

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Second,
	}

	g.Go(func() error {
		slog.Info("HTTP server starting", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-quit:
			slog.Info("shutting down server...")
		case <-ctx.Done():
			slog.Info("context cancelled, shutting down...")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}

		if redisCache != nil {
			_ = redisCache.Close()
		}
		return database.Close()
	})

	if err := g.Wait(); err != nil {
		slog.Error("server exited with error", "error", err)
	}
}
