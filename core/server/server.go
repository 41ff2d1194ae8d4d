package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roadwise/core/cache"
	"roadwise/core/config"
	"roadwise/core/database"
	"roadwise/core/logger"
	"roadwise/core/middleware"
	"roadwise/core/storage"
	"roadwise/core/tasks"
	"roadwise/migrations"
	"roadwise/modules/attendance"
	"roadwise/modules/auth"
	"roadwise/modules/billing"
	"roadwise/modules/classgroup"
	"roadwise/modules/notification"
	"roadwise/modules/school"
	"roadwise/modules/student"
	"roadwise/modules/truck"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Run boots the whole service: config, logging, database + migrations,
// redis, the asynq worker and the echo server with every module wired.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting RoadWise API", "host", cfg.Server.Host, "port", cfg.Server.Port)

	db, err := database.InitDB(database.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		return err
	}

	if err := migrations.Up(db.SQL()); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	cacheStore, err := cache.InitCache(cache.CacheConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer cacheStore.Close()

	redisCfg := tasks.RedisConfig{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB}
	taskClient := tasks.NewClient(redisCfg)
	defer taskClient.Close()
	worker := tasks.NewWorker(redisCfg, 5)

	store := storage.NewS3Storage(storage.S3Config{
		Region:    cfg.S3.Region,
		Bucket:    cfg.S3.Bucket,
		Endpoint:  cfg.S3.Endpoint,
		AccessKey: cfg.S3.AccessKey,
		SecretKey: cfg.S3.SecretKey,
	})

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	mw := middleware.NewMiddleware(cacheStore)

	// Module wiring. Order matters only where modules feed each other.
	auth.Init(e, db, mw, cacheStore)
	school.Init(e, db, mw)
	truck.Init(e, db, mw)
	student.Init(e, db, mw)
	attendance.Init(e, db, mw)

	notifSvc := notification.Init(e, db, mw)
	notification.RegisterTasks(worker.Mux, notifSvc)

	if err := classgroup.Init(e, db, mw, cacheStore, taskClient, classgroup.ScheduleSettings{
		DayStart:          cfg.Schedule.DayStart,
		DayEnd:            cfg.Schedule.DayEnd,
		GranularityMin:    cfg.Schedule.GranularityMin,
		WorkingDays:       cfg.Schedule.WorkingDays,
		RecheckDebounceMS: cfg.Schedule.RecheckDebounceMS,
	}); err != nil {
		return fmt.Errorf("init classgroup module: %w", err)
	}

	billing.Init(e, db, mw, taskClient)
	billing.RegisterTasks(worker.Mux, db, store)

	if err := worker.Start(); err != nil {
		return fmt.Errorf("start task worker: %w", err)
	}

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := e.Start(addr); err != nil {
			logger.Info("HTTP server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	worker.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
