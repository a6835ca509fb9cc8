package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"Storefront/config"
	"Storefront/dao"
	"Storefront/middleware"
	"Storefront/pkg/localdb"
	"Storefront/pkg/log"
	"Storefront/pkg/response"
	"Storefront/service"
)

type AppProvider struct {
	Config   *config.Config
	Engine   *gin.Engine
	Local    *localdb.DB
	Remote   *dao.Store
	Mode     *service.PersistenceContext
	Data     *service.DataService
	Migrator *service.Migrator
}

func NewGinEngine(conf *config.Config, h *Handlers) *gin.Engine {
	if !conf.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(CORSMiddleware())
	r.Use(middleware.GinZap(), response.ErrorMiddleware(), middleware.PrometheusMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		response.Success(c, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	h.Admin.RegisterRouter(api)
	h.Catalog.RegisterRouter(api)
	h.Order.RegisterRouter(api)
	h.Cart.RegisterRouter(api)
	h.Content.RegisterRouter(api)
	h.Notification.RegisterRouter(api)
	h.StoreConfig.RegisterRouter(api)
	return r
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Content-Length, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-New-Access-Token, Content-Disposition")

		// 预检请求直接返回 204
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// Start opens the local store and loads the persistence mode. Neither
// needs the remote database.
func (app *AppProvider) Start(ctx context.Context) error {
	if err := app.Local.Initialize(ctx); err != nil {
		return fmt.Errorf("open local store: %w", err)
	}
	if err := app.Mode.Initialize(ctx); err != nil {
		return fmt.Errorf("load persistence mode: %w", err)
	}
	log.L.Info("storage ready", zap.String("mode", string(app.Mode.Mode())))
	return nil
}

// Stop waits for background work and closes the local store.
func (app *AppProvider) Stop() {
	app.Data.Wait()
	if err := app.Local.Close(); err != nil {
		log.L.Warn("close local store", zap.Error(err))
	}
}

func Run(ctx *cli.Context, app *AppProvider) error {
	if err := app.Start(ctx.Context); err != nil {
		return err
	}
	defer app.Stop()

	eg, groupCtx := errgroup.WithContext(ctx.Context)
	c := make(chan os.Signal, 1)
	// 终止的信号 服务要停止了
	signal.Notify(c, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT)

	log.L.Info("server starting",
		zap.Int("port", app.Config.Server.Http),
		zap.String("env", app.Config.App.Env),
	)

	return run(c, eg, groupCtx, app)
}

func run(c chan os.Signal, eg *errgroup.Group, ctx context.Context, app *AppProvider) error {
	serv := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.Config.Server.Http),
		Handler:           app.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 启动 http 服务
	eg.Go(func() error {
		err := serv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	eg.Go(func() error {
		defer func() {
			log.L.Info("server stopping")

			// 等待中断信号以优雅地关闭服务器
			timeCtx, timeCancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer timeCancel()

			if err := serv.Shutdown(timeCtx); err != nil {
				log.L.Info("server stopping", zap.Error(err))
			}
		}()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c:
			return nil
		}
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.L.Info("server stopping", zap.Error(err))
		return err
	}

	log.L.Info("server stopped")

	return nil
}
