package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	authdb "github.com/xw1nchester/protech-admin/internal/auth/db"
	authhandler "github.com/xw1nchester/protech-admin/internal/auth/handler"
	jwtauth "github.com/xw1nchester/protech-admin/internal/auth/jwt"
	"github.com/xw1nchester/protech-admin/internal/auth/password"
	authservice "github.com/xw1nchester/protech-admin/internal/auth/service"
	branddb "github.com/xw1nchester/protech-admin/internal/catalog/brand/db"
	brandhandler "github.com/xw1nchester/protech-admin/internal/catalog/brand/handler"
	categorydb "github.com/xw1nchester/protech-admin/internal/catalog/category/db"
	categoryhandler "github.com/xw1nchester/protech-admin/internal/catalog/category/handler"
	productdb "github.com/xw1nchester/protech-admin/internal/catalog/product/db"
	producthandler "github.com/xw1nchester/protech-admin/internal/catalog/product/handler"
	"github.com/xw1nchester/protech-admin/internal/config"
	editorhandler "github.com/xw1nchester/protech-admin/internal/editorupload/handler"
	enquirydb "github.com/xw1nchester/protech-admin/internal/enquiry/db"
	"github.com/xw1nchester/protech-admin/internal/enquiry/feed"
	enquiryhandler "github.com/xw1nchester/protech-admin/internal/enquiry/handler"
	"github.com/xw1nchester/protech-admin/internal/filemanager/storage"
	"github.com/xw1nchester/protech-admin/internal/handlers"
	notificationhandler "github.com/xw1nchester/protech-admin/internal/notification/handler"
	"github.com/xw1nchester/protech-admin/internal/realtime"
	"github.com/xw1nchester/protech-admin/internal/workspace"
	minioclient "github.com/xw1nchester/protech-admin/pkg/client/minio"
	pgclient "github.com/xw1nchester/protech-admin/pkg/client/postgresql"
	pgtx "github.com/xw1nchester/protech-admin/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

const listenerRetryDelay = 5 * time.Second

type closer interface {
	Close()
}

type App struct {
	HTTPServer *http.Server

	pgClient     *pgxpool.Pool
	listener     *realtime.Listener
	registry     *workspace.Registry
	authService  closer
	stopListener context.CancelFunc
	listenerDone chan struct{}
	log          *zap.Logger
}

func NewApp(log *zap.Logger, cfg config.Config) *App {
	ctx := context.Background()

	pgClient, err := pgclient.NewClient(
		ctx,
		pgclient.Config{
			Username: cfg.PostgreSQL.Username,
			Password: cfg.PostgreSQL.Password,
			Host:     cfg.PostgreSQL.Host,
			Port:     cfg.PostgreSQL.Port,
			Database: cfg.PostgreSQL.Database,
		},
	)
	if err != nil {
		log.Fatal(err.Error())
	}

	minioClient, err := minioclient.New(minioclient.Config{
		Endpoint:        cfg.Minio.Endpoint,
		AccessKeyID:     cfg.Minio.AccessKeyID,
		SecretAccessKey: cfg.Minio.SecretAccessKey,
		UseSSL:          cfg.Minio.UseSSL,
	})
	if err != nil {
		log.Fatal(err.Error())
	}

	if err := minioclient.EnsureBuckets(ctx, minioClient, cfg.Minio.Buckets.All()...); err != nil {
		log.Fatal(err.Error())
	}

	txManager := pgtx.NewPgManager(pgClient)

	tokenManager := jwtauth.NewManager(cfg.JWT)

	authService := authservice.NewService(
		authdb.NewRepository(pgClient, log),
		tokenManager,
		password.New(log),
		log,
	)

	listener := realtime.New(realtime.PoolConnector(pgClient), log, cfg.PostgreSQL.EnquiryChannel)

	registry := workspace.NewRegistry(
		workspace.Deps{
			Brands:     branddb.New(pgClient, log),
			Categories: categorydb.New(pgClient, log),
			Products:   productdb.New(pgClient, log),
			Enquiries:  enquirydb.New(pgClient, log),
			Feed:       feed.New(listener, cfg.PostgreSQL.EnquiryChannel, log),
			Storage:    storage.New(minioClient, cfg.Minio.PublicURL, log),
			Auth:       authService,
			TxManager:  txManager,
			Buckets:    cfg.Minio.Buckets,
			Config:     cfg.Workspace,
		},
		log,
	)

	jwtMiddleware := jwtauth.NewMiddleware(log, tokenManager)

	authMiddleware := func(next http.Handler) http.Handler {
		return jwtMiddleware(registry.Middleware(next))
	}

	maxUploadSize := cfg.HTTPServer.MaxUploadSize

	router := chi.NewRouter()

	router.Use(
		LoggingMiddleware(log),
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.HTTPServer.AllowedOrigins,
			AllowedMethods:   cfg.HTTPServer.AllowedMethods,
			AllowedHeaders:   cfg.HTTPServer.AllowedHeaders,
			AllowCredentials: cfg.HTTPServer.AllowCredentials,
		}),
		middleware.Recoverer,
	)

	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", PingHandler)

		routes := []struct {
			name    string
			handler handlers.Handler
		}{
			{"auth", authhandler.New(registry, authMiddleware, log)},
			{"brand", brandhandler.New(workspace.Brands, workspace.Confirm, authMiddleware, maxUploadSize, log)},
			{"category", categoryhandler.New(workspace.Categories, workspace.Confirm, authMiddleware, maxUploadSize, log)},
			{"product", producthandler.New(workspace.Products, workspace.Confirm, authMiddleware, maxUploadSize, log)},
			{"enquiry", enquiryhandler.New(workspace.Enquiries, authMiddleware, log)},
			{"notification", notificationhandler.New(workspace.Notifications, authMiddleware, log)},
			{"editor upload", editorhandler.New(workspace.Editor, authMiddleware, maxUploadSize, log)},
		}

		for _, route := range routes {
			log.Info("register " + route.name + " handlers")

			route.handler.Register(r)
		}
	})

	srv := &http.Server{
		Addr:        cfg.HTTPServer.Address,
		Handler:     router,
		ReadTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout: cfg.HTTPServer.IdleTimeout,
	}

	listenerCtx, stopListener := context.WithCancel(ctx)

	a := &App{
		HTTPServer:   srv,
		pgClient:     pgClient,
		listener:     listener,
		registry:     registry,
		authService:  authService,
		stopListener: stopListener,
		listenerDone: make(chan struct{}),
		log:          log,
	}

	go a.listen(listenerCtx)

	return a
}

// listen keeps the enquiry listener connected until ctx ends.
func (a *App) listen(ctx context.Context) {
	defer close(a.listenerDone)

	for {
		err := a.listener.Run(ctx)
		if ctx.Err() != nil {
			return
		}

		a.log.Error("notification listener stopped, reconnecting", zap.Error(err))

		select {
		case <-ctx.Done():
			return
		case <-time.After(listenerRetryDelay):
		}
	}
}

func (a *App) MustRun() {
	if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic("failed to start server")
	}
}

// Shutdown stops the server, closes every workspace and releases the pool.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.HTTPServer.Shutdown(ctx)

	a.registry.Close()
	a.authService.Close()

	a.stopListener()
	<-a.listenerDone
	a.listener.Close()

	a.pgClient.Close()

	return err
}

func LoggingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.String("remote", r.RemoteAddr),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

// @Tags		other
// @Success	200		{string}	string
// @Failure	400,500	{object}	apperror.AppError
// @Router		/ping [get]
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}
