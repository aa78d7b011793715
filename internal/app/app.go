package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/hfsolutions/catalog-backend/internal/cfg"
	v1Http "github.com/hfsolutions/catalog-backend/internal/delivery/v1/http"
	auditInfra "github.com/hfsolutions/catalog-backend/internal/infrastructure/audit"
	imagesInfra "github.com/hfsolutions/catalog-backend/internal/infrastructure/images"
	s3Repo "github.com/hfsolutions/catalog-backend/internal/repository/minio"
	mongoRepo "github.com/hfsolutions/catalog-backend/internal/repository/mongo"
	"github.com/hfsolutions/catalog-backend/internal/repository/pgdb"
	pgdbConv "github.com/hfsolutions/catalog-backend/internal/repository/pgdb/converter"
	"github.com/hfsolutions/catalog-backend/internal/repository/redis"
	redisConv "github.com/hfsolutions/catalog-backend/internal/repository/redis/converter"
	"github.com/hfsolutions/catalog-backend/internal/usecase"
	"github.com/hfsolutions/catalog-backend/pkg/clients"
	"github.com/hfsolutions/catalog-backend/pkg/closer"
	"github.com/hfsolutions/catalog-backend/pkg/e"
	"github.com/hfsolutions/catalog-backend/pkg/logger"
	"github.com/hfsolutions/catalog-backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	shutdownTimeout = 10 * time.Second
	clientInitWait  = 10 * time.Second
)

// App собирает все зависимости приложения и управляет их жизненным циклом.
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	httpSrv *v1Http.Server
	images  *imagesInfra.ImagesInfrastructure
	closer  *closer.Closer

	// cancel останавливает фоновые задачи (компенсационную очистку MinIO)
	cancel context.CancelFunc
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	appCtx, cancel := context.WithCancel(context.Background())
	cl := closer.New(0)

	db, err := initPGDB(log, cfg)
	if err != nil {
		cancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add("postgres pool", func(ctx context.Context) error {
		db.Close()
		return nil
	})

	mongoCtx, mongoCancel := context.WithTimeout(appCtx, clientInitWait)
	mongoClient, err := clients.NewMongoClient(mongoCtx, cfg.Mongo)
	mongoCancel()
	if err != nil {
		cancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add("mongo client", mongoClient.Disconnect)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(appCtx, 5*time.Second)
	err = redisClient.Ping(redisCtx)
	redisCancel()
	if err != nil {
		cancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add("redis client", func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		cancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, minioCancel := context.WithTimeout(appCtx, clientInitWait)
	err = clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName)
	minioCancel()
	if err != nil {
		cancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	productRepo := pgdb.NewProductRepo(db.Pool, pgdbConv.NewProductConverterImpl())
	categoryRepo := pgdb.NewCategoryRepo(db.Pool, pgdbConv.NewCategoryConverterImpl())
	auditRepo := mongoRepo.NewAuditRepo(mongoClient, cfg.Mongo)
	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)
	cacheRepo := redis.NewCacheRepo(redisClient, redisConv.NewProductConverterImpl(), cfg.Redis, log)

	publisher := auditInfra.NewListener(auditRepo, log)
	images := imagesInfra.NewImagesInfrastructure(imageRepo, cfg.Minio, log, appCtx)

	productUC := usecase.NewProductUC(productRepo, categoryRepo, db.Pool, publisher, cacheRepo, images, log)
	categoryUC := usecase.NewCategoryUC(categoryRepo, productRepo, db.Pool, log)
	auditUC := usecase.NewAuditUC(auditRepo)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, cfg.Minio.MaxImageSize, log)
	router.Init(productUC, categoryUC, auditUC)

	return &App{
		cfg:     cfg,
		logger:  log,
		httpSrv: v1Http.NewServer(r, cfg.Http),
		images:  images,
		closer:  cl,
		cancel:  cancel,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до сигнала завершения
// или фатальной ошибки сервера.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	a.stop()

	return appErr
}

// stop выполняет корректное завершение: останавливает приём запросов,
// дожидается фоновой очистки и закрывает клиенты в порядке LIFO.
func (a *App) stop() {
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	if err := a.images.WaitForCleanup(shutdownCtx); err != nil {
		a.logger.Warnf("MinIO cleanup error: %v", err)
	} else {
		a.logger.Infof("MinIO cleanup completed")
	}

	a.cancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "resource shutdown error")
	}

	a.logger.Infof("Application shutdown complete")
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
