package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Decentr-net/logrus/sentry"

	"github.com/Decentr-net/socialdistribution/internal/auth"
	"github.com/Decentr-net/socialdistribution/internal/consumer/nodes"
	"github.com/Decentr-net/socialdistribution/internal/events"
	"github.com/Decentr-net/socialdistribution/internal/federation"
	"github.com/Decentr-net/socialdistribution/internal/health"
	"github.com/Decentr-net/socialdistribution/internal/server"
	"github.com/Decentr-net/socialdistribution/internal/service/impl"
	"github.com/Decentr-net/socialdistribution/internal/storage/postgres"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Host           string        `long:"http.host" env:"HTTP_HOST" default:"0.0.0.0" description:"IP to listen on"`
	Port           int           `long:"http.port" env:"HTTP_PORT" default:"8080" description:"port to listen on for insecure connections"`
	RequestTimeout time.Duration `long:"http.request-timeout" env:"HTTP_REQUEST_TIMEOUT" default:"45s" description:"request processing timeout"`
	CacheTTL       time.Duration `long:"http.cache-ttl" env:"HTTP_CACHE_TTL" default:"1m" description:"ttl of cached responses"`

	PublicHost string `long:"public.host" env:"PUBLIC_HOST" default:"127.0.0.1:8080" description:"host written into local authors"`
	PublicURL  string `long:"public.url" env:"PUBLIC_URL" default:"http://127.0.0.1:8080/api" description:"public api url, authors' urls are built from it"`

	Postgres                   string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	PostgresMaxOpenConnections int    `long:"postgres.max_open_connections" env:"POSTGRES_MAX_OPEN_CONNECTIONS" default:"0" description:"postgres maximal open connections count, 0 means unlimited"`
	PostgresMaxIdleConnections int    `long:"postgres.max_idle_connections" env:"POSTGRES_MAX_IDLE_CONNECTIONS" default:"5" description:"postgres maximal idle connections count"`
	PostgresMigrations         string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`

	JWTSecret    string        `long:"jwt.secret" env:"JWT_SECRET" required:"true" description:"secret used to sign bearer tokens"`
	JWTTTL       time.Duration `long:"jwt.ttl" env:"JWT_TTL" default:"24h" description:"bearer token lifetime"`
	AutoActivate bool          `long:"auto-activate" env:"AUTO_ACTIVATE" description:"activate users right after signup"`

	FederationTimeout time.Duration `long:"federation.timeout" env:"FEDERATION_TIMEOUT" default:"10s" description:"timeout for requests to remote nodes"`
	NodesSyncInterval time.Duration `long:"federation.sync-interval" env:"FEDERATION_SYNC_INTERVAL" default:"5m" description:"interval between remote authors syncs"`

	KafkaBrokers   string `long:"kafka.brokers" env:"KAFKA_BROKERS" description:"comma separated kafka brokers, events are not published when empty"`
	KafkaTopic     string `long:"kafka.topic" env:"KAFKA_TOPIC" default:"socialdistribution.events" description:"kafka topic for activity events"`
	KafkaQueueSize int    `long:"kafka.queue-size" env:"KAFKA_QUEUE_SIZE" default:"1024" description:"max events waiting for kafka, new events are dropped when full"`

	LogLevel  string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
	SentryDSN string `long:"sentry.dsn" env:"SENTRY_DSN" description:"sentry dsn"`
}{}

var errTerminated = errors.New("terminated")

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Socialdistribution"
	parser.LongDescription = "Socialdistribution node: authors, posts, follows and federation"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)

	if opts.SentryDSN != "" {
		hook, err := sentry.NewHook(sentry.Options{
			Dsn:              opts.SentryDSN,
			AttachStacktrace: true,
			Release:          health.GetVersion(),
		}, logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel)

		if err != nil {
			logrus.WithError(err).Fatal("failed to init sentry")
		}

		logrus.AddHook(hook)
	} else {
		logrus.Info("empty sentry dsn")
		logrus.Warn("skip sentry initialization")
	}

	db := mustGetDB()
	defer db.Close()

	s := postgres.New(db)
	fed := federation.New(opts.FederationTimeout)
	pub := mustGetPublisher()
	defer func() {
		if err := pub.Close(); err != nil {
			logrus.WithError(err).Error("failed to close events publisher")
		}
	}()

	svc := impl.New(s, fed, pub, impl.Config{
		Host:         opts.PublicHost,
		BaseURL:      opts.PublicURL,
		AutoActivate: opts.AutoActivate,
	})
	c := nodes.New(s, fed, opts.NodesSyncInterval)

	r := chi.NewMux()
	server.SetupRouter(svc, auth.NewTokens(opts.JWTSecret, opts.JWTTTL), r, opts.RequestTimeout, opts.CacheTTL)
	r.Get("/health", health.Handler(
		5*time.Second,
		health.SubjectPinger("postgres", s.Ping),
		c,
	))
	r.Handle("/metrics", promhttp.Handler())

	srv := http.Server{
		Addr:    fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler: r,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gr, _ := errgroup.WithContext(ctx)
	gr.Go(func() error {
		return c.Run(ctx)
	})
	gr.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	gr.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

		s := <-sigs

		logrus.Infof("terminating by %s signal", s)

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), opts.RequestTimeout)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("failed to gracefully shutdown server")
		}

		return errTerminated
	})

	logrus.Info("service started")

	if err := gr.Wait(); err != nil && !errors.Is(err, errTerminated) {
		logrus.WithError(err).Fatal("service unexpectedly closed")
	}
}

func mustGetPublisher() events.Publisher {
	if opts.KafkaBrokers == "" {
		logrus.Warn("empty kafka brokers, events won't be published")
		return events.NewNoopPublisher()
	}

	return events.NewKafkaPublisher(events.KafkaConfig{
		Brokers:   strings.Split(opts.KafkaBrokers, ","),
		Topic:     opts.KafkaTopic,
		QueueSize: opts.KafkaQueueSize,
	})
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}
	db.SetMaxOpenConns(opts.PostgresMaxOpenConnections)
	db.SetMaxIdleConns(opts.PostgresMaxIdleConnections)

	if err := db.PingContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	driver, err := migratep.WithInstance(db, &migratep.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create database migrate driver")
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", opts.PostgresMigrations), "postgres", driver)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}

	switch v, d, err := migrator.Version(); err {
	case nil:
		logrus.Infof("database version %d with dirty state %t", v, d)
	case migrate.ErrNilVersion:
		logrus.Info("database version: nil")
	default:
		logrus.WithError(err).Fatal("failed to get version")
	}

	switch err := migrator.Up(); err {
	case nil:
		logrus.Info("database was migrated")
	case migrate.ErrNoChange:
		logrus.Info("database is up-to-date")
	default:
		logrus.WithError(err).Fatal("failed to migrate db")
	}

	return db
}
