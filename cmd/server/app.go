package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Falokut/healthcheck"
	"github.com/Falokut/tickets_analyzer_service/internal/config"
	"github.com/Falokut/tickets_analyzer_service/internal/events"
	"github.com/Falokut/tickets_analyzer_service/internal/handler"
	"github.com/Falokut/tickets_analyzer_service/internal/models"
	"github.com/Falokut/tickets_analyzer_service/internal/repository"
	"github.com/Falokut/tickets_analyzer_service/internal/repository/filerepository"
	"github.com/Falokut/tickets_analyzer_service/internal/repository/mongorepository"
	"github.com/Falokut/tickets_analyzer_service/internal/repository/redisrepository"
	"github.com/Falokut/tickets_analyzer_service/internal/service"
	jaegerTracer "github.com/Falokut/tickets_analyzer_service/pkg/jaeger"
	"github.com/Falokut/tickets_analyzer_service/pkg/logging"
	"github.com/Falokut/tickets_analyzer_service/pkg/metrics"
	"github.com/opentracing/opentracing-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logging.NewEntry(logging.ConsoleOutput)
	logger := logging.GetLogger()
	cfg := config.GetConfig()

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatal(err)
	}
	logger.Logger.SetLevel(logLevel)

	tracer, closer, err := jaegerTracer.InitJaeger(cfg.JaegerConfig)
	if err != nil {
		logger.Errorf("Shutting down, error while creating tracer %v", err)
		return
	}
	logger.Info("Jaeger connected")
	defer closer.Close()
	opentracing.SetGlobalTracer(tracer)

	logger.Info("Metrics initializing")
	metric, err := metrics.CreateMetrics(cfg.PrometheusConfig.Name)
	if err != nil {
		logger.Errorf("Shutting down, error while creating metrics %v", err)
		return
	}

	shutdown := make(chan error, 1)
	go func() {
		logger.Info("Metrics server running")
		if err := metrics.RunMetricServer(cfg.PrometheusConfig.ServerConfig); err != nil {
			logger.Errorf("Shutting down, error while running metrics server %v", err)
			shutdown <- err
			return
		}
	}()

	ticketsSource, closeSource, err := newTicketsSource(cfg, logger.Logger)
	if err != nil {
		logger.Errorf("Shutting down, tickets source not available %v", err)
		return
	}
	defer closeSource()

	go func() {
		logger.Info("Healthcheck initializing")
		healthcheckManager := healthcheck.NewHealthManager(logger.Logger,
			[]healthcheck.HealthcheckResource{ticketsSource}, cfg.HealthcheckPort, nil)
		if err := healthcheckManager.RunHealthcheckEndpoint(); err != nil {
			logger.Errorf("Shutting down, error while running healthcheck endpoint %s", err.Error())
			shutdown <- err
			return
		}
	}()

	var analysisEvents events.AnalysisEventsMQ = events.NewNopAnalysisEvents()
	if len(cfg.AnalysisEventsConfig.Brokers) > 0 {
		kafkaEvents := events.NewAnalysisEvents(events.KafkaConfig{
			Brokers: cfg.AnalysisEventsConfig.Brokers,
			Topic:   cfg.AnalysisEventsConfig.Topic,
		}, logger.Logger)
		defer kafkaEvents.Shutdown()
		analysisEvents = kafkaEvents
	}

	route := models.Route{
		Origin:      cfg.Route.Origin,
		Destination: cfg.Route.Destination,
	}
	service := service.NewTicketsAnalyzerService(logger.Logger,
		ticketsSource,
		route,
		analysisEvents,
		metric,
	)

	h := handler.NewTicketsAnalyzerHandler(logger.Logger, service)
	logger.Info("Server initializing")
	e := handler.NewRouter(logger.Logger, h, metric)
	go func() {
		addr := net.JoinHostPort(cfg.Listen.Host, cfg.Listen.Port)
		logger.Infof("Server listening on %s", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("Shutting down, error while running server %s", err.Error())
			shutdown <- err
			return
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGHUP, syscall.SIGTERM, os.Interrupt)

	select {
	case <-quit:
		break
	case <-shutdown:
		break
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Errorf("error while shutting down server %v", err)
	}
}

var supportedSources = []repository.SourceType{
	repository.FileSource,
	repository.MongoSource,
	repository.RedisSource,
}

func newTicketsSource(cfg *config.Config, logger *logrus.Logger) (repository.TicketsSource, func(), error) {
	sourceCfg := cfg.TicketsSource
	switch strings.ToUpper(sourceCfg.Type) {
	case repository.FileSource:
		return filerepository.NewTicketsFile(logger, sourceCfg.FilePath), func() {}, nil
	case repository.MongoSource:
		db, err := mongorepository.NewMongoDB(sourceCfg.Mongo.ConnectionString)
		if err != nil {
			return nil, nil, fmt.Errorf("connection to the database not established %w", err)
		}
		repo := mongorepository.NewTicketsRepository(logger, db,
			sourceCfg.Mongo.DBName, sourceCfg.Mongo.Collection)
		return repo, func() { db.Disconnect(context.Background()) }, nil
	case repository.RedisSource:
		rdb, err := redisrepository.NewRedisClient(&redis.Options{
			Network:  sourceCfg.Redis.Network,
			Addr:     sourceCfg.Redis.Addr,
			Password: sourceCfg.Redis.Password,
			DB:       sourceCfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("connection to the tickets redis not established %w", err)
		}
		repo := redisrepository.NewTicketsRepository(rdb, logger, sourceCfg.Redis.Key)
		return repo, func() { rdb.Close() }, nil
	}

	return nil, nil, fmt.Errorf("unknown tickets source type %q, supported: %v",
		sourceCfg.Type, supportedSources)
}
