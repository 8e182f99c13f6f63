package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"dispatch/cmd"
	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/geo"
	"dispatch/internal/adapters/out/kafka"
	"dispatch/internal/adapters/out/postgres/courierrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const routeCacheTTL = 15 * time.Minute

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs(logger)

	gormDB := mustOpenDatabase(configs, logger)

	base, err := kernel.NewPoint(
		mustParseFloat(configs.BaseLat, "BASE_LAT", logger),
		mustParseFloat(configs.BaseLon, "BASE_LON", logger),
	)
	if err != nil {
		logger.Error("Invalid dispatch base coordinates", "error", err)
		os.Exit(1)
	}

	routePlanner := buildRoutePlanner(configs, logger)
	notifier := buildNotifier(configs, logger)

	root := cmd.NewCompositionRoot(gormDB, routePlanner, notifier, base, logger)

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(root.CreateHTTPServer(), configs.HTTPPort)
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("No .env file found, relying on environment variables")
	}

	return cmd.Config{
		HTTPPort:               os.Getenv("HTTP_PORT"),
		DBHost:                 os.Getenv("DB_HOST"),
		DBPort:                 os.Getenv("DB_PORT"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              os.Getenv("DB_SSLMODE"),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		GeoServiceURL:          os.Getenv("GEO_SERVICE_URL"),
		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: os.Getenv("KAFKA_ORDER_CHANGED_TOPIC"),
		BaseLat:                os.Getenv("BASE_LAT"),
		BaseLon:                os.Getenv("BASE_LON"),
	}
}

func mustOpenDatabase(configs cmd.Config, logger *slog.Logger) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &courierrepo.CourierDTO{}); err != nil {
		logger.Error("Failed to migrate database schema", "error", err)
		os.Exit(1)
	}

	return gormDB
}

func mustParseFloat(value, name string, logger *slog.Logger) float64 {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logger.Error("Invalid numeric configuration value", "name", name, "value", value)
		os.Exit(1)
	}
	return parsed
}

func buildRoutePlanner(configs cmd.Config, logger *slog.Logger) ports.RoutePlanner {
	var cache ports.RouteCache
	if configs.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
		cache = geo.NewRedisRouteCache(client, routeCacheTTL)
	} else {
		logger.Info("REDIS_ADDR not set, route caching disabled")
	}

	return geo.NewPlanner(geo.NewHTTPRoutePlanner(configs.GeoServiceURL), cache, logger)
}

func buildNotifier(configs cmd.Config, logger *slog.Logger) ports.OrderChangeNotifier {
	if configs.KafkaHost == "" {
		logger.Info("KAFKA_HOST not set, order change notifications disabled")
		return nil
	}

	notifier, err := kafka.NewOrderChangedNotifier(
		strings.Split(configs.KafkaHost, ","),
		configs.KafkaOrderChangedTopic,
	)
	if err != nil {
		logger.Error("Failed to connect to Kafka, order change notifications disabled", "error", err)
		return nil
	}

	return notifier
}

func startWebServer(server *httpin.Server, port string) {
	e := echo.New()
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
