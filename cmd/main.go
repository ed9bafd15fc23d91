package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ecofinds/marketplace/internal/cache"
	"github.com/ecofinds/marketplace/internal/catalog"
	h "github.com/ecofinds/marketplace/internal/http"
	"github.com/ecofinds/marketplace/internal/publisher"
	"github.com/ecofinds/marketplace/internal/session"
	"github.com/ecofinds/marketplace/internal/store"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Config struct {
	HTTPPort        string
	RedisAddr       string
	RedisPassword   string
	KafkaBrokers    []string
	KafkaTopic      string
	CORSOrigins     []string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	Session         session.Config
}

func loadConfig() *Config {
	defaults := session.DefaultConfig()
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		KafkaBrokers:    splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaTopic:      getEnv("KAFKA_TOPIC", "marketplace-events"),
		CORSOrigins:     splitList(getEnv("CORS_ORIGINS", "*")),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		Session: session.Config{
			LoginDelay:      getDuration("LOGIN_DELAY", defaults.LoginDelay),
			ListingDelay:    getDuration("LISTING_DELAY", defaults.ListingDelay),
			DescribeDelay:   getDuration("DESCRIBE_DELAY", defaults.DescribeDelay),
			CartRevealDelay: getDuration("CART_REVEAL_DELAY", defaults.CartRevealDelay),
			ReplyDelay:      getDuration("REPLY_DELAY", defaults.ReplyDelay),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("invalid %s=%q, using %s: %v", key, value, defaultValue, err)
		return defaultValue
	}
	return d
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func main() {
	_ = godotenv.Load()
	cfg := loadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st := store.NewMemoryStore(store.InitialState())

	// Feed cache
	var feedCache cache.FeedCache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatal("Redis connection failed:", err)
		}
		log.Printf("Redis ping succeeded")
		feedCache = cache.NewRedisCache(redisClient)
	} else {
		log.Printf("REDIS_ADDR not set, using in-memory feed cache")
		feedCache = cache.NewMemoryCache(cache.DefaultTTL)
	}

	// Event outbox
	var writer publisher.Writer = publisher.LogWriter{}
	if len(cfg.KafkaBrokers) > 0 {
		writer = publisher.NewKafkaWriter(cfg.KafkaTopic, cfg.KafkaBrokers...)
		log.Printf("publishing events to %s on %v", cfg.KafkaTopic, cfg.KafkaBrokers)
	} else {
		log.Printf("KAFKA_BROKERS not set, logging events")
	}
	outbox := publisher.NewOutbox()
	unsubscribe := st.Subscribe(outbox.Record)
	defer unsubscribe()

	poller := publisher.NewOutboxPoller(outbox, writer)
	pollerDone := make(chan struct{})
	go func() {
		defer close(pollerDone)
		poller.Run(ctx)
	}()

	sess := session.New(st, cfg.Session)
	router := h.NewRouter(h.RouterConfig{
		Session:        sess,
		Catalog:        catalog.NewService(st, feedCache),
		SessionConfig:  cfg.Session,
		RequestTimeout: cfg.RequestTimeout,
	})

	handler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}).Handler(router)

	srv := &http.Server{
		Addr:        ":" + cfg.HTTPPort,
		Handler:     otelhttp.NewHandler(handler, "marketplace"),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		log.Printf("Marketplace starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server forced to shutdown: %v", err)
	}
	if err := sess.Close(); err != nil {
		log.Printf("failed to close session: %v", err)
	}
	<-pollerDone
	if err := poller.Close(); err != nil {
		log.Printf("failed to close event writer: %v", err)
	}

	log.Println("server exited")
}
