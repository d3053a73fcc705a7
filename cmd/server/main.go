package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Yesho700/url-shortner/internal/cache"
	"github.com/Yesho700/url-shortner/internal/config"
	"github.com/Yesho700/url-shortner/internal/kv"
	kvmemory "github.com/Yesho700/url-shortner/internal/kv/memory"
	kvredis "github.com/Yesho700/url-shortner/internal/kv/redis"
	"github.com/Yesho700/url-shortner/internal/ratelimit"
	"github.com/Yesho700/url-shortner/internal/repository/sqlite"
	"github.com/Yesho700/url-shortner/internal/service"
	"github.com/Yesho700/url-shortner/internal/shortener"
	"github.com/Yesho700/url-shortner/internal/transport/client"
	httpTransport "github.com/Yesho700/url-shortner/internal/transport/http"
)

var rootCmd = &cobra.Command{
	Use:   "url-shortner",
	Short: "A URL shortening service written in Go",
	Long:  "A URL shortening service with a SQLite backend, Redis cache-aside layer and IP-based sliding-window rate limiting",
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the URL shortening server",
	RunE:  runServer,
}

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for interacting with the server",
}

var shortenCmd = &cobra.Command{
	Use:   "shorten [URL]",
	Short: "Create a short URL",
	Args:  cobra.ExactArgs(1),
	RunE:  runShorten,
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [SHORT_CODE]",
	Short: "Resolve a short code to its long URL",
	Args:  cobra.ExactArgs(1),
	RunE:  runResolve,
}

var clicksCmd = &cobra.Command{
	Use:   "clicks [SHORT_CODE]",
	Short: "Show the click count for a short code, or the overall total",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runClicks,
}

func init() {
	// A .env file is optional; real environment variables win either way
	_ = godotenv.Load()

	// Server command flags, with environment fallbacks matching the
	// deployment variables (PORT, DB_PATH, REDIS_ADDR, RATE_LIMIT, RATE_WINDOW)
	serverCmd.Flags().StringP("port", "p", envString("PORT", "8080"), "Server port")
	serverCmd.Flags().String("server-url", envString("SERVER_URL", "http://localhost:8080"), "Server URL (for client communication)")
	serverCmd.Flags().String("db-path", envString("DB_PATH", "urls.db"), "Database file path")
	serverCmd.Flags().String("redis-addr", envString("REDIS_ADDR", ""), "Redis address (host:port); empty runs with the in-process store")
	serverCmd.Flags().Duration("cache-ttl", time.Hour, "URL cache entry TTL")
	serverCmd.Flags().Duration("purge-interval", time.Minute, "Expired record purge interval")
	serverCmd.Flags().Int64("rate-limit", envInt64("RATE_LIMIT", 10), "Allowed requests per rate window")
	serverCmd.Flags().Duration("rate-window", time.Duration(envInt64("RATE_WINDOW", 60))*time.Second, "Rate limit window")
	serverCmd.Flags().Int("code-length", 8, "Generated short code length")

	// Logging configuration flags
	serverCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging (HTTP requests/responses)")

	// Client command flags
	clientCmd.PersistentFlags().StringP("server-url", "u", "http://localhost:8080", "Server URL")

	// Add subcommands
	clientCmd.AddCommand(shortenCmd, resolveCmd, clicksCmd)
	rootCmd.AddCommand(serverCmd, clientCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	// Get configuration from CLI flags
	port, _ := cmd.Flags().GetString("port")
	serverURL, _ := cmd.Flags().GetString("server-url")
	dbPath, _ := cmd.Flags().GetString("db-path")
	redisAddr, _ := cmd.Flags().GetString("redis-addr")
	cacheTTL, _ := cmd.Flags().GetDuration("cache-ttl")
	purgeInterval, _ := cmd.Flags().GetDuration("purge-interval")
	rateLimit, _ := cmd.Flags().GetInt64("rate-limit")
	rateWindow, _ := cmd.Flags().GetDuration("rate-window")
	codeLength, _ := cmd.Flags().GetInt("code-length")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := config.New(
		config.ServerConfig{Port: port, ServerURL: serverURL},
		config.DatabaseConfig{Path: dbPath},
		config.RedisConfig{Addr: redisAddr},
		config.CacheConfig{TTL: cacheTTL, PurgeInterval: purgeInterval},
		config.RateLimitConfig{Window: rateWindow, Limit: rateLimit},
		config.LoggingConfig{Verbose: verbose},
		shortener.Config{CodeLength: codeLength},
	)
	if err != nil {
		return fmt.Errorf("failed to create configuration: %w", err)
	}

	log.Printf("Starting URL shortener server with config: port=%s rate=%d/%v", cfg.Server.Port, cfg.RateLimit.Limit, cfg.RateLimit.Window)

	// Initialize database
	repo, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize the key-value store
	var kvStore kv.Store
	if cfg.Redis.Addr != "" {
		kvStore, err = kvredis.New(cfg.Redis.Addr)
		if err != nil {
			return fmt.Errorf("failed to initialize redis: %w", err)
		}
		log.Printf("Using Redis store at %s", cfg.Redis.Addr)
	} else {
		kvStore = kvmemory.New()
		log.Printf("Using in-process key-value store")
	}

	// Initialize shortener generator
	generator, err := shortener.NewGenerator(cfg.Shortener)
	if err != nil {
		return fmt.Errorf("failed to create shortener generator: %w", err)
	}
	log.Printf("Using %s shortener generator", generator.Type())

	// Assemble the service
	urlCache := cache.New(kvStore, cfg.Cache.TTL)
	clicks := service.NewClickRecorder(repo, 1024)
	urlShortener := service.NewURLShortener(repo, urlCache, generator, clicks)
	limiter := ratelimit.New(kvStore, cfg.RateLimit.Window, cfg.RateLimit.Limit)

	defer func() {
		if err := urlShortener.Close(); err != nil {
			log.Printf("Error closing shortener: %v", err)
		}
	}()

	// Start the expired record purge loop
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := repo.StartExpiryPurge(ctx, cfg.Cache.PurgeInterval); err != nil {
		return fmt.Errorf("failed to start expiry purge: %w", err)
	}
	defer func() {
		if err := repo.StopExpiryPurge(); err != nil {
			log.Printf("Error stopping expiry purge: %v", err)
		}
	}()

	// Create and start HTTP server
	server := httpTransport.NewServer(urlShortener, limiter, cfg.Server.Port, cfg.Server.ServerURL, cfg.Logging.Verbose)

	// Set up graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server in a goroutine
	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start()
	}()

	// Wait for shutdown signal or server error
	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-sigChan:
		log.Printf("Received signal %v, shutting down gracefully...", sig)

		// Create shutdown context with timeout
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Shutdown server
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error during server shutdown: %v", err)
		}
	}

	log.Println("Server stopped")
	return nil
}

func runShorten(cmd *cobra.Command, args []string) error {
	serverURL, _ := cmd.Flags().GetString("server-url")
	c := client.NewClient(serverURL)
	commands := client.NewCommands(c)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return commands.Shorten(ctx, args[0])
}

func runResolve(cmd *cobra.Command, args []string) error {
	serverURL, _ := cmd.Flags().GetString("server-url")
	c := client.NewClient(serverURL)
	commands := client.NewCommands(c)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return commands.Resolve(ctx, args[0])
}

func runClicks(cmd *cobra.Command, args []string) error {
	serverURL, _ := cmd.Flags().GetString("server-url")
	c := client.NewClient(serverURL)
	commands := client.NewCommands(c)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if len(args) == 1 {
		return commands.Clicks(ctx, args[0])
	}
	return commands.TotalClicks(ctx)
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Printf("Invalid %s value %q, using %d", key, value, fallback)
		return fallback
	}
	return parsed
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
