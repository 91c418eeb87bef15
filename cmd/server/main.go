package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrcieu/epigraphdb-go/internal/pleiotropy"
	"github.com/mrcieu/epigraphdb-go/pkg/config"
	"github.com/mrcieu/epigraphdb-go/pkg/epigraphdb"
	"github.com/mrcieu/epigraphdb-go/pkg/logger"
)

func main() {
	// Initialize logger
	if err := logger.Init(os.Getenv("ENV")); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting HTTP API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize dependencies
	client := epigraphdb.NewClientWithOptions(cfg.APIURL, cfg.HTTPTimeout, cfg.MaxRetries)
	analyzer := pleiotropy.NewAnalyzer(client)

	// Setup Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(ginLogger(log))
	router.Use(gin.Recovery())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api")
	{
		// MR evidence between traits
		api.GET("/mr", func(c *gin.Context) {
			exposure := c.Query("exposure_trait")
			outcome := c.Query("outcome_trait")
			threshold := queryFloat(c, "pval_threshold", cfg.PvalThreshold)

			if exposure == "" && outcome == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "exposure_trait or outcome_trait is required"})
				return
			}

			rows, err := client.MR(c.Request.Context(), exposure, outcome, threshold)
			if err != nil {
				log.Error("Failed to fetch MR results", zap.Error(err))
				c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch MR results"})
				return
			}

			c.JSON(http.StatusOK, gin.H{"results": rows})
		})

		// pQTL MR evidence
		api.GET("/pqtl", func(c *gin.Context) {
			query := c.Query("query")
			if query == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
				return
			}
			rtype := c.DefaultQuery("rtype", "simple")
			threshold := queryFloat(c, "pval_threshold", cfg.PvalThreshold)

			rows, err := client.PQTL(c.Request.Context(), query, epigraphdb.SearchTraits, rtype, threshold)
			if err != nil {
				log.Error("Failed to fetch pQTL results", zap.Error(err))
				c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch pQTL results"})
				return
			}

			c.JSON(http.StatusOK, gin.H{"results": rows})
		})

		// Pleiotropy case study
		api.POST("/pleiotropy", func(c *gin.Context) {
			var req struct {
				Trait         string  `json:"trait" binding:"required"`
				PvalThreshold float64 `json:"pval_threshold"`
			}

			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			report, err := analyzer.Run(c.Request.Context(), pleiotropy.Options{
				Trait:         req.Trait,
				PvalThreshold: req.PvalThreshold,
			})
			if err != nil {
				log.Error("Failed to run pleiotropy analysis", zap.Error(err))
				c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to run analysis"})
				return
			}

			c.JSON(http.StatusOK, report)
		})
	}

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started", zap.String("port", cfg.Port))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}

func queryFloat(c *gin.Context, key string, defaultValue float64) float64 {
	if value := c.Query(key); value != "" {
		var result float64
		if _, err := fmt.Sscanf(value, "%g", &result); err == nil {
			return result
		}
	}
	return defaultValue
}

// ginLogger is a custom logger middleware for Gin
func ginLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		log.Info("HTTP Request",
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
		)
	}
}
