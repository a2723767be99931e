// JiWei 机位分配引擎服务
// 主程序入口

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jiwei/jiwei/internal/config"
	"github.com/jiwei/jiwei/internal/database"
	"github.com/jiwei/jiwei/internal/handler"
	"github.com/jiwei/jiwei/internal/metrics"
	"github.com/jiwei/jiwei/internal/repository"
	"github.com/jiwei/jiwei/pkg/logger"
	"github.com/jiwei/jiwei/pkg/solver"
	"github.com/joho/godotenv"
)

// 构建信息（通过 ldflags 注入）
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// 加载 .env（不存在则忽略）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 初始化日志
	logger.Init(logger.Config{
		Level:  cfg.App.LogLevel,
		Format: "console",
	})

	// 打印版本信息
	fmt.Printf("JiWei 机位分配引擎 v%s\n", Version)
	fmt.Printf("Build: %s (%s)\n", BuildTime, GitCommit)
	fmt.Println()

	// 可选的数据库连接（仅在启用时装载问题数据）
	var db *database.DB
	var store *repository.ProblemStore
	if cfg.Database.Enabled {
		db, err = database.New(&cfg.Database)
		if err != nil {
			logger.Fatal().Err(err).Msg("数据库连接失败")
		}
		defer db.Close()
		store = repository.NewProblemStore(db)
	}

	// 创建处理器
	allocateHandler := handler.NewAllocateHandler(solver.NewBacktrackSolver(), store, cfg.Solver.DefaultTimeout)
	statsHandler := handler.NewStatsHandler()

	// 创建 HTTP 服务器
	mux := http.NewServeMux()

	// ========================================
	// 系统端点
	// ========================================

	// 健康检查端点
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			stats := db.Stats()
			metrics.SetDBConnections("open", stats.OpenConnections)
			metrics.SetDBConnections("idle", stats.Idle)
			metrics.SetDBConnections("in_use", stats.InUse)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"jiwei"}`))
	})

	// 版本信息端点
	mux.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"version":"%s","build_time":"%s","git_commit":"%s"}`, Version, BuildTime, GitCommit)
	})

	// ========================================
	// API v1 端点
	// ========================================

	// API 根路由
	mux.HandleFunc("/api/v1/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"message": "JiWei 机位分配引擎 API v1",
			"endpoints": {
				"allocation": {
					"solve": "POST /api/v1/allocation/solve",
					"solve_stored": "POST /api/v1/allocation/solve-stored",
					"validate": "POST /api/v1/allocation/validate"
				},
				"rules": {
					"templates": "GET /api/v1/rules/templates"
				},
				"stats": {
					"utilization": "POST /api/v1/stats/utilization"
				}
			}
		}`))
	})

	// 机位分配求解 API
	mux.HandleFunc("/api/v1/allocation/solve", allocateHandler.Solve)

	// 数据库问题求解 API
	mux.HandleFunc("/api/v1/allocation/solve-stored", allocateHandler.SolveStored)

	// 方案校验 API
	mux.HandleFunc("/api/v1/allocation/validate", allocateHandler.Validate)

	// 相邻规则模板 API
	mux.HandleFunc("/api/v1/rules/templates", handler.RuleTemplates)

	// 利用率统计 API
	mux.HandleFunc("/api/v1/stats/utilization", statsHandler.Utilization)

	// ========================================
	// 监控端点
	// ========================================

	// Prometheus 指标端点
	if cfg.Metrics.Enabled {
		mux.Handle(cfg.Metrics.Path, metrics.Handler())
	}

	// ========================================
	// 中间件
	// ========================================

	// 中间件执行顺序：recovery -> requestID -> rateLimit -> cors -> logging -> handler
	root := recoveryMiddleware(requestIDMiddleware(rateLimitMiddleware(corsMiddleware(loggingMiddleware(mux)))))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      root,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 启动服务器（非阻塞）
	go func() {
		logger.Info().
			Int("port", cfg.App.Port).
			Str("version", Version).
			Str("url", fmt.Sprintf("http://localhost:%d", cfg.App.Port)).
			Str("api_docs", fmt.Sprintf("http://localhost:%d/api/v1/", cfg.App.Port)).
			Msg("服务器启动")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("服务器启动失败")
			os.Exit(1)
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("服务器关闭失败")
		os.Exit(1)
	}

	logger.Info().Msg("服务器已关闭")
}

// recoveryMiddleware 恐慌恢复中间件
func recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error().
					Interface("panic", rec).
					Str("path", r.URL.Path).
					Msg("请求处理恐慌")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]interface{}{
					"error":   true,
					"code":    "INTERNAL_ERROR",
					"message": "内部错误",
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// requestIDMiddleware 请求ID追踪中间件
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set("X-Request-ID", requestID)

		ctx := context.WithValue(r.Context(), logger.RequestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// loggingMiddleware 日志中间件
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// 包装ResponseWriter以捕获状态码
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start)

		logger.WithContext(r.Context()).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rw.statusCode).
			Dur("duration", duration).
			Msg("请求处理")

		metrics.RecordRequestMetrics(r.Method, r.URL.Path, rw.statusCode, duration)
	})
}

// responseWriter 包装ResponseWriter以捕获状态码
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// RateLimiter 简单的令牌桶限流器
type RateLimiter struct {
	tokens     float64
	maxTokens  float64
	refillRate float64 // 每秒添加的令牌数
	lastRefill time.Time
	mu         sync.Mutex
}

// NewRateLimiter 创建限流器
func NewRateLimiter(requestsPerSecond float64) *RateLimiter {
	return &RateLimiter{
		tokens:     requestsPerSecond,
		maxTokens:  requestsPerSecond * 2, // 允许突发流量
		refillRate: requestsPerSecond,
		lastRefill: time.Now(),
	}
}

// Allow 检查是否允许请求
func (rl *RateLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(rl.lastRefill).Seconds()
	rl.tokens += elapsed * rl.refillRate
	if rl.tokens > rl.maxTokens {
		rl.tokens = rl.maxTokens
	}
	rl.lastRefill = now

	if rl.tokens >= 1 {
		rl.tokens--
		return true
	}
	return false
}

var globalRateLimiter = NewRateLimiter(100) // 默认 100 QPS

// rateLimitMiddleware 限流中间件
func rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !globalRateLimiter.Allow() {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"error":   true,
				"code":    "RATE_LIMITED",
				"message": "请求过于频繁，请稍后重试",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// corsMiddleware CORS中间件
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
