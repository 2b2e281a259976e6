package router

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/healthcompanion/api/internal/handler"
	aihandler "github.com/healthcompanion/api/internal/handler/ai"
	authhandler "github.com/healthcompanion/api/internal/handler/auth"
	doctorhandler "github.com/healthcompanion/api/internal/handler/doctor"
	patienthandler "github.com/healthcompanion/api/internal/handler/patient"
	pharmacyhandler "github.com/healthcompanion/api/internal/handler/pharmacy"
	socialhandler "github.com/healthcompanion/api/internal/handler/social"
	"github.com/healthcompanion/api/internal/middleware"
)

type Config struct {
	RateLimit     rate.Limit
	RateBurst     int
	CORSConfig    middleware.CORSConfig
	MetricsPrefix string
	MaxUploadSize int64
}

type Router struct {
	engine    *gin.Engine
	auth      *middleware.AuthMiddleware
	authH     *authhandler.Handler
	patientH  *patienthandler.Handler
	doctorH   *doctorhandler.Handler
	pharmacyH *pharmacyhandler.Handler
	socialH   *socialhandler.Handler
	aiH       *aihandler.Handler
	h         *handler.Handler
	metrics   *routerMetrics
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

func NewRouter(
	auth *middleware.AuthMiddleware,
	authH *authhandler.Handler,
	patientH *patienthandler.Handler,
	doctorH *doctorhandler.Handler,
	pharmacyH *pharmacyhandler.Handler,
	socialH *socialhandler.Handler,
	aiH *aihandler.Handler,
	h *handler.Handler,
	logger zerolog.Logger,
	config Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	metrics := initRouterMetrics(config.MetricsPrefix)

	r := &Router{
		engine:    engine,
		auth:      auth,
		authH:     authH,
		patientH:  patientH,
		doctorH:   doctorH,
		pharmacyH: pharmacyH,
		socialH:   socialH,
		aiH:       aiH,
		h:         h,
		metrics:   metrics,
	}

	sizeLimits := middleware.DefaultSizeLimitConfig()
	if config.MaxUploadSize > 0 {
		sizeLimits.MaxUploadSize = config.MaxUploadSize
	}
	sizeLimits.UploadPaths = []string{"/api/ai/prescription/analyze"}

	engine.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		r.metricsMiddleware(),
		middleware.Timeout(middleware.DefaultTimeoutConfig()),
		middleware.SizeLimit(sizeLimits),
		middleware.CORS(config.CORSConfig),
	)

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  config.RateLimit,
		Burst: config.RateBurst,
	})
	engine.Use(rateLimiter.RateLimit())

	return r
}

func (r *Router) Setup() {
	r.setupHealthCheck()

	api := r.engine.Group("/api")

	r.authH.RegisterRoutes(api)
	r.patientH.RegisterRoutes(api, r.auth)
	r.doctorH.RegisterRoutes(api, r.auth)
	r.pharmacyH.RegisterRoutes(api, r.auth)
	r.socialH.RegisterRoutes(api, r.auth)
	r.aiH.RegisterRoutes(api, r.auth)
}

func (r *Router) setupHealthCheck() {
	health := r.engine.Group("/health")
	{
		health.GET("", r.h.LivenessCheck)
		health.GET("/live", r.h.LivenessCheck)
		health.GET("/ready", r.h.ReadinessCheck)
	}
	r.engine.GET("/metrics", r.h.MetricsHandler)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func initRouterMetrics(prefix string) *routerMetrics {
	m := &routerMetrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: prefix + "_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_errors_total",
				Help: "Total number of HTTP errors",
			},
			[]string{"method", "path", "type"},
		),
	}

	prometheus.MustRegister(m.requestDuration, m.requestTotal, m.errorTotal)
	return m
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		status := fmt.Sprintf("%d", c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			r.metrics.errorTotal.WithLabelValues(c.Request.Method, path, "http").Inc()
		}
	}
}
