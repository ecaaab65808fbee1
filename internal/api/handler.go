package api

import (
	"net/http"
	"strconv"
	"time"

	"fastfood-order-api/internal/models"
	"fastfood-order-api/internal/service"
	"fastfood-order-api/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// serviceName is the identity reported by the root and health endpoints.
const serviceName = "FastFood Order Management"

// requestIDKey is the Gin context key holding the per-request ID.
const requestIDKey = "request_id"

// Handler contains HTTP handlers
type Handler struct {
	orderService *service.OrderService
	logger       *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(orderService *service.OrderService) *Handler {
	return &Handler{
		orderService: orderService,
		logger:       util.GetLogger(),
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/", h.index)
	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	orders := router.Group("/api/orders")
	{
		orders.POST("/calculate", h.calculateOrder)
		orders.POST("/validate-transition", h.validateTransition)
	}
}

// index lists the available endpoints
func (h *Handler) index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": serviceName,
		"endpoints": []string{
			"GET /health",
			"GET /ready",
			"GET /metrics",
			"POST /api/orders/calculate",
			"POST /api/orders/validate-transition",
		},
	})
}

// healthCheck reports static service identity
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
	})
}

// readinessCheck handles readiness probe requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// calculateOrder handles order total calculation
func (h *Handler) calculateOrder(c *gin.Context) {
	var req service.CalculateOrderRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := h.orderService.CalculateOrder(c.Request.Context(), &req)
	if err != nil {
		h.renderError(c, "Order calculation rejected", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// validateTransition handles status transition checks
func (h *Handler) validateTransition(c *gin.Context) {
	var req service.ValidateTransitionRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := h.orderService.ValidateTransition(c.Request.Context(), &req)
	if err != nil {
		h.renderError(c, "Transition check rejected", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// renderError maps validation errors to 400 and anything unexpected to 500
func (h *Handler) renderError(c *gin.Context, msg string, err error) {
	if models.IsValidationError(err) {
		h.logger.Warn(msg,
			zap.String(requestIDKey, c.GetString(requestIDKey)),
			zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	h.logger.Error(msg,
		zap.String(requestIDKey, c.GetString(requestIDKey)),
		zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}

// requestIDMiddleware tags each request with a correlation ID, honoring
// an incoming X-Request-ID header
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
