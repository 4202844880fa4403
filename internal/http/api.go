package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"records-api/internal/domain"
	"records-api/internal/repository"
	"records-api/internal/service"
)

const (
	internalErrorDetail = "Internal Server Error"
	userNotFound        = "User not found."
	productNotFound     = "Product not found."
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler wires HTTP routes to domain services.
type Handler struct {
	sessions repository.SessionFactory
	health   Pinger
	users    service.UserService
	products service.ProductService
	logger   *logrus.Logger
}

func NewHandler(sessions repository.SessionFactory, health Pinger, users service.UserService, products service.ProductService, logger *logrus.Logger) *Handler {
	return &Handler{
		sessions: sessions,
		health:   health,
		users:    users,
		products: products,
		logger:   logger,
	}
}

// NewRouter returns a gin engine with recovery, request ids, access logging
// and every route registered.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(requestID(), requestLogger(h.logger), recovery(h.logger))
	h.RegisterRoutes(router)
	return router
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.healthCheck)

	records := router.Group("/", sessionScope(h.sessions, h.logger))
	{
		records.POST("/user/cadaster/", h.createUser)
		records.GET("/user/:id/", h.getUser)
		records.DELETE("/user/delete/:id/", h.deleteUser)

		records.POST("/product/create/", h.createProduct)
		records.GET("/product/:id/", h.getProduct)
		records.DELETE("/product/delete/:id/", h.deleteProduct)
	}
}

// Request bodies deliberately have no id field: identity is always store-assigned.
type userRequest struct {
	Name     *string `json:"name" binding:"required"`
	Age      *laxInt `json:"age" binding:"required"`
	Password *string `json:"password" binding:"required"`
}

type productRequest struct {
	Name  *string `json:"name" binding:"required"`
	Price *laxInt `json:"price" binding:"required"`
	Obs   *string `json:"obs"`
}

type UserResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Age      int64  `json:"age"`
	Password string `json:"password"`
}

type ProductResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price int64   `json:"price"`
	Obs   *string `json:"obs"`
}

func (h *Handler) healthCheck(c *gin.Context) {
	if err := h.health.Ping(c.Request.Context()); err != nil {
		h.logger.WithError(err).Warn("health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) createUser(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	user, err := h.users.Create(c.Request.Context(), sessionFrom(c), &domain.User{
		Name:     *req.Name,
		Age:      int64(*req.Age),
		Password: *req.Password,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, userToResponse(*user))
}

func (h *Handler) getUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.users.Get(c.Request.Context(), sessionFrom(c), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, userToResponse(*user))
}

func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.users.Delete(c.Request.Context(), sessionFrom(c), id); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) createProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	product, err := h.products.Create(c.Request.Context(), sessionFrom(c), &domain.Product{
		Name:  *req.Name,
		Price: int64(*req.Price),
		Obs:   req.Obs,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, productToResponse(*product))
}

func (h *Handler) getProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	product, err := h.products.Get(c.Request.Context(), sessionFrom(c), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, productToResponse(*product))
}

func (h *Handler) deleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.products.Delete(c.Request.Context(), sessionFrom(c), id); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// fail maps service errors onto responses. Anything that is not a known
// not-found is a store failure and is reported without driver detail.
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": userNotFound})
	case errors.Is(err, service.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": productNotFound})
	default:
		h.logger.WithError(err).WithFields(logrus.Fields{
			"request_id": c.GetString(requestIDKey),
			"path":       c.FullPath(),
		}).Error("store operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": internalErrorDetail})
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "id must be an integer"})
		return 0, false
	}
	return id, true
}

func userToResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Age:      user.Age,
		Password: user.Password,
	}
}

func productToResponse(product domain.Product) ProductResponse {
	return ProductResponse{
		ID:    product.ID,
		Name:  product.Name,
		Price: product.Price,
		Obs:   product.Obs,
	}
}
