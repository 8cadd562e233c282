package api

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"velvetleash/server/internal/models"
)

type Handler struct {
	sitters       SitterService
	boarding      BoardingService
	pets          PetService
	users         UserService
	locations     LocationService
	notifications NotificationService
	health        HealthChecker
	logger        *logrus.Logger
}

func NewHandler(services Services, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		sitters:       services.Sitters,
		boarding:      services.Boarding,
		pets:          services.Pets,
		users:         services.Users,
		locations:     services.Locations,
		notifications: services.Notifications,
		health:        services.Health,
		logger:        logger,
	}
}

func (h *Handler) Health(c *gin.Context) {
	if h.health != nil {
		if err := h.health.Ping(c.Request.Context()); err != nil {
			h.logger.WithError(err).Error("Health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func okMessage(c *gin.Context, message string, data interface{}) {
	body := gin.H{"success": true, "message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(http.StatusOK, body)
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// respondError maps domain errors to status codes. entity names the resource in 404 replies,
// action is logged for unexpected failures.
func (h *Handler) respondError(c *gin.Context, err error, entity, action string) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		fail(c, http.StatusNotFound, entity+" not found")
	case errors.Is(err, models.ErrInvalidRange),
		errors.Is(err, models.ErrInvalidInput),
		errors.Is(err, models.ErrInvalidStatus):
		fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrSitterUnavailable),
		errors.Is(err, models.ErrInvalidTransition),
		errors.Is(err, models.ErrEmailTaken):
		fail(c, http.StatusConflict, err.Error())
	default:
		h.logger.WithError(err).WithField("request_id", c.GetString(requestIDKey)).Error("Failed to " + action)
		fail(c, http.StatusInternalServerError, "Failed to "+action)
	}
}

// bindingError replies 400 with one line per failed field.
func (h *Handler) bindingError(c *gin.Context, err error) {
	h.logger.WithError(err).Debug("Invalid request")

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fail(c, http.StatusBadRequest, "Invalid data")
		return
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag()))
	}
	fail(c, http.StatusBadRequest, strings.Join(msgs, "; "))
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		fail(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// optionalUint reads an optional numeric query parameter. The second result is false after
// an error reply.
func optionalUint(c *gin.Context, name string) (*uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid "+name)
		return nil, false
	}
	id := uint(v)
	return &id, true
}
