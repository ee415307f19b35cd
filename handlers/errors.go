package handlers

import (
	"errors"
	"net/http"

	"pos-backend-api/pricing"
	"pos-backend-api/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondError is the single place domain failures become HTTP responses.
// Handlers never hand a raw error to the client; everything is translated
// here and unexpected failures are redacted outside development.
func (h *Handler) respondError(c *gin.Context, err error) {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
		return
	}

	var short *pricing.InsufficientPaymentError
	if errors.As(err, &short) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":           "Insufficient payment",
			"required_amount": short.Required,
			"provided_amount": short.Provided,
		})
		return
	}

	var unavailable *pricing.ItemUnavailableError
	if errors.As(err, &unavailable) {
		c.JSON(http.StatusBadRequest, gin.H{"error": unavailable.Error()})
		return
	}

	if errors.Is(err, pricing.ErrNoItems) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A record with that value already exists"})
		return
	}

	msg := "Internal server error"
	if h.Cfg.Development() {
		msg = err.Error()
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
