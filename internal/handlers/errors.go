package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/currency_exchange/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const invalidCurrencyCodeMessage = "Invalid currency code. Only real currency codes can be used."

// respondError writes err as {"message": ...} with the status of its kind.
// Messages of unexpected failures are not exposed.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := apperrors.StatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"message": fallback})
		return
	}

	message := err.Error()
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	logger.Warn("Request rejected", slog.Int("status", status), slog.String("reason", message))
	c.JSON(status, gin.H{"message": message})
}

// respondBindError turns a form binding failure into a 400 message naming the offending field.
func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format: " + err.Error()})
		return
	}

	fieldErr := validationErrs[0]
	switch fieldErr.Tag() {
	case "required":
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required field: " + formFieldName(fieldErr)})
	case currencyCodeTag:
		c.JSON(http.StatusBadRequest, gin.H{"message": invalidCurrencyCodeMessage})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid value of field: " + formFieldName(fieldErr)})
	}
}

// formFieldName lower-cases the first letter of the struct field, matching the form keys.
func formFieldName(fieldErr validator.FieldError) string {
	name := fieldErr.Field()
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}
