package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/currency_exchange/internal/apperrors"
	"github.com/SscSPs/currency_exchange/internal/core/domain"
	"github.com/SscSPs/currency_exchange/internal/core/ports"
	"github.com/SscSPs/currency_exchange/internal/middleware"
)

const invalidCurrencyCodeMessage = "Invalid currency code. Only real currency codes can be used."

// BaseService provides common functionality for all services
type BaseService struct {
	Registry ports.CurrencyRegistry
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// NormalizeAndValidateCode normalizes a raw currency code and checks it against the registry.
func (s *BaseService) NormalizeAndValidateCode(raw string) (string, error) {
	code := domain.NormalizeCode(raw)
	if s.Registry == nil || !s.Registry.IsValidCode(code) {
		return "", apperrors.NewValidationError(invalidCurrencyCodeMessage)
	}
	return code, nil
}
