package handlerUtil

import (
	"Fintar/internal/api/chat"
	"Fintar/pkg/completion"
	"Fintar/pkg/log"
	"Fintar/pkg/response"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error   string      `json:"error"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
}

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	fields := log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}

	// Provider status and message go back to the client so quota and policy
	// problems can be triaged. Keys never appear in either.
	var svcErr *completion.ServiceError
	if errors.As(err, &svcErr) {
		fields["provider"] = svcErr.Provider
		fields["status"] = svcErr.Status
		h.logger.WithFields(fields).Error("Completion service failed")
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error: "Completion service error",
			Code:  "COMPLETION_SERVICE_ERROR",
			Details: fiber.Map{
				"provider": svcErr.Provider,
				"status":   svcErr.Status,
				"message":  svcErr.Message,
			},
		})
	}

	var persistErr *chat.PersistError
	if errors.As(err, &persistErr) {
		h.logger.WithFields(fields).Error("Some transactions were not saved")
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: persistErr.Error(),
			Code:  "PERSIST_FAILED",
			Details: fiber.Map{
				"transactions_persisted": persistErr.Persisted,
				"transactions_failed":    persistErr.Failed,
			},
		})
	}

	var respErr *response.Error
	if errors.As(err, &respErr) {
		fields["code"] = respErr.Code
		if respErr.Code >= fiber.StatusInternalServerError {
			h.logger.WithFields(fields).Error("Operation failed with error response")
		} else {
			h.logger.WithFields(fields).Warn("Operation failed with error response")
		}
		return c.Status(respErr.Code).JSON(ErrorResponse{Error: respErr.Error()})
	}

	traceID := requestID
	if traceID == "" {
		traceID = uuid.NewString()
	}
	fields["trace_id"] = traceID
	h.logger.WithFields(fields).Error("Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   "An unexpected error occurred",
		TraceID: traceID,
	})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error: "Validation failed: " + err.Error(),
		Code:  "VALIDATION_ERROR",
	})
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(utils.StatusMessage(fiber.StatusRequestTimeout))
}

func (h *ErrorHandler) HandleUnauthorized(c *fiber.Ctx, requestID string, message string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"path":       c.Path(),
		"message":    message,
	}).Warn("Unauthorized access")

	return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
		Error: message,
		Code:  "UNAUTHORIZED",
	})
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
