package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shipflow/ordergateway/internal/constants"
	"github.com/shipflow/ordergateway/internal/service"
	"github.com/shipflow/ordergateway/pkg/eccang"
)

func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		// Business failures carry the carrier's own message through.
		var businessErr *eccang.BusinessError
		if errors.As(err, &businessErr) {
			return c.Status(constants.GetHTTPStatus(constants.ErrCodeCarrierRejected)).JSON(fiber.Map{
				"code":    constants.ErrCodeCarrierRejected,
				"message": businessErr.Message,
			})
		}

		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			return handleServiceError(c, serviceErr)
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":    constants.ErrCodeInternalError,
			"message": constants.GetErrorMessage(constants.ErrCodeInternalError),
		})
	}
}

func handleServiceError(c *fiber.Ctx, err service.Error) error {
	errorCode := err.Code

	status := constants.GetHTTPStatus(errorCode)
	if status == 500 && err.Code != constants.ErrCodeInternalError {
		errorCode = constants.ErrCodeInternalError
	}

	return c.Status(status).JSON(fiber.Map{
		"code":    errorCode,
		"message": constants.GetErrorMessage(errorCode),
	})
}
