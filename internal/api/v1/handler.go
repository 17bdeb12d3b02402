package v1

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shipflow/ordergateway/internal/constants"
	"github.com/shipflow/ordergateway/internal/service"
	"github.com/shipflow/ordergateway/pkg/eccang"
	"go.uber.org/zap"
)

type Handler struct {
	logger   *zap.Logger
	orders   service.OrderService
	labels   service.LabelService
	validate *validator.Validate
}

func NewHandler(logger *zap.Logger, orders service.OrderService, labels service.LabelService) *Handler {
	return &Handler{logger: logger, orders: orders, labels: labels, validate: validator.New()}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) CreateOrder(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request eccang.CreateOrderRequest

	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse body",
			zap.Error(err),
			zap.String("body", string(c.Body())))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    constants.ErrCodeInvalidRequestBody,
			"message": constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
		})
	}

	if err := h.validate.Struct(request); err != nil {
		h.logger.Warn("Create order request failed validation",
			zap.String("referenceNo", request.ReferenceNo),
			zap.Error(err))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"code":    constants.ErrCodeValidationFailed,
			"message": err.Error(),
		})
	}

	resp, err := h.orders.CreateOrder(ctx, service.CreateOrderCommand{Order: request})
	if err != nil {
		h.logger.Error("Failed to create order",
			zap.Error(err),
			zap.String("referenceNo", request.ReferenceNo))
		return err
	}

	h.logger.Info("Order created",
		zap.String("referenceNo", request.ReferenceNo),
		zap.String("primaryTracking", resp.Tracking.Primary))

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *Handler) GetOrder(c *fiber.Ctx) error {
	ctx := c.UserContext()
	reference := c.Params("reference")

	view, err := h.orders.GetOrder(ctx, reference)
	if err != nil {
		return err
	}

	return c.JSON(view)
}

func (h *Handler) GenerateLabel(c *fiber.Ctx) error {
	ctx := c.UserContext()
	reference := c.Params("reference")

	view, err := h.labels.GenerateLabel(ctx, reference)
	if err != nil {
		h.logger.Error("Failed to generate label",
			zap.Error(err),
			zap.String("referenceNo", reference))
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(view)
}

func (h *Handler) ListLabels(c *fiber.Ctx) error {
	ctx := c.UserContext()

	query := service.ListLabelsQuery{
		Query:    c.Query("q"),
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("pageSize", 10),
	}

	resp, err := h.labels.ListLabels(ctx, query)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}
