package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Juanelc4734k/checkout-service/internal/entities"
	"github.com/Juanelc4734k/checkout-service/internal/middleware"
	"github.com/Juanelc4734k/checkout-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CheckoutService interface {
	PlaceOrder(ctx context.Context, in entities.PlaceOrderInput) (entities.Order, error)
	GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error)
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CheckoutService
}

func NewOrderHandler(logger *slog.Logger, svc CheckoutService) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "orders")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Post("/orders", h.PlaceOrder)
	r.Get("/orders/{order_id}", h.GetOrderByID)
}

// PlaceOrder creates an order and charges it.
// @Summary      Place an order
// @Description  Creates an order, submits the payment and returns the paid order
// @Tags         orders
// @Accept       json
// @Param        request  body  CreateOrderRequest  true  "Order to place"
// @Success      201  {object}  CreateOrderResponse
// @Failure      400  {object}  utils.CodedErrorResponse "Validation failed"
// @Failure      500  {object}  utils.CodedErrorResponse "Placement failed"
// @Router       /orders [post]
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteCodedError(w, "invalid request body", string(entities.CodeValidation), http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if !req.Total.IsPositive() {
		utils.WriteCodedError(w, "total must be positive", string(entities.CodeValidation), http.StatusBadRequest)
		return
	}

	order, err := h.svc.PlaceOrder(ctx, entities.PlaceOrderInput{
		UserID:        req.UserID,
		Total:         req.Total,
		PaymentMethod: req.PaymentMethod,
		Currency:      req.Currency,
		Authorization: authorizationOf(r),
	})
	if err != nil {
		h.writeCheckoutError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, CreateOrderResponse{
		Message: "order placed",
		Order:   OrderEntityToJSON(order),
	}, http.StatusCreated)
}

// GetOrderByID returns an order by its id.
// @Summary      Get order
// @Description  Returns the order with the given id
// @Tags         orders
// @Param        order_id   path      int  true  "Order id"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.CodedErrorResponse "Invalid id"
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      500  {object}  utils.ErrorResponse "Internal error"
// @Router       /orders/{order_id} [get]
func (h *OrderHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := strconv.ParseInt(chi.URLParam(r, "order_id"), 10, 64)
	if err != nil || orderID <= 0 {
		utils.WriteCodedError(w, "invalid order id", string(entities.CodeValidation), http.StatusBadRequest)
		return
	}

	order, err := h.svc.GetOrderByID(ctx, orderID)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.Int64("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *OrderHandler) writeCheckoutError(ctx context.Context, w http.ResponseWriter, err error) {
	var ce *entities.CheckoutError
	if !errors.As(err, &ce) {
		h.logger.ErrorContext(ctx, "failed to place order", slog.Any("error", err))
		utils.WriteCodedError(w, "internal server error", string(entities.CodeInternal), http.StatusInternalServerError)
		return
	}

	status := http.StatusInternalServerError
	if ce.Code == entities.CodeValidation {
		status = http.StatusBadRequest
	}

	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, "failed to place order",
			slog.String("code", string(ce.Code)),
			slog.Any("error", err),
		)
	}
	utils.WriteCodedError(w, ce.Message, string(ce.Code), status)
}

func authorizationOf(r *http.Request) string {
	if auth := middleware.AuthorizationFromContext(r.Context()); auth != "" {
		return auth
	}
	return r.Header.Get("Authorization")
}
