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

type CartService interface {
	AddToCart(ctx context.Context, userID, productID int64, quantity int) (entities.CartItem, error)
	UpdateQuantity(ctx context.Context, userID, itemID int64, quantity int) (entities.CartItem, error)
	ListPending(ctx context.Context, userID int64) ([]entities.CartItem, error)
	Checkout(ctx context.Context, userID int64) error
}

type CartHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CartService
}

func NewCartHandler(logger *slog.Logger, svc CartService) *CartHandler {
	return &CartHandler{
		logger:   logger.With(slog.String("handler", "cart")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *CartHandler) Init(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth)
		r.Get("/cart", h.ListPending)
		r.Post("/cart", h.AddToCart)
		r.Put("/cart/{item_id}", h.UpdateQuantity)
		r.Post("/cart/checkout", h.Checkout)
	})
}

// ListPending returns the caller's pending cart lines.
// @Summary      List cart
// @Tags         cart
// @Success      200  {array}   CartItem
// @Failure      401  {object}  utils.ErrorResponse "Missing user id"
// @Router       /cart [get]
func (h *CartHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := middleware.UserIDFromContext(ctx)

	items, err := h.svc.ListPending(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list cart", slog.Any("error", err), slog.Int64("user_id", userID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	out := make([]CartItem, 0, len(items))
	for _, item := range items {
		out = append(out, CartItemEntityToJSON(item))
	}
	utils.WriteJSON(w, out, http.StatusOK)
}

// AddToCart adds a product to the caller's cart.
// @Summary      Add to cart
// @Tags         cart
// @Accept       json
// @Param        request  body  AddToCartRequest  true  "Line to add"
// @Success      201  {object}  CartItem
// @Failure      400  {object}  utils.ErrorResponse "Validation failed or not enough stock"
// @Failure      404  {object}  utils.ErrorResponse "Product not found"
// @Router       /cart [post]
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := middleware.UserIDFromContext(ctx)

	var req AddToCartRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	item, err := h.svc.AddToCart(ctx, userID, req.ProductID, req.Quantity)
	if err != nil {
		h.writeCartError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, CartItemEntityToJSON(item), http.StatusCreated)
}

// UpdateQuantity changes the quantity of one of the caller's cart lines.
// @Summary      Update cart line
// @Tags         cart
// @Accept       json
// @Param        item_id  path  int                true  "Cart line id"
// @Param        request  body  UpdateCartRequest  true  "New quantity"
// @Success      200  {object}  CartItem
// @Failure      400  {object}  utils.ErrorResponse "Validation failed"
// @Failure      404  {object}  utils.ErrorResponse "Cart line not found"
// @Router       /cart/{item_id} [put]
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := middleware.UserIDFromContext(ctx)

	itemID, err := strconv.ParseInt(chi.URLParam(r, "item_id"), 10, 64)
	if err != nil || itemID <= 0 {
		utils.WriteError(w, "invalid cart item id", http.StatusBadRequest)
		return
	}

	var req UpdateCartRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	item, err := h.svc.UpdateQuantity(ctx, userID, itemID, req.Quantity)
	if err != nil {
		h.writeCartError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, CartItemEntityToJSON(item), http.StatusOK)
}

// Checkout pays the caller's pending cart lines one by one.
// @Summary      Check out cart
// @Tags         cart
// @Success      200  {object}  MessageResponse
// @Failure      401  {object}  utils.ErrorResponse "Missing user id"
// @Failure      500  {object}  utils.ErrorResponse "Checkout stopped at a failing line"
// @Router       /cart/checkout [post]
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := middleware.UserIDFromContext(ctx)

	if err := h.svc.Checkout(ctx, userID); err != nil {
		h.logger.ErrorContext(ctx, "cart checkout failed", slog.Any("error", err), slog.Int64("user_id", userID))
		utils.WriteError(w, "checkout failed", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, MessageResponse{Message: "cart checked out"}, http.StatusOK)
}

func (h *CartHandler) writeCartError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entities.ErrProductNotFound):
		utils.WriteError(w, "product not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrCartItemNotFound):
		utils.WriteError(w, "cart item not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrInsufficientStock):
		utils.WriteError(w, "not enough stock", http.StatusBadRequest)
	default:
		h.logger.ErrorContext(ctx, "cart operation failed", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
