package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/GlebRadaev/g4market/internal/domain"
	"github.com/GlebRadaev/g4market/internal/dto"
	orderservice "github.com/GlebRadaev/g4market/internal/service/orderservice"
	"github.com/GlebRadaev/g4market/pkg/auth"
	"github.com/GlebRadaev/g4market/pkg/utils"
)

type Service interface {
	Purchase(ctx context.Context, userID int, productName string) (*domain.Order, error)
	GetOrders(ctx context.Context, userID int) ([]domain.Order, error)
}

type OrderHandler struct {
	orderService Service
	location     *time.Location
}

// New returns a handler rendering order timestamps in loc, UTC when nil.
func New(orderService Service, loc *time.Location) *OrderHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &OrderHandler{
		orderService: orderService,
		location:     loc,
	}
}

// Buy godoc
//
//	@Summary		Buy a product
//	@Description	Generate random accounts for the product and store them as a new order. An empty body buys the default product.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BuyRequestDTO	false	"Buy request body"
//	@Success		200		{object}	dto.BuyResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/buy [post]
func (h *OrderHandler) Buy(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := auth.Identity(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	var req dto.BuyRequestDTO
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}
	if err := dto.Validate(req); err != nil {
		if dto.Failed(err, "max") {
			utils.RespondWithError(w, http.StatusBadRequest, "Product name is too long")
			return
		}
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product name")
		return
	}
	productName := orderservice.DefaultProductName
	if req.ProductName != nil {
		productName = *req.ProductName
	}

	order, err := h.orderService.Purchase(r.Context(), userID, productName)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BuyResponseDTO{
		Message:  "Purchase successful",
		OrderID:  order.ID,
		Accounts: dto.NewAccountsDTO(order.Accounts),
	})
}

// GetOrders godoc
//
//	@Summary		Get orders list for user
//	@Description	Retrieve the orders of the authorized user, newest first
//	@Tags			Orders
//	@Produce		json
//	@Success		200	{object}	dto.GetOrdersResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := auth.Identity(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	orders, err := h.orderService.GetOrders(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewGetOrdersResponseDTO(orders, h.location))
}
