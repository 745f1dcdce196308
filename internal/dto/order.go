package dto

import (
	"time"

	"github.com/GlebRadaev/g4market/internal/domain"
	"github.com/samber/lo"
)

// TimeLayout is the created_at format of the orders API.
const TimeLayout = "2006-01-02 15:04:05"

// BuyRequestDTO distinguishes an absent product_name (nil) from an empty one.
type BuyRequestDTO struct {
	ProductName *string `json:"product_name,omitempty" validate:"omitempty,max=100,nonul" example:"Combo 5 Random Accounts"`
}

type AccountDTO struct {
	Username string `json:"username" example:"val_k3j9x0qa"`
	Password string `json:"password" example:"Zr8!pQ2#mWx1"`
}

type BuyResponseDTO struct {
	Message  string       `json:"message" example:"Purchase successful"`
	OrderID  int          `json:"order_id" example:"42"`
	Accounts []AccountDTO `json:"accounts"`
}

type OrderDTO struct {
	ID          int          `json:"id" example:"42"`
	ProductName string       `json:"product_name" example:"Combo 5 Random Accounts"`
	CreatedAt   string       `json:"created_at" example:"2024-05-01 12:00:00"`
	Accounts    []AccountDTO `json:"accounts"`
}

type GetOrdersResponseDTO struct {
	Orders []OrderDTO `json:"orders"`
}

func NewAccountsDTO(accounts []domain.Account) []AccountDTO {
	return lo.Map(accounts, func(a domain.Account, _ int) AccountDTO {
		return AccountDTO{Username: a.Username, Password: a.Password}
	})
}

// NewOrderDTO renders order with created_at in loc.
func NewOrderDTO(order domain.Order, loc *time.Location) OrderDTO {
	return OrderDTO{
		ID:          order.ID,
		ProductName: order.ProductName,
		CreatedAt:   order.CreatedAt.In(loc).Format(TimeLayout),
		Accounts:    NewAccountsDTO(order.Accounts),
	}
}

func NewGetOrdersResponseDTO(orders []domain.Order, loc *time.Location) GetOrdersResponseDTO {
	return GetOrdersResponseDTO{
		Orders: lo.Map(orders, func(o domain.Order, _ int) OrderDTO {
			return NewOrderDTO(o, loc)
		}),
	}
}
