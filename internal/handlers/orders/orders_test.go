package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/GlebRadaev/g4market/internal/domain"
	"github.com/GlebRadaev/g4market/internal/dto"
	orderservice "github.com/GlebRadaev/g4market/internal/service/orderservice"
	"github.com/GlebRadaev/g4market/pkg/auth"
	"github.com/GlebRadaev/g4market/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*OrderHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service, time.UTC)
	return handler, service
}

type errorReader struct{}

func (r *errorReader) Read([]byte) (int, error) {
	return 0, errors.New("simulated read error")
}

func withUser(req *http.Request, userID int) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, userID))
}

func TestBuyHandler(t *testing.T) {
	handler, service := NewMock(t)
	accounts := []domain.Account{
		{Username: "val_aaaaaaaa", Password: "Bbbbbbbbbbb1"},
	}

	tests := []struct {
		name             string
		body             string
		prepareMock      func()
		expectedCode     int
		expectedError    string
		expectedResponse dto.BuyResponseDTO
	}{
		{
			name: "Named product",
			body: `{"product_name":"Single 1 Account"}`,
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), 1, "Single 1 Account").Return(&domain.Order{
					ID:          5,
					UserID:      1,
					ProductName: "Single 1 Account",
					Accounts:    accounts,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedResponse: dto.BuyResponseDTO{
				Message:  "Purchase successful",
				OrderID:  5,
				Accounts: []dto.AccountDTO{{Username: "val_aaaaaaaa", Password: "Bbbbbbbbbbb1"}},
			},
		},
		{
			name: "Empty body buys the default product",
			body: ``,
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), 1, orderservice.DefaultProductName).Return(&domain.Order{ID: 6, Accounts: accounts}, nil)
			},
			expectedCode: http.StatusOK,
			expectedResponse: dto.BuyResponseDTO{
				Message:  "Purchase successful",
				OrderID:  6,
				Accounts: []dto.AccountDTO{{Username: "val_aaaaaaaa", Password: "Bbbbbbbbbbb1"}},
			},
		},
		{
			name: "Empty object buys the default product",
			body: `{}`,
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), 1, orderservice.DefaultProductName).Return(&domain.Order{ID: 7, Accounts: []domain.Account{}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedResponse: dto.BuyResponseDTO{
				Message:  "Purchase successful",
				OrderID:  7,
				Accounts: []dto.AccountDTO{},
			},
		},
		{
			name: "Empty product name is kept",
			body: `{"product_name":""}`,
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), 1, "").Return(&domain.Order{ID: 8, Accounts: accounts}, nil)
			},
			expectedCode: http.StatusOK,
			expectedResponse: dto.BuyResponseDTO{
				Message:  "Purchase successful",
				OrderID:  8,
				Accounts: []dto.AccountDTO{{Username: "val_aaaaaaaa", Password: "Bbbbbbbbbbb1"}},
			},
		},
		{
			name:          "Invalid JSON",
			body:          `{"product_name":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Product name too long",
			body:          `{"product_name":"` + strings.Repeat("x", 101) + `"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Product name is too long",
		},
		{
			name:          "NUL in product name",
			body:          `{"product_name":"Combo\u00005"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid product name",
		},
		{
			name: "Service error",
			body: `{"product_name":"Combo 5 Random Accounts"}`,
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), 1, "Combo 5 Random Accounts").Return(nil, errors.New("db error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withUser(httptest.NewRequest("POST", "/api/buy", bytes.NewReader([]byte(tt.body))), 1)
			rr := httptest.NewRecorder()

			handler.Buy(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}
			var resp dto.BuyResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expectedResponse, resp)
		})
	}
}

func TestBuyHandler_ReadError(t *testing.T) {
	handler, _ := NewMock(t)

	req := withUser(httptest.NewRequest("POST", "/api/buy", &errorReader{}), 1)
	rr := httptest.NewRecorder()

	handler.Buy(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestBuyHandler_Unauthorized(t *testing.T) {
	handler, _ := NewMock(t)

	req := httptest.NewRequest("POST", "/api/buy", nil)
	rr := httptest.NewRecorder()

	handler.Buy(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rr.Body.String())
}

func TestGetOrdersHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Orders newest first",
			prepareMock: func() {
				service.EXPECT().GetOrders(gomock.Any(), 1).Return([]domain.Order{
					{
						ID:          2,
						ProductName: "Combo 5 Random Accounts",
						CreatedAt:   time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC),
						Accounts:    []domain.Account{{Username: "val_bbbbbbbb", Password: "pw"}},
					},
					{
						ID:          1,
						ProductName: "Single 1 Account",
						CreatedAt:   time.Date(2024, 5, 1, 7, 6, 5, 0, time.UTC),
						Accounts:    []domain.Account{{Username: "val_aaaaaaaa", Password: "pw"}},
					},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"orders":[
				{"id":2,"product_name":"Combo 5 Random Accounts","created_at":"2024-05-02 08:00:00","accounts":[{"username":"val_bbbbbbbb","password":"pw"}]},
				{"id":1,"product_name":"Single 1 Account","created_at":"2024-05-01 07:06:05","accounts":[{"username":"val_aaaaaaaa","password":"pw"}]}
			]}`,
		},
		{
			name: "No orders",
			prepareMock: func() {
				service.EXPECT().GetOrders(gomock.Any(), 1).Return([]domain.Order{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"orders":[]}`,
		},
		{
			name: "Service error",
			prepareMock: func() {
				service.EXPECT().GetOrders(gomock.Any(), 1).Return(nil, errors.New("service error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withUser(httptest.NewRequest("GET", "/api/orders", nil), 1)
			rr := httptest.NewRecorder()

			handler.GetOrders(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestGetOrdersHandler_Location(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service, time.FixedZone("MSK", 3*60*60))

	service.EXPECT().GetOrders(gomock.Any(), 1).Return([]domain.Order{
		{ID: 1, ProductName: "p", CreatedAt: time.Date(2024, 5, 1, 22, 30, 0, 0, time.UTC), Accounts: []domain.Account{}},
	}, nil)

	req := withUser(httptest.NewRequest("GET", "/api/orders", nil), 1)
	rr := httptest.NewRecorder()

	handler.GetOrders(rr, req)

	assert.JSONEq(t, `{"orders":[{"id":1,"product_name":"p","created_at":"2024-05-02 01:30:00","accounts":[]}]}`, rr.Body.String())
}
