package handlers

import (
	"net/http"
	"time"

	_ "github.com/GlebRadaev/g4market/docs"
	authhandlers "github.com/GlebRadaev/g4market/internal/handlers/auth"
	ordershandlers "github.com/GlebRadaev/g4market/internal/handlers/orders"
	pagehandlers "github.com/GlebRadaev/g4market/internal/handlers/page"
	"github.com/GlebRadaev/g4market/internal/service"
	"github.com/GlebRadaev/g4market/pkg/auth"
	"github.com/GlebRadaev/g4market/pkg/metrics"
	"github.com/GlebRadaev/g4market/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	UserInfo(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	Buy(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
}

type PageHandler interface {
	Index(w http.ResponseWriter, r *http.Request)
	Static(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler  AuthHandler
	OrderHandler OrderHandler
	PageHandler  PageHandler
	Sessions     auth.SessionResolver
	Metrics      *metrics.Metrics
}

func New(s *service.Services, cookies auth.CookieConfig, loc *time.Location) *Handlers {
	return &Handlers{
		AuthHandler:  authhandlers.New(s.AuthService, cookies),
		OrderHandler: ordershandlers.New(s.OrderService, loc),
		PageHandler:  pagehandlers.New(web.Files),
		Sessions:     s.AuthService,
		Metrics:      metrics.New(),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		h.Metrics.Middleware,
		auth.LoadSession(h.Sessions),
	)
	r.Get("/", h.PageHandler.Index)
	r.Get("/static/*", h.PageHandler.Static)
	r.Handle("/metrics", h.Metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)
		r.Get("/user_info", h.AuthHandler.UserInfo)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth)
			r.Post("/logout", h.AuthHandler.Logout)
			r.Post("/buy", h.OrderHandler.Buy)
			r.Get("/orders", h.OrderHandler.GetOrders)
		})
	})

	return r
}
