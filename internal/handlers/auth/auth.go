package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/GlebRadaev/g4market/internal/domain"
	"github.com/GlebRadaev/g4market/internal/dto"
	"github.com/GlebRadaev/g4market/internal/service/authservice"
	"github.com/GlebRadaev/g4market/internal/session"
	pkgauth "github.com/GlebRadaev/g4market/pkg/auth"
	"github.com/GlebRadaev/g4market/pkg/utils"
	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	StartSession(ctx context.Context, user *domain.User) (string, time.Time, error)
	ResolveSession(ctx context.Context, token string) (*session.Session, error)
	EndSession(ctx context.Context, sessionID string) error
}

type AuthHandler struct {
	authService Service
	cookies     pkgauth.CookieConfig
}

func New(authService Service, cookies pkgauth.CookieConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookies:     cookies,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a new user account with username and password
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		201		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing fields, too long fields, invalid characters or username already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		switch {
		case dto.MissingRequired(err):
			utils.RespondWithError(w, http.StatusBadRequest, "Missing username or password")
		case dto.Failed(err, "max"):
			utils.RespondWithError(w, http.StatusBadRequest, "Username or password is too long")
		default:
			utils.RespondWithError(w, http.StatusBadRequest, "Username contains invalid characters")
		}
		return
	}

	_, err := h.authService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrMissingCredentials):
			utils.RespondWithError(w, http.StatusBadRequest, "Missing username or password")
		case errors.Is(err, authservice.ErrUsernameTaken):
			utils.RespondWithError(w, http.StatusBadRequest, "Username already exists")
		case errors.Is(err, pkgauth.ErrPasswordTooLong):
			utils.RespondWithError(w, http.StatusBadRequest, "Username or password is too long")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.RegisterResponseDTO{
		Message: "Registration successful",
	})
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with username and password and get a session cookie
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid username or password"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	user, err := h.authService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	token, expiresAt, err := h.authService.StartSession(r.Context(), user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.cookies.Set(w, token, expiresAt)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Message:  "Login successful",
		Username: user.Username,
	})
}

// Logout godoc
//
//	@Summary		Log out
//	@Description	End the current session and clear the session cookie
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	dto.LogoutResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := r.Context().Value(pkgauth.SessionIDKey).(string)

	if err := h.authService.EndSession(r.Context(), sessionID); err != nil {
		zap.L().Error("can't end session", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.cookies.Clear(w)
	utils.RespondWithJSON(w, http.StatusOK, dto.LogoutResponseDTO{
		Message: "Logged out",
	})
}

// UserInfo godoc
//
//	@Summary		Current user
//	@Description	Report whether the caller has a valid session and its username
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	dto.UserInfoResponseDTO
//	@Router			/api/user_info [get]
func (h *AuthHandler) UserInfo(w http.ResponseWriter, r *http.Request) {
	_, username, ok := pkgauth.Identity(r.Context())
	utils.RespondWithJSON(w, http.StatusOK, dto.UserInfoResponseDTO{
		IsAuthenticated: ok,
		Username:        username,
	})
}
