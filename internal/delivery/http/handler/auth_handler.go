package handler

import (
	"errors"

	"jobmatch/internal/delivery/http/dto"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/pkg/response"
	"jobmatch/internal/usecase"
	ucauth "jobmatch/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc     usecase.AuthUsecase
	authMw *middleware.AuthMiddleware
	rateMw fiber.Handler
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewAuthHandler wires the credential endpoints. rateLimit guards /login and
// /register and may be nil.
func NewAuthHandler(uc usecase.AuthUsecase, authMw *middleware.AuthMiddleware, rateLimit fiber.Handler) *AuthHandler {
	return &AuthHandler{uc: uc, authMw: authMw, rateMw: rateLimit}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	guard := h.rateMw
	if guard == nil {
		guard = func(c fiber.Ctx) error { return c.Next() }
	}

	r.Post("/login", guard, h.Login)
	r.Post("/register", guard, h.Register)
	r.Get("/me", h.authMw.Required(), h.Me)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	sess, err := h.uc.Register(c.Context(), ucauth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Registered", dto.FromSession(sess))
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	sess, err := h.uc.Login(c.Context(), ucauth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Logged in", dto.FromSession(sess))
}

func (h *AuthHandler) Me(c fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"user": dto.FromUser(usr)})
}

func mapAuthUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ucauth.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusConflict, err.Error(), nil, err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, err.Error(), nil, err)
	case errors.Is(err, ucauth.ErrRegisterFieldsRequired),
		errors.Is(err, ucauth.ErrLoginFieldsRequired),
		errors.Is(err, ucauth.ErrInvalidRole):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	default:
		return internalError(err)
	}
}
