package handler

import (
	"errors"

	"jobmatch/internal/delivery/http/dto"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/pkg/response"
	"jobmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc     usecase.UserUsecase
	authMw *middleware.AuthMiddleware
}

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func NewUserHandler(uc usecase.UserUsecase, authMw *middleware.AuthMiddleware) *UserHandler {
	return &UserHandler{uc: uc, authMw: authMw}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/users", h.List)
	r.Post("/users", h.authMw.Optional(), h.Create)
	r.Get("/users/:id", h.Get)
}

func (h *UserHandler) List(c fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), c.Query("role"))
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"users": dto.FromUsers(list)})
}

func (h *UserHandler) Create(c fiber.Ctx) error {
	var req createUserRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	in := usecase.CreateUserInput{Name: req.Name, Email: req.Email, Role: req.Role}
	if actor, ok := middleware.CurrentUser(c); ok {
		in.Actor = &actor
	}

	usr, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "User created", map[string]any{"user": dto.FromUser(usr)})
}

func (h *UserHandler) Get(c fiber.Ctx) error {
	usr, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"user": dto.FromUser(usr)})
}

func mapUserUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return badRequest(err)
	case errors.Is(err, usecase.ErrAdminRoleDenied):
		return middleware.NewAppError(fiber.StatusForbidden, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrEmailTaken):
		return middleware.NewAppError(fiber.StatusConflict, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, err.Error(), nil, err)
	default:
		return internalError(err)
	}
}
