package handler

import (
	"errors"

	"jobmatch/internal/delivery/http/dto"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/pkg/response"
	"jobmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Patch("/applications/:id/status", h.UpdateStatus)
}

func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	var req updateStatusRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	a, err := h.uc.UpdateStatus(c.Context(), c.Params("id"), req.Status)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Status updated", map[string]any{"application": dto.FromApplication(a)})
}

func mapApplicationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return badRequest(err)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrJobNotFound),
		errors.Is(err, usecase.ErrApplicationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrAlreadyApplied),
		errors.Is(err, usecase.ErrStatusConflict):
		return middleware.NewAppError(fiber.StatusConflict, err.Error(), nil, err)
	default:
		return internalError(err)
	}
}
