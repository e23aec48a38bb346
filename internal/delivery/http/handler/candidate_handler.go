package handler

import (
	"errors"

	"jobmatch/internal/delivery/http/dto"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/pkg/response"
	"jobmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CandidateHandler struct {
	uc       usecase.CandidateUsecase
	matching usecase.MatchingUsecase
}

func NewCandidateHandler(uc usecase.CandidateUsecase, matching usecase.MatchingUsecase) *CandidateHandler {
	return &CandidateHandler{uc: uc, matching: matching}
}

func (h *CandidateHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/candidates", h.List)
	r.Get("/candidates/match/:jobId", h.Match)
	r.Get("/candidates/:id", h.Get)
}

func (h *CandidateHandler) List(c fiber.Ctx) error {
	minScore, err := parseOptionalQueryInt(c, "minScore")
	if err != nil {
		return err
	}

	list, err := h.uc.List(c.Context(), usecase.CandidateListParams{
		Query:    c.Query("q"),
		MinScore: minScore,
		Skills:   parseSkillsQuery(c.Query("skills")),
	})
	if err != nil {
		return mapCandidateUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"candidates": dto.FromCandidates(list)})
}

func (h *CandidateHandler) Get(c fiber.Ctx) error {
	cand, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapCandidateUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"candidate": dto.FromCandidate(cand)})
}

func (h *CandidateHandler) Match(c fiber.Ctx) error {
	minScore, err := parseOptionalQueryInt(c, "minScore")
	if err != nil {
		return err
	}
	minWeight, err := parseOptionalQueryInt(c, "minWeight")
	if err != nil {
		return err
	}

	res, err := h.matching.MatchCandidates(c.Context(), usecase.CandidateMatchParams{
		JobID:     c.Params("jobId"),
		MinScore:  minScore,
		Skills:    parseSkillsQuery(c.Query("skills")),
		MinWeight: minWeight,
	})
	if err != nil {
		return mapCandidateUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCandidateMatchResult(res))
}

func mapCandidateUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return badRequest(err)
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, err.Error(), nil, err)
	default:
		return internalError(err)
	}
}
