package handler

import (
	"errors"

	"jobmatch/internal/delivery/http/dto"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/domain/assessment"
	"jobmatch/internal/pkg/response"
	"jobmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AssessmentHandler struct {
	uc     usecase.AssessmentUsecase
	authMw *middleware.AuthMiddleware
}

type answerRequest struct {
	QuestionID    string `json:"questionId"`
	SelectedIndex *int   `json:"selectedIndex"`
}

type submitAssessmentRequest struct {
	CandidateID  string          `json:"candidateId"`
	AssessmentID string          `json:"assessmentId"`
	Answers      []answerRequest `json:"answers"`
	Score        *int            `json:"score"`
}

func NewAssessmentHandler(uc usecase.AssessmentUsecase, authMw *middleware.AuthMiddleware) *AssessmentHandler {
	return &AssessmentHandler{uc: uc, authMw: authMw}
}

func (h *AssessmentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/assessments/list", h.List)
	r.Get("/assessments/results", h.Results)
	r.Post("/assessments", h.authMw.Optional(), h.Submit)
	r.Get("/assessments/:id", h.Get)
}

func (h *AssessmentHandler) List(c fiber.Ctx) error {
	defs, err := h.uc.List(c.Context())
	if err != nil {
		return mapAssessmentUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"assessments": dto.FromDefinitions(defs)})
}

func (h *AssessmentHandler) Get(c fiber.Ctx) error {
	def, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapAssessmentUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"assessment": dto.FromDefinition(def)})
}

func (h *AssessmentHandler) Submit(c fiber.Ctx) error {
	var req submitAssessmentRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	in := usecase.SubmitAssessmentInput{
		CandidateID:  req.CandidateID,
		AssessmentID: req.AssessmentID,
		Score:        req.Score,
	}
	// A missing answers field stays nil; an explicit empty array does not.
	if req.Answers != nil {
		in.Answers = make([]assessment.Answer, 0, len(req.Answers))
		for _, a := range req.Answers {
			in.Answers = append(in.Answers, assessment.Answer{QuestionID: a.QuestionID, SelectedIndex: a.SelectedIndex})
		}
	}
	if usr, ok := middleware.CurrentUser(c); ok {
		in.Actor = &usr
	}

	sub, err := h.uc.Submit(c.Context(), in)
	if err != nil {
		return mapAssessmentUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Assessment submitted successfully", map[string]any{"assessment": dto.FromSubmission(sub)})
}

func (h *AssessmentHandler) Results(c fiber.Ctx) error {
	res, err := h.uc.Results(c.Context(), c.Query("candidateId"), c.Query("assessmentId"))
	if err != nil {
		return mapAssessmentUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromResults(res))
}

func mapAssessmentUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return badRequest(err)
	case errors.Is(err, usecase.ErrUnknownAssessment):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrScoreOverrideDenied):
		return middleware.NewAppError(fiber.StatusForbidden, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrAssessmentNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, err.Error(), nil, err)
	default:
		return internalError(err)
	}
}
