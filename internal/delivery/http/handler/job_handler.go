package handler

import (
	"errors"

	"jobmatch/internal/delivery/http/dto"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/domain/job"
	"jobmatch/internal/pkg/response"
	"jobmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	jobs     usecase.JobUsecase
	apps     usecase.ApplicationUsecase
	matching usecase.MatchingUsecase
}

type createJobRequest struct {
	Title      string   `json:"title"`
	Company    string   `json:"company"`
	Location   string   `json:"location"`
	Skills     []string `json:"skills"`
	MinScore   *int     `json:"minScore"`
	EmployerID string   `json:"employerId"`
}

type updateJobRequest struct {
	Title    *string   `json:"title"`
	Company  *string   `json:"company"`
	Location *string   `json:"location"`
	Skills   *[]string `json:"skills"`
	MinScore *int      `json:"minScore"`
}

type applyRequest struct {
	CandidateID string `json:"candidateId"`
}

func NewJobHandler(jobs usecase.JobUsecase, apps usecase.ApplicationUsecase, matching usecase.MatchingUsecase) *JobHandler {
	return &JobHandler{jobs: jobs, apps: apps, matching: matching}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/jobs", h.List)
	r.Get("/jobs/match", h.Match)
	r.Post("/jobs", h.Create)
	r.Get("/jobs/:id", h.Get)
	r.Put("/jobs/:id", h.Update)
	r.Delete("/jobs/:id", h.Delete)
	r.Post("/jobs/:id/apply", h.Apply)
	r.Get("/jobs/:id/applicants", h.Applicants)
}

func (h *JobHandler) List(c fiber.Ctx) error {
	list, err := h.jobs.List(c.Context(), c.Query("q"))
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"jobs": dto.FromJobs(list)})
}

func (h *JobHandler) Match(c fiber.Ctx) error {
	score, err := parseOptionalQueryInt(c, "score")
	if err != nil {
		return err
	}
	minWeight, err := parseOptionalQueryInt(c, "minWeight")
	if err != nil {
		return err
	}

	res, err := h.matching.MatchJobs(c.Context(), usecase.JobMatchParams{
		CandidateID: c.Query("candidateId"),
		Score:       score,
		Skills:      parseSkillsQuery(c.Query("skills")),
		MinWeight:   minWeight,
	})
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobMatchResult(res))
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	j, err := h.jobs.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"job": dto.FromJob(j)})
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	var req createJobRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	j, err := h.jobs.Create(c.Context(), usecase.CreateJobInput{
		Title:      req.Title,
		Company:    req.Company,
		Location:   req.Location,
		Skills:     req.Skills,
		MinScore:   req.MinScore,
		EmployerID: req.EmployerID,
	})
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Job created", map[string]any{"job": dto.FromJob(j)})
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	var req updateJobRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	j, err := h.jobs.Update(c.Context(), c.Params("id"), job.Patch{
		Title:    req.Title,
		Company:  req.Company,
		Location: req.Location,
		Skills:   req.Skills,
		MinScore: req.MinScore,
	})
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job updated", map[string]any{"job": dto.FromJob(j)})
}

func (h *JobHandler) Delete(c fiber.Ctx) error {
	j, err := h.jobs.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Deleted", map[string]any{"job": dto.FromJob(j)})
}

func (h *JobHandler) Apply(c fiber.Ctx) error {
	var req applyRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	a, err := h.apps.Apply(c.Context(), c.Params("id"), req.CandidateID)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Applied", map[string]any{"application": dto.FromApplication(a)})
}

func (h *JobHandler) Applicants(c fiber.Ctx) error {
	list, err := h.apps.ListForJob(c.Context(), c.Params("id"))
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"applicants": dto.FromApplications(list)})
}

func mapJobUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return badRequest(err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, err.Error(), nil, err)
	default:
		return internalError(err)
	}
}
