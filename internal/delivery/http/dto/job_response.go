package dto

import (
	"time"

	"jobmatch/internal/domain/application"
	"jobmatch/internal/domain/job"
)

type JobResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Company    string    `json:"company"`
	Location   string    `json:"location"`
	Skills     []string  `json:"skills"`
	MinScore   int       `json:"minScore"`
	EmployerID string    `json:"employerId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromJob(j job.Job) JobResponse {
	skills := j.Skills
	if skills == nil {
		skills = []string{}
	}
	return JobResponse{
		ID:         j.ID,
		Title:      j.Title,
		Company:    j.Company,
		Location:   j.Location,
		Skills:     skills,
		MinScore:   j.MinScore,
		EmployerID: j.EmployerID,
		CreatedAt:  j.CreatedAt,
	}
}

func FromJobs(list []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(list))
	for _, j := range list {
		out = append(out, FromJob(j))
	}
	return out
}

type ApplicationResponse struct {
	ID          string     `json:"id"`
	JobID       string     `json:"jobId"`
	CandidateID string     `json:"candidateId"`
	Status      string     `json:"status"`
	AppliedAt   time.Time  `json:"appliedAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

func FromApplication(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		CandidateID: a.CandidateID,
		Status:      string(a.Status),
		AppliedAt:   a.AppliedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func FromApplications(list []application.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromApplication(a))
	}
	return out
}
