package sqlite

import (
	"context"
	"errors"
	"fmt"

	"jobmatch/internal/domain/assessment"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type assessmentRepository struct {
	db *gorm.DB
}

func (r assessmentRepository) CreateDefinition(ctx context.Context, d assessment.Definition) error {
	m, err := toDefinitionModel(d)
	if err != nil {
		return fmt.Errorf("encode assessment: %w", err)
	}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "description", "duration_minutes", "questions"}),
	}).Create(&m).Error
	if err != nil {
		return fmt.Errorf("upsert assessment: %w", err)
	}
	return nil
}

func (r assessmentRepository) GetDefinition(ctx context.Context, id string) (assessment.Definition, error) {
	var m definitionModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return assessment.Definition{}, assessment.ErrNotFound
		}
		return assessment.Definition{}, fmt.Errorf("get assessment: %w", err)
	}
	return m.toDomain()
}

func (r assessmentRepository) ListDefinitions(ctx context.Context) ([]assessment.Definition, error) {
	var rows []definitionModel
	if err := r.db.WithContext(ctx).Order("seq").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}

	out := make([]assessment.Definition, 0, len(rows))
	for _, m := range rows {
		d, err := m.toDomain()
		if err != nil {
			return nil, fmt.Errorf("decode assessment %s: %w", m.ID, err)
		}
		out = append(out, d)
	}
	return out, nil
}

func (r assessmentRepository) AppendSubmission(ctx context.Context, s assessment.Submission) error {
	m, err := toSubmissionModel(s)
	if err != nil {
		return fmt.Errorf("encode submission: %w", err)
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

func (r assessmentRepository) ListSubmissions(ctx context.Context, candidateID, assessmentID string) ([]assessment.Submission, error) {
	var rows []submissionModel
	err := r.db.WithContext(ctx).
		Where("candidate_id = ? AND assessment_id = ?", candidateID, assessmentID).
		Order("seq").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}

	out := make([]assessment.Submission, 0, len(rows))
	for _, m := range rows {
		s, err := m.toDomain()
		if err != nil {
			return nil, fmt.Errorf("decode submission %s: %w", m.ID, err)
		}
		out = append(out, s)
	}
	return out, nil
}
