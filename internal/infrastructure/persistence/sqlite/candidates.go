package sqlite

import (
	"context"
	"errors"
	"fmt"

	"jobmatch/internal/domain/candidate"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type candidateRepository struct {
	db *gorm.DB
}

func (r candidateRepository) Create(ctx context.Context, c candidate.Candidate) error {
	m, err := toCandidateModel(c)
	if err != nil {
		return fmt.Errorf("encode candidate: %w", err)
	}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email", "role", "skills", "score"}),
	}).Create(&m).Error
	if err != nil {
		return fmt.Errorf("upsert candidate: %w", err)
	}
	return nil
}

func (r candidateRepository) GetByID(ctx context.Context, id string) (candidate.Candidate, error) {
	var m candidateModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return candidate.Candidate{}, candidate.ErrNotFound
		}
		return candidate.Candidate{}, fmt.Errorf("get candidate: %w", err)
	}
	return m.toDomain()
}

// List pushes the score criterion into SQL. Text and skills are matched in
// Go by candidate.Filter, since lower() folds ASCII only and skills are a
// JSON array.
func (r candidateRepository) List(ctx context.Context, f candidate.Filter) ([]candidate.Candidate, error) {
	q := r.db.WithContext(ctx).Order("seq")
	if f.MinScore != nil {
		q = q.Where("score >= ?", *f.MinScore)
	}

	var rows []candidateModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	out := make([]candidate.Candidate, 0, len(rows))
	for _, m := range rows {
		c, err := m.toDomain()
		if err != nil {
			return nil, fmt.Errorf("decode candidate %s: %w", m.ID, err)
		}
		if f.Matches(c) {
			out = append(out, c)
		}
	}
	return out, nil
}
