package sqlite

import (
	"context"
	"errors"
	"fmt"

	"jobmatch/internal/domain/application"

	"gorm.io/gorm"
)

type applicationRepository struct {
	db *gorm.DB
}

func (r applicationRepository) Create(ctx context.Context, a application.Application) error {
	m := toApplicationModel(a)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		err := tx.Model(&applicationModel{}).
			Where("job_id = ? AND candidate_id = ?", m.JobID, m.CandidateID).
			Count(&n).Error
		if err != nil {
			return fmt.Errorf("count applications: %w", err)
		}
		if n > 0 {
			return application.ErrDuplicate
		}
		if err := tx.Create(&m).Error; err != nil {
			return fmt.Errorf("insert application: %w", err)
		}
		return nil
	})
}

func (r applicationRepository) GetByID(ctx context.Context, id string) (application.Application, error) {
	m, err := findApplication(r.db.WithContext(ctx), id)
	if err != nil {
		return application.Application{}, err
	}
	return m.toDomain(), nil
}

func (r applicationRepository) ListByJob(ctx context.Context, jobID string) ([]application.Application, error) {
	var rows []applicationModel
	if err := r.db.WithContext(ctx).Where("job_id = ?", jobID).Order("seq").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	out := make([]application.Application, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toDomain())
	}
	return out, nil
}

// Update loads the row, lets fn mutate it and writes it back in one
// transaction. Nothing is written when fn fails.
func (r applicationRepository) Update(ctx context.Context, id string, fn func(*application.Application) error) (application.Application, error) {
	var updated application.Application
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := findApplication(tx, id)
		if err != nil {
			return err
		}

		a := m.toDomain()
		if err := fn(&a); err != nil {
			return err
		}

		next := toApplicationModel(a)
		next.Seq = m.Seq
		if err := tx.Save(&next).Error; err != nil {
			return fmt.Errorf("save application: %w", err)
		}
		updated = a
		return nil
	})
	if err != nil {
		return application.Application{}, err
	}
	return updated, nil
}

func findApplication(db *gorm.DB, id string) (applicationModel, error) {
	var m applicationModel
	if err := db.Where("id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return applicationModel{}, application.ErrNotFound
		}
		return applicationModel{}, fmt.Errorf("get application: %w", err)
	}
	return m, nil
}
