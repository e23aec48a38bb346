package sqlite

import (
	"context"
	"errors"
	"fmt"

	"jobmatch/internal/domain/job"

	"gorm.io/gorm"
)

type jobRepository struct {
	db *gorm.DB
}

func (r jobRepository) Create(ctx context.Context, j job.Job) error {
	m, err := toJobModel(j)
	if err != nil {
		return fmt.Errorf("encode job: %w", err)
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

func (r jobRepository) GetByID(ctx context.Context, id string) (job.Job, error) {
	m, err := findJob(r.db.WithContext(ctx), id)
	if err != nil {
		return job.Job{}, err
	}
	return m.toDomain()
}

// List filters in Go: SQLite's lower() folds ASCII only, and the text match
// must agree with job.Filter.Matches.
func (r jobRepository) List(ctx context.Context, f job.Filter) ([]job.Job, error) {
	var rows []jobModel
	if err := r.db.WithContext(ctx).Order("seq").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	out := make([]job.Job, 0, len(rows))
	for _, m := range rows {
		j, err := m.toDomain()
		if err != nil {
			return nil, fmt.Errorf("decode job %s: %w", m.ID, err)
		}
		if f.Matches(j) {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r jobRepository) Update(ctx context.Context, id string, p job.Patch) (job.Job, error) {
	var updated job.Job
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := findJob(tx, id)
		if err != nil {
			return err
		}
		cur, err := m.toDomain()
		if err != nil {
			return fmt.Errorf("decode job: %w", err)
		}

		updated = p.Apply(cur)
		next, err := toJobModel(updated)
		if err != nil {
			return fmt.Errorf("encode job: %w", err)
		}
		next.Seq = m.Seq
		if err := tx.Save(&next).Error; err != nil {
			return fmt.Errorf("save job: %w", err)
		}
		return nil
	})
	if err != nil {
		return job.Job{}, err
	}
	return updated, nil
}

func (r jobRepository) Delete(ctx context.Context, id string) (job.Job, error) {
	var removed job.Job
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := findJob(tx, id)
		if err != nil {
			return err
		}
		removed, err = m.toDomain()
		if err != nil {
			return fmt.Errorf("decode job: %w", err)
		}
		if err := tx.Delete(&jobModel{}, m.Seq).Error; err != nil {
			return fmt.Errorf("delete job: %w", err)
		}
		return nil
	})
	if err != nil {
		return job.Job{}, err
	}
	return removed, nil
}

func findJob(db *gorm.DB, id string) (jobModel, error) {
	var m jobModel
	if err := db.Where("id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jobModel{}, job.ErrNotFound
		}
		return jobModel{}, fmt.Errorf("get job: %w", err)
	}
	return m, nil
}
