package sqlite

import (
	"context"
	"errors"
	"fmt"

	"jobmatch/internal/domain/user"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userRepository struct {
	db *gorm.DB
}

func (r userRepository) Create(ctx context.Context, u user.User) error {
	m := toUserModel(u)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&userModel{}).Where("email = ?", m.Email).Count(&n).Error; err != nil {
			return fmt.Errorf("count users by email: %w", err)
		}
		if n > 0 {
			return user.ErrEmailTaken
		}
		if err := tx.Create(&m).Error; err != nil {
			return fmt.Errorf("insert user: %w", err)
		}
		return nil
	})
}

func (r userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, fmt.Errorf("get user: %w", err)
	}
	return m.toDomain(), nil
}

func (r userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).Where("email = ?", user.NormalizeEmail(email)).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, fmt.Errorf("get user by email: %w", err)
	}
	return m.toDomain(), nil
}

func (r userRepository) List(ctx context.Context, role user.Role) ([]user.User, error) {
	q := r.db.WithContext(ctx).Order("seq")
	if role != "" {
		q = q.Where("role = ?", string(role))
	}

	var rows []userModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]user.User, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toDomain())
	}
	return out, nil
}

type tokenRepository struct {
	db *gorm.DB
}

func (r tokenRepository) Save(ctx context.Context, token, userID string) error {
	m := tokenModel{Token: token, UserID: userID}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id"}),
	}).Create(&m).Error
	if err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (r tokenRepository) UserID(ctx context.Context, token string) (string, error) {
	var m tokenModel
	if err := r.db.WithContext(ctx).Where("token = ?", token).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", user.ErrTokenUnknown
		}
		return "", fmt.Errorf("lookup token: %w", err)
	}
	return m.UserID, nil
}
