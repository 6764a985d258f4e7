package repository

import (
	"context"

	"gorm.io/gorm"

	"recipebook/internal/model"
)

// RevokedTokenRepository persists the append-only token denylist.
type RevokedTokenRepository interface {
	// Create records a revoked token. Inserting the same token twice is a no-op.
	Create(ctx context.Context, token string) error
	Exists(ctx context.Context, token string) (bool, error)
}

type revokedTokenRepository struct {
	db *gorm.DB
}

// NewRevokedTokenRepository creates a new revoked token repository.
func NewRevokedTokenRepository(db *gorm.DB) RevokedTokenRepository {
	return &revokedTokenRepository{db: db}
}

func (r *revokedTokenRepository) Create(ctx context.Context, token string) error {
	err := r.db.WithContext(ctx).Create(&model.RevokedToken{Token: token}).Error
	if err != nil && IsDuplicateKey(err) {
		// already revoked
		return nil
	}
	return err
}

func (r *revokedTokenRepository) Exists(ctx context.Context, token string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.RevokedToken{}).
		Where("token = ?", token).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
