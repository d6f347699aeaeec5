package repository

import (
	"context"
	"errors"

	"github.com/blaisecz/gym-dashboard/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WizardSessionRepository interface {
	Create(ctx context.Context, session *domain.WizardSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WizardSession, error)
	Update(ctx context.Context, session *domain.WizardSession) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type wizardSessionRepository struct {
	db *gorm.DB
}

func NewWizardSessionRepository(db *gorm.DB) WizardSessionRepository {
	return &wizardSessionRepository{db: db}
}

func (r *wizardSessionRepository) Create(ctx context.Context, session *domain.WizardSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *wizardSessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.WizardSession, error) {
	var session domain.WizardSession
	err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *wizardSessionRepository) Update(ctx context.Context, session *domain.WizardSession) error {
	result := r.db.WithContext(ctx).Model(session).Select("state", "updated_at").Updates(session)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *wizardSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.WizardSession{}, "id = ?", id).Error
}
