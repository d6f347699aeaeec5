package repository

import (
	"context"
	"fmt"

	"github.com/blaisecz/gym-dashboard/internal/domain"
	"github.com/blaisecz/gym-dashboard/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubmissionRepository interface {
	Create(ctx context.Context, submission *domain.ProfileSubmission) error
	List(ctx context.Context, clientID uuid.UUID, filter domain.SubmissionFilter) ([]domain.ProfileSubmission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(ctx context.Context, submission *domain.ProfileSubmission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

// List returns up to limit+1 submissions, newest first, so the caller can tell
// whether another page exists.
func (r *submissionRepository) List(ctx context.Context, clientID uuid.UUID, filter domain.SubmissionFilter) ([]domain.ProfileSubmission, error) {
	query := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Order("id DESC")

	cursor, err := pagination.DecodeCursor(filter.Cursor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if cursor != nil {
		query = query.Where(
			"(created_at < ?) OR (created_at = ? AND id < ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
		)
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var submissions []domain.ProfileSubmission
	if err := query.Find(&submissions).Error; err != nil {
		return nil, err
	}

	return submissions, nil
}
