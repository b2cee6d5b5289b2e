package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/Kimnjuki/faceless-sub001/domain/models"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *models.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
}
