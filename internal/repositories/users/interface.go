package users

import (
	"context"

	"github.com/dmitrijs2005/peoplekeeper/internal/models"
)

// Repository loads and stores the full credential collection.
type Repository interface {
	Load(ctx context.Context) ([]models.User, error)
	Save(ctx context.Context, users []models.User) error
}
