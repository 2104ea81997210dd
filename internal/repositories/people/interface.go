package people

import (
	"context"

	"github.com/dmitrijs2005/peoplekeeper/internal/models"
)

// Repository loads and stores the full person collection.
type Repository interface {
	Load(ctx context.Context) ([]models.Person, error)
	Save(ctx context.Context, people []models.Person) error
	// Path names the backing file, used for backups.
	Path() string
}
