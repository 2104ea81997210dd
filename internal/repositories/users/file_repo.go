package users

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/dmitrijs2005/peoplekeeper/internal/common"
	"github.com/dmitrijs2005/peoplekeeper/internal/filex"
	"github.com/dmitrijs2005/peoplekeeper/internal/logging"
	"github.com/dmitrijs2005/peoplekeeper/internal/models"
)

type FileRepository struct {
	path string
	log  logging.Logger
}

func NewFileRepository(path string, log logging.Logger) *FileRepository {
	return &FileRepository{path: path, log: log.With("file", path)}
}

func (r *FileRepository) Load(ctx context.Context) ([]models.User, error) {
	lines, err := filex.ReadLines(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.log.Warn(ctx, "credential file not found, starting with no users")
			return []models.User{}, nil
		}
		return nil, fmt.Errorf("load users: %w: %w", common.ErrIO, err)
	}

	result := make([]models.User, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for i, line := range lines {
		u, ok := ParseLine(line)
		if !ok {
			r.log.Debug(ctx, "skipping malformed credential line", "line", i+1)
			continue
		}
		if _, dup := seen[u.Username]; dup {
			r.log.Warn(ctx, "skipping duplicate username", "line", i+1, "user", u.Username)
			continue
		}
		seen[u.Username] = struct{}{}
		result = append(result, u)
	}
	return result, nil
}

func (r *FileRepository) Save(ctx context.Context, users []models.User) error {
	lines := make([]string, 0, len(users))
	for _, u := range users {
		lines = append(lines, FormatLine(u))
	}

	if err := filex.WriteLines(r.path, lines); err != nil {
		return fmt.Errorf("save users: %w: %w", common.ErrIO, err)
	}
	r.log.Debug(ctx, "credentials saved", "count", len(users))
	return nil
}
