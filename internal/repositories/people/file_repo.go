package people

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

func (r *FileRepository) Path() string {
	return r.path
}

func (r *FileRepository) Load(ctx context.Context) ([]models.Person, error) {
	lines, err := filex.ReadLines(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.log.Info(ctx, "people file not found, starting empty")
			return []models.Person{}, nil
		}
		return nil, fmt.Errorf("load people: %w: %w", common.ErrIO, err)
	}

	result := make([]models.Person, 0, len(lines))
	seen := make(map[int]struct{}, len(lines))
	for i, line := range lines {
		p, ok := ParseLine(line)
		if !ok {
			r.log.Debug(ctx, "skipping malformed person line", "line", i+1)
			continue
		}
		if _, dup := seen[p.ID]; dup {
			r.log.Warn(ctx, "skipping duplicate person id", "line", i+1, "id", p.ID)
			continue
		}
		seen[p.ID] = struct{}{}
		result = append(result, p)
	}
	return result, nil
}

// Save rewrites the whole file. Nothing is written if any record cannot be
// encoded.
func (r *FileRepository) Save(ctx context.Context, people []models.Person) error {
	lines := make([]string, 0, len(people))
	for _, p := range people {
		line, err := FormatLine(p)
		if err != nil {
			return fmt.Errorf("save people: %w", err)
		}
		lines = append(lines, line)
	}

	if err := filex.WriteLines(r.path, lines); err != nil {
		return fmt.Errorf("save people: %w: %w", common.ErrIO, err)
	}
	r.log.Debug(ctx, "people saved", "count", len(people))
	return nil
}
