package audit

import (
	"context"

	"github.com/dmitrijs2005/peoplekeeper/internal/filex"
)

type FileWriter struct {
	path string
}

func NewFileWriter(path string) *FileWriter {
	return &FileWriter{path: path}
}

func (w *FileWriter) Write(_ context.Context, e Event) error {
	return filex.AppendLine(w.path, e.ToLogLine())
}
