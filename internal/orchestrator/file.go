package orchestrator

import (
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// File is a selected local file, fully loaded in memory.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

func (f File) Size() int64 {
	return int64(len(f.Content))
}

// FileFromPath reads a file and sniffs its MIME type from the content.
func FileFromPath(path string) (File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	return File{
		Name:        filepath.Base(path),
		ContentType: mimetype.Detect(content).String(),
		Content:     content,
	}, nil
}
