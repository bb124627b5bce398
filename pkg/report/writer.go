package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/culler/pkg/domain/model"
)

// Writer persists run reports as timestamped JSON artifacts so repeated
// runs never overwrite each other.
type Writer struct {
	dir string
}

// NewWriter creates a writer targeting the given directory
func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = "."
	}
	return &Writer{dir: dir}
}

// Write serializes the report and returns the path of the written artifact
func (w *Writer) Write(r *model.Report) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", goerr.Wrap(err, "failed to create report directory", goerr.V("dir", w.dir))
	}

	name := fmt.Sprintf("deletion-report-%s.json", r.FinishedAt.UTC().Format("20060102-150405"))
	path := filepath.Join(w.dir, name)

	encoded, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", goerr.Wrap(err, "failed to encode report")
	}
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return "", goerr.Wrap(err, "failed to write report", goerr.V("path", path))
	}
	return path, nil
}
