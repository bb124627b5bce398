package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/culler/pkg/domain/types"
)

func TestReadEmailFile(t *testing.T) {
	t.Run("One address per line, blanks skipped, order preserved", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "targets.csv")
		content := "alice@example.com\n\n  bob@example.com  \ncarol@example.com\n"
		gt.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		emails, err := readEmailFile(path)
		gt.NoError(t, err)
		gt.Equal(t, emails, []types.Email{
			"alice@example.com",
			"bob@example.com",
			"carol@example.com",
		})
	})

	t.Run("Missing file is an error", func(t *testing.T) {
		_, err := readEmailFile(filepath.Join(t.TempDir(), "nope.csv"))
		gt.Error(t, err)
	})

	t.Run("Empty file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.csv")
		gt.NoError(t, os.WriteFile(path, []byte("\n\n"), 0o644))

		_, err := readEmailFile(path)
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("no addresses")
	})
}
