package cli

import (
	"bufio"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/culler/pkg/domain/types"
)

// readEmailFile reads a target list of one email address per line. Blank
// lines are skipped; order is preserved.
func readEmailFile(path string) ([]types.Email, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open email file", goerr.V("path", path))
	}
	defer f.Close()

	var emails []types.Email
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		emails = append(emails, types.Email(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to read email file", goerr.V("path", path))
	}

	if len(emails) == 0 {
		return nil, goerr.New("email file contains no addresses", goerr.V("path", path))
	}
	return emails, nil
}
