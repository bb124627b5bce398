package cli

import (
	"bufio"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/culler/pkg/cli/config"
	"github.com/secmon-lab/culler/pkg/service/scim"
	"golang.org/x/term"
)

// connect builds the SCIM client and verifies connectivity before any run.
// A TLS trust failure offers an interactive override on a terminal; any
// other failure, or a declined override, aborts the run.
func connect(ctx context.Context, cfg *config.SCIM) (*scim.Client, error) {
	logger := ctxlog.From(ctx)

	client := cfg.Configure()
	logger.Info("Testing SCIM connection",
		"endpoint", client.UsersEndpoint(),
		"tier", client.Tier().String())

	err := client.CheckConnection(ctx)
	if err == nil {
		logger.Info("SCIM connection successful")
		return client, nil
	}

	var certErr *tls.CertificateVerificationError
	if !cfg.Insecure && errors.As(err, &certErr) && confirmInsecure(cfg.URL) {
		logger.Warn("Proceeding without TLS verification", "url", cfg.URL)
		cfg.Insecure = true
		client = cfg.Configure()
		if err := client.CheckConnection(ctx); err != nil {
			return nil, err
		}
		return client, nil
	}

	return nil, err
}

// confirmInsecure asks whether to proceed without TLS verification. Only a
// terminal can answer; non-interactive runs always decline.
func confirmInsecure(siteURL string) bool {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false
	}

	fmt.Fprintf(os.Stderr, "Received a TLS certificate error when connecting to %s.\n", siteURL)
	fmt.Fprint(os.Stderr, "If you're sure the URL is correct (and trusted), you can proceed without TLS verification.\n")
	fmt.Fprint(os.Stderr, "Proceed without TLS verification? (y/n) ")

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}
