package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptoprobe/internal/domain"
	"cryptoprobe/internal/store"
)

// run executes the CLI against a fresh config file holding content.
func run(t *testing.T, content string, args ...string) (string, string, error) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("report:\n  dir: "+dir+"\n"+content), 0o600))

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config", path, "--log-level", "none"}, args...))
	err := root.Execute()
	return stdout.String(), dir, err
}

func TestVerify_Secure(t *testing.T) {
	out, _, err := run(t, "", "verify")
	require.NoError(t, err)
	assert.Contains(t, out, "System verified secure.")
}

func TestVerify_ProviderMissing(t *testing.T) {
	_, _, err := run(t, "", "--without-provider", string(domain.AlternateProvider), "verify")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsecureSystem)
	assert.Contains(t, err.Error(), "alternate provider missing")
}

func TestVerify_RestrictedPolicy(t *testing.T) {
	_, _, err := run(t, "policy:\n  limits:\n    AES: 128\n", "verify")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key-length policy insufficient")
}

func TestVerify_WritesReport(t *testing.T) {
	out, dir, err := run(t, "policy:\n  limits:\n    AES: 128\n", "verify", "--report", "ci")
	require.Error(t, err)
	assert.Contains(t, out, "Report written to")

	report, ok, err := store.NewReportFileStore(dir).LoadReport("ci")
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, report.Secure)
	assert.Len(t, report.Fingerprint, 20)
	require.Len(t, report.Checks, 2)
	assert.True(t, report.Checks[0].Passed)
	assert.False(t, report.Checks[1].Passed)
}

func TestCheck(t *testing.T) {
	out, _, err := run(t, "", "check", "provider")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, _, err = run(t, "policy:\n  limits:\n    AES: 128\n", "check", "strength")
	assert.Error(t, err)
	assert.Equal(t, "false\n", out)

	_, _, err = run(t, "", "check", "bogus")
	assert.Error(t, err)
}

func TestProviders(t *testing.T) {
	out, _, err := run(t, "", "providers")
	require.NoError(t, err)
	assert.Contains(t, out, "golang.org/x/crypto: ChaCha20-Poly1305")
	assert.Contains(t, out, "go-stdlib: AES")

	out, _, err = run(t, "", "--without-provider", "golang.org/x/crypto,go-stdlib", "providers")
	require.NoError(t, err)
	assert.Equal(t, "No providers registered.\n", out)
}

func TestPolicy(t *testing.T) {
	out, _, err := run(t, "", "policy")
	require.NoError(t, err)
	assert.Equal(t, "AES: 2147483647 (unlimited)\n", out)

	out, _, err = run(t, "policy:\n  limits:\n    DESede: 112\n", "policy", "DESede")
	require.NoError(t, err)
	assert.Equal(t, "DESede: 112\n", out)

	_, _, err = run(t, "", "policy", "Skipjack")
	assert.ErrorIs(t, err, domain.ErrAlgorithmUnsupported)
}

func TestSelftest(t *testing.T) {
	out, _, err := run(t, "", "selftest")
	require.NoError(t, err)
	assert.Contains(t, out, "golang.org/x/crypto: ok")
	assert.Contains(t, out, "go-stdlib: ok")

	out, _, err = run(t, "", "--without-provider", string(domain.AlternateProvider), "selftest", string(domain.AlternateProvider))
	assert.ErrorIs(t, err, domain.ErrProviderNotFound)
	assert.Contains(t, out, "FAIL")
}

func TestInvalidConfig(t *testing.T) {
	_, _, err := run(t, "policy:\n  limits:\n    AES: 0\n", "verify")
	assert.Error(t, err)
}

func TestVerify_Publish(t *testing.T) {
	var got domain.Report
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	out, _, err := run(t, "  collector: "+srv.URL+"\n", "verify", "--publish")
	require.NoError(t, err)
	assert.Contains(t, out, "Report published for")
	assert.True(t, got.Secure)
	assert.NotEmpty(t, got.Fingerprint)
}

func TestVerify_PublishWithoutCollector(t *testing.T) {
	_, _, err := run(t, "", "verify", "--publish")
	assert.ErrorContains(t, err, "report.collector")
}

func TestVerify_SavedAndPublishedReportsMatch(t *testing.T) {
	var got domain.Report
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	_, dir, err := run(t, "  collector: "+srv.URL+"\n", "verify", "--report", "ci", "--publish")
	require.NoError(t, err)

	saved, ok, err := store.NewReportFileStore(dir).LoadReport("ci")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, saved.GeneratedAt.Equal(got.GeneratedAt))
	assert.Equal(t, saved.Fingerprint, got.Fingerprint)
}
