package cli

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/evcraddock/propertyhub/internal/listing"
	"github.com/evcraddock/propertyhub/internal/listing/seed"
	"github.com/evcraddock/propertyhub/internal/web"
)

// executeCommand runs a command with the given args and captures output.
func executeCommand(args ...string) (string, error) {
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// isolate points HOME at a temp dir and clears PHUB_* variables.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{"PHUB_DB", "PHUB_PORT", "PHUB_DEV_MODE", "PHUB_SERVER_URL", "PHUB_SEED_FILE", "PHUB_CORS_ORIGINS"} {
		t.Setenv(k, "")
	}
	return home
}

// apiServer starts the listing API over the built-in fixture and returns its URL.
func apiServer(t *testing.T) string {
	t.Helper()
	isolate(t)
	listings, err := seed.Load()
	require.NoError(t, err)

	srv := httptest.NewServer(web.NewServer(listing.NewMemoryStore(listings), web.Options{}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestRootHelp(t *testing.T) {
	_, err := executeCommand("--help")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGlobalFlags(t *testing.T) {
	root := NewRootCmd()

	formatFlag := root.PersistentFlags().Lookup("format")
	if formatFlag == nil {
		t.Fatal("expected --format flag to exist")
	}
	if formatFlag.DefValue != "text" {
		t.Errorf("expected --format default 'text', got %q", formatFlag.DefValue)
	}

	for _, name := range []string{"db", "server"} {
		if root.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected --%s flag to exist", name)
		}
	}
}

func TestCommandsRegistered(t *testing.T) {
	root := NewRootCmd()
	for _, name := range []string{"search", "show", "recent", "featured", "types", "serve", "seed", "config", "status", "version"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("expected %q command", name)
		}
	}
}

func TestVersion(t *testing.T) {
	out, err := executeCommand("version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if out != "dev\n" {
		t.Errorf("version output = %q, want %q", out, "dev\n")
	}
}

func TestArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"show without id", []string{"show"}},
		{"show with two ids", []string{"show", "1", "2"}},
		{"search with positional", []string{"search", "condo"}},
		{"recent with positional", []string{"recent", "4"}},
		{"config set with one arg", []string{"config", "set", "port"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := executeCommand(tt.args...); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
