//go:build e2e

package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var pkghashBinary string

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "pkghash-e2e-*")
	if err != nil {
		panic(err)
	}

	pkghashBinary = filepath.Join(tmpDir, "pkghash")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", pkghashBinary, "./cmd/pkghash")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic("failed to build pkghash binary: " + err.Error())
	}

	exitCode := m.Run()

	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
		Cmds: map[string]func(ts *testscript.TestScript, neg bool, args []string){
			// stdout2env stores the trimmed stdout of the previous command in an environment variable.
			"stdout2env": func(ts *testscript.TestScript, neg bool, args []string) {
				if neg || len(args) != 1 {
					ts.Fatalf("usage: stdout2env NAME")
				}
				ts.Setenv(args[0], strings.TrimSpace(ts.ReadFile("stdout")))
			},
		},
	})
}

func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")
	env.Setenv("CI", "true")
	env.Setenv("PKGHASH_SKIP_DOTENV", "1")
	env.Setenv("PKGHASH_TRACER", "none")

	binDir := filepath.Dir(pkghashBinary)
	currentPath := env.Getenv("PATH")
	env.Setenv("PATH", binDir+string(os.PathListSeparator)+currentPath)

	homeDir := filepath.Join(env.WorkDir, ".home")
	if err := os.MkdirAll(homeDir, 0o750); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	env.Setenv("GIT_AUTHOR_NAME", "e2e")
	env.Setenv("GIT_AUTHOR_EMAIL", "e2e@example.com")
	env.Setenv("GIT_COMMITTER_NAME", "e2e")
	env.Setenv("GIT_COMMITTER_EMAIL", "e2e@example.com")

	return nil
}
