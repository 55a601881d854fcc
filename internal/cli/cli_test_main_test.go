package cli_test

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	"gitstrap.dev/gitstrap/testhelpers"
)

func TestMain(m *testing.M) {
	testhelpers.TestMain(m, nil)
}

// getGitstrapBinary returns the path to the pre-built gitstrap binary.
func getGitstrapBinary(t *testing.T) string {
	t.Helper()
	binaryPath := testhelpers.GetSharedBinaryPath()
	if binaryPath == "" {
		if err := testhelpers.GetBinaryError(); err != nil {
			t.Fatalf("failed to build gitstrap binary: %v", err)
		}
		t.Fatal("gitstrap binary not built")
	}
	return binaryPath
}

// runGitstrap runs the binary in dir with stdin fed from input and returns
// the combined output.
func runGitstrap(t *testing.T, dir, input string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(getGitstrapBinary(t), args...)
	cmd.Dir = dir
	cmd.Stdin = strings.NewReader(input)
	cmd.Env = append(os.Environ(), testhelpers.GitEnv()...)
	cmd.Env = append(cmd.Env, "GITSTRAP_TEST_NO_INTERACTIVE=1", "NO_COLOR=1")
	output, err := cmd.CombinedOutput()
	return string(output), err
}
