package cli_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gitstrap.dev/gitstrap/internal/templates"
	"gitstrap.dev/gitstrap/testhelpers"
)

func TestSetupCommand(t *testing.T) {
	t.Parallel()

	t.Run("bootstraps a fresh directory", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		profile := testhelpers.WriteProfile(t, testhelpers.QuietProfile)

		output, err := runGitstrap(t, scene.Dir, "", "--config", profile)
		require.NoError(t, err, "gitstrap failed: %s", output)

		require.Contains(t, output, "🔧 Configuring Git repository...")
		require.Contains(t, output, "📝 Creating initial commit...")
		require.Contains(t, output, "🔨 Setting up pre-commit hooks...")
		require.Contains(t, output, "🚀 Creating GitHub Actions workflow...")
		require.Contains(t, output, "🎉 Git infrastructure setup complete!")
		require.Contains(t, output, "git remote add origin https://github.com/HamidOna/multi-agent-coordination-benchmark.git")
		require.Contains(t, output, "git push -u origin main")

		for _, tmpl := range templates.All() {
			data, err := os.ReadFile(filepath.Join(scene.Dir, filepath.FromSlash(tmpl.Path)))
			require.NoError(t, err)
			require.Equal(t, tmpl.Bytes(), data)
		}
		require.FileExists(t, filepath.Join(scene.Dir, "data", "ground_truth", ".gitkeep"))
	})

	t.Run("declining on stdin keeps the repository and skips hooks", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewRepoScene(t, nil)
		profile := testhelpers.WriteProfile(t, testhelpers.QuietProfile)

		output, err := runGitstrap(t, scene.Dir, "n\n", "--config", profile)
		require.NoError(t, err, "gitstrap failed: %s", output)

		require.Contains(t, output, "⚠️  Git repository already initialized")
		require.Contains(t, output, "Reinitialize? (y/n): ")
		require.NotContains(t, output, "Creating initial commit")
		require.NoFileExists(t, filepath.Join(scene.Dir, ".pre-commit-config.yaml"))
		require.FileExists(t, filepath.Join(scene.Dir, ".github", "workflows", "ci.yml"))
		require.Contains(t, output, "🎉 Git infrastructure setup complete!")
	})

	t.Run("answering y reinitializes", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewRepoScene(t, nil)
		profile := testhelpers.WriteProfile(t, testhelpers.QuietProfile)

		output, err := runGitstrap(t, scene.Dir, "y\n", "--config", profile)
		require.NoError(t, err, "gitstrap failed: %s", output)
		require.Contains(t, output, "✅ Git repository initialized successfully!")

		subject, err := scene.Repo.RunGitCommandAndGetOutput("log", "-1", "--format=%s")
		require.NoError(t, err)
		require.Equal(t, "Initial commit: Project structure and configuration", subject)
	})

	t.Run("--yes skips the prompt", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewRepoScene(t, nil)
		profile := testhelpers.WriteProfile(t, testhelpers.QuietProfile)

		output, err := runGitstrap(t, scene.Dir, "", "--yes", "--config", profile)
		require.NoError(t, err, "gitstrap failed: %s", output)
		require.NotContains(t, output, "Reinitialize?")
		require.FileExists(t, filepath.Join(scene.Dir, ".pre-commit-config.yaml"))
	})

	t.Run("--no-interactive declines without reading stdin", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewRepoScene(t, nil)
		profile := testhelpers.WriteProfile(t, testhelpers.QuietProfile)

		output, err := runGitstrap(t, scene.Dir, "y\n", "--no-interactive", "--config", profile)
		require.NoError(t, err, "gitstrap failed: %s", output)
		require.NoFileExists(t, filepath.Join(scene.Dir, ".pre-commit-config.yaml"))
	})

	t.Run("failing hook install still exits zero", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		profile := testhelpers.WriteProfile(t, "hookCommands: ['exit 3']\n")

		output, err := runGitstrap(t, scene.Dir, "", "--config", profile)
		require.NoError(t, err, "gitstrap failed: %s", output)
		require.Contains(t, output, "Error running command: exit 3")
		require.Contains(t, output, "1 command(s) failed during setup")
		require.FileExists(t, filepath.Join(scene.Dir, ".github", "workflows", "ci.yml"))
	})

	t.Run("--dir targets another directory", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		elsewhere := t.TempDir()
		profile := testhelpers.WriteProfile(t, testhelpers.QuietProfile)

		output, err := runGitstrap(t, elsewhere, "", "--dir", scene.Dir, "--config", profile)
		require.NoError(t, err, "gitstrap failed: %s", output)
		require.DirExists(t, filepath.Join(scene.Dir, ".git"))
		require.NoDirExists(t, filepath.Join(elsewhere, ".git"))
	})

	t.Run("--quiet prints nothing", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		profile := testhelpers.WriteProfile(t, testhelpers.QuietProfile)

		output, err := runGitstrap(t, scene.Dir, "", "--quiet", "--config", profile)
		require.NoError(t, err, "gitstrap failed: %s", output)
		require.Empty(t, output)
		require.DirExists(t, filepath.Join(scene.Dir, "logs"))
	})

	t.Run("invalid profile fails before touching the directory", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		profile := testhelpers.WriteProfile(t, "placeholderDirs: ['/abs']\n")

		output, err := runGitstrap(t, scene.Dir, "", "--config", profile)
		require.Error(t, err)
		var exitErr *exec.ExitError
		require.ErrorAs(t, err, &exitErr)
		require.Equal(t, 1, exitErr.ExitCode())
		require.Contains(t, output, "invalid profile")
		require.Empty(t, testhelpers.Layout(t, scene.Dir)[1:])
	})

	t.Run("writes a log file when requested", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		profile := testhelpers.WriteProfile(t, testhelpers.QuietProfile)
		logPath := filepath.Join(t.TempDir(), "gitstrap.log")

		cmd := exec.Command(getGitstrapBinary(t), "--config", profile)
		cmd.Dir = scene.Dir
		cmd.Env = append(os.Environ(), testhelpers.GitEnv()...)
		cmd.Env = append(cmd.Env, "GITSTRAP_TEST_NO_INTERACTIVE=1", "GITSTRAP_LOG_FILE="+logPath)
		output, err := cmd.CombinedOutput()
		require.NoError(t, err, "gitstrap failed: %s", output)

		data, err := os.ReadFile(logPath)
		require.NoError(t, err)
		require.Contains(t, string(data), "$ git init")
	})
}
