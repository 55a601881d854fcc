package testhelpers

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Scene represents a test scene: an empty project directory, optionally
// already holding a Git repository.
type Scene struct {
	Dir  string
	Repo *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates an empty project directory. It does not change the
// process working directory, so scenes are safe in parallel tests.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()
	scene := &Scene{Dir: t.TempDir()}
	if setup != nil {
		require.NoError(t, setup(scene), "scene setup failed")
	}
	return scene
}

// NewRepoScene creates a project directory that already contains a Git
// repository with one commit.
func NewRepoScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()
	return NewScene(t, func(s *Scene) error {
		repo, err := NewGitRepo(s.Dir)
		if err != nil {
			return err
		}
		s.Repo = repo
		if err := repo.CreateChangeAndCommit("1", "1"); err != nil {
			return err
		}
		if setup != nil {
			return setup(s)
		}
		return nil
	})
}

// WriteProfile writes a profile document outside the scene directory and
// returns its path.
func WriteProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gitstrap.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

// QuietProfile replaces the pre-commit install commands with no-ops so tests
// never reach for pip or the network.
const QuietProfile = "hookCommands:\n  - \"true\"\n"

// Snapshot records every path under dir with its file content, including
// repository metadata. Two equal snapshots mean nothing was touched.
func Snapshot(t *testing.T, dir string) map[string]string {
	t.Helper()
	snap := map[string]string{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(dir, path)
		if d.IsDir() {
			snap[rel] = "<dir>"
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		snap[rel] = string(data)
		return nil
	})
	require.NoError(t, err)
	return snap
}

// Layout lists the working tree paths under dir, skipping the .git directory.
func Layout(t *testing.T, dir string) []string {
	t.Helper()
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(dir, path)
		if rel == ".git" || strings.HasPrefix(rel, ".git"+string(filepath.Separator)) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	require.NoError(t, err)
	sort.Strings(paths)
	return paths
}
