package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	gserrors "gitstrap.dev/gitstrap/internal/errors"
)

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gitstrap.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestDefaultProfile(t *testing.T) {
	t.Parallel()

	p := DefaultProfile()
	require.NoError(t, p.Validate())
	require.Equal(t, []string{
		"git config --local core.autocrlf true",
		"git config --local pull.rebase false",
		"git config --local init.defaultBranch main",
	}, []string{p.GitSettings[0].Command(), p.GitSettings[1].Command(), p.GitSettings[2].Command()})
	require.Equal(t, []string{"data/raw_documents", "data/ground_truth", "experiments/results/raw", "logs"}, p.PlaceholderDirs)
	require.Equal(t, ".gitkeep", p.Marker)
	require.Equal(t, `git commit -m "Initial commit: Project structure and configuration"`, p.CommitCommand())
	require.Equal(t, []string{"pip install pre-commit", "pre-commit install"}, p.HookCommands)
}

func TestLoadProfile(t *testing.T) {
	t.Parallel()

	t.Run("empty path returns defaults", func(t *testing.T) {
		t.Parallel()
		p, err := LoadProfile("")
		require.NoError(t, err)
		require.Equal(t, DefaultProfile(), p)
	})

	t.Run("overrides only the keys present", func(t *testing.T) {
		t.Parallel()
		path := writeProfile(t, `
hookCommands:
  - "true"
placeholderDirs: [notebooks]
`)
		p, err := LoadProfile(path)
		require.NoError(t, err)
		require.Equal(t, []string{"true"}, p.HookCommands)
		require.Equal(t, []string{"notebooks"}, p.PlaceholderDirs)
		require.Equal(t, DefaultProfile().GitSettings, p.GitSettings)
		require.Equal(t, DefaultProfile().CommitMessage, p.CommitMessage)
	})

	t.Run("explicit empty list clears defaults", func(t *testing.T) {
		t.Parallel()
		p, err := LoadProfile(writeProfile(t, "hookCommands: []\n"))
		require.NoError(t, err)
		require.Empty(t, p.HookCommands)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		t.Parallel()
		_, err := LoadProfile(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorContains(t, err, "failed to read profile")
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		t.Parallel()
		_, err := LoadProfile(writeProfile(t, "gitSettings: {not: [a list"))
		require.ErrorContains(t, err, "failed to parse profile")
	})

	t.Run("escaping placeholder dir is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := LoadProfile(writeProfile(t, "placeholderDirs: ['../outside']\n"))
		require.Error(t, err)
		require.True(t, errors.Is(err, gserrors.ErrInvalidProfile))
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(p *Profile)
		field  string
	}{
		{"empty setting key", func(p *Profile) { p.GitSettings = []GitSetting{{Value: "x"}} }, "gitSettings[0]"},
		{"whitespace in value", func(p *Profile) { p.GitSettings = []GitSetting{{Key: "a.b", Value: "x y"}} }, "gitSettings[0]"},
		{"absolute dir", func(p *Profile) { p.PlaceholderDirs = []string{"/tmp/x"} }, "placeholderDirs[0]"},
		{"blank dir", func(p *Profile) { p.PlaceholderDirs = []string{"logs", " "} }, "placeholderDirs[1]"},
		{"marker with slash", func(p *Profile) { p.Marker = "a/b" }, "marker"},
		{"empty commit message", func(p *Profile) { p.CommitMessage = "" }, "commitMessage"},
		{"empty branch", func(p *Profile) { p.Branch = "" }, "branch"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := DefaultProfile()
			tt.mutate(p)
			err := p.Validate()

			var perr *gserrors.ProfileError
			require.True(t, errors.As(err, &perr))
			require.Equal(t, tt.field, perr.Field)
		})
	}
}

func TestCommitCommandQuoting(t *testing.T) {
	t.Parallel()

	p := DefaultProfile()
	p.CommitMessage = "costs $5 and it's `fine`"
	require.Equal(t, `git commit -m 'costs $5 and it'\''s `+"`fine`'", p.CommitCommand())
}
