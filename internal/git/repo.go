package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// MarkerDir is the metadata directory whose presence marks an initialized repository
const MarkerDir = ".git"

// HasMarker reports whether dir already contains a repository marker
func HasMarker(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, MarkerDir))
	return err == nil
}

// OpenRepository opens the repository rooted at dir
func OpenRepository(dir string) (*gogit.Repository, error) {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("not a git repository: %s", dir)
		}
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}
	return repo, nil
}

// LocalSetting returns the value of a dotted key (section.key or
// section.subsection.key) from the repository's local config.
// Missing keys return "".
func LocalSetting(repo *gogit.Repository, key string) (string, error) {
	cfg, err := repo.Config()
	if err != nil {
		return "", fmt.Errorf("failed to read repository config: %w", err)
	}

	parts := strings.Split(key, ".")
	if len(parts) < 2 {
		return "", fmt.Errorf("invalid config key %q", key)
	}

	section := parts[0]
	name := parts[len(parts)-1]
	if !cfg.Raw.HasSection(section) {
		return "", nil
	}
	sec := cfg.Raw.Section(section)
	if len(parts) == 2 {
		return sec.Option(name), nil
	}

	subsection := strings.Join(parts[1:len(parts)-1], ".")
	if !sec.HasSubsection(subsection) {
		return "", nil
	}
	return sec.Subsection(subsection).Option(name), nil
}

// HeadInfo describes the commit HEAD points at
type HeadInfo struct {
	Branch  string
	Hash    string
	Subject string
}

// Head returns the current branch and HEAD commit subject
func Head(repo *gogit.Repository) (HeadInfo, error) {
	ref, err := repo.Head()
	if err != nil {
		return HeadInfo{}, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	commit, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return HeadInfo{}, fmt.Errorf("failed to read HEAD commit: %w", err)
	}

	subject, _, _ := strings.Cut(commit.Message, "\n")
	return HeadInfo{
		Branch:  ref.Name().Short(),
		Hash:    ref.Hash().String(),
		Subject: subject,
	}, nil
}

// TrackedInHead reports whether path (slash separated, relative to the
// repository root) is part of the HEAD commit's tree.
func TrackedInHead(repo *gogit.Repository, path string) (bool, error) {
	ref, err := repo.Head()
	if err != nil {
		return false, fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	commit, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return false, fmt.Errorf("failed to read HEAD commit: %w", err)
	}
	if _, err := commit.File(path); err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
