package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	gserrors "gitstrap.dev/gitstrap/internal/errors"
)

// GitSetting is a single `git config --local` key/value pair
type GitSetting struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// Command renders the setting as a git config command line
func (s GitSetting) Command() string {
	return fmt.Sprintf("git config --local %s %s", s.Key, s.Value)
}

// Profile describes what gitstrap lays down in a project
type Profile struct {
	GitSettings     []GitSetting `yaml:"gitSettings"`
	PlaceholderDirs []string     `yaml:"placeholderDirs"`
	Marker          string       `yaml:"marker"`
	CommitMessage   string       `yaml:"commitMessage"`
	HookCommands    []string     `yaml:"hookCommands"`
	RemoteURL       string       `yaml:"remoteURL"`
	Branch          string       `yaml:"branch"`
}

// profileFile mirrors Profile with optional fields so a partial document
// only overrides the keys it names.
type profileFile struct {
	GitSettings     *[]GitSetting `yaml:"gitSettings"`
	PlaceholderDirs *[]string     `yaml:"placeholderDirs"`
	Marker          *string       `yaml:"marker"`
	CommitMessage   *string       `yaml:"commitMessage"`
	HookCommands    *[]string     `yaml:"hookCommands"`
	RemoteURL       *string       `yaml:"remoteURL"`
	Branch          *string       `yaml:"branch"`
}

// DefaultProfile returns the research project layout
func DefaultProfile() *Profile {
	return &Profile{
		GitSettings: []GitSetting{
			{Key: "core.autocrlf", Value: "true"},
			{Key: "pull.rebase", Value: "false"},
			{Key: "init.defaultBranch", Value: "main"},
		},
		PlaceholderDirs: []string{
			"data/raw_documents",
			"data/ground_truth",
			"experiments/results/raw",
			"logs",
		},
		Marker:        ".gitkeep",
		CommitMessage: "Initial commit: Project structure and configuration",
		HookCommands: []string{
			"pip install pre-commit",
			"pre-commit install",
		},
		RemoteURL: "https://github.com/HamidOna/multi-agent-coordination-benchmark.git",
		Branch:    "main",
	}
}

// LoadProfile returns the default profile overlaid with the YAML document at
// path. An empty path returns the defaults.
func LoadProfile(path string) (*Profile, error) {
	profile := DefaultProfile()
	if path == "" {
		return profile, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var file profileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	profile.apply(&file)

	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}

func (p *Profile) apply(f *profileFile) {
	if f.GitSettings != nil {
		p.GitSettings = *f.GitSettings
	}
	if f.PlaceholderDirs != nil {
		p.PlaceholderDirs = *f.PlaceholderDirs
	}
	if f.Marker != nil {
		p.Marker = *f.Marker
	}
	if f.CommitMessage != nil {
		p.CommitMessage = *f.CommitMessage
	}
	if f.HookCommands != nil {
		p.HookCommands = *f.HookCommands
	}
	if f.RemoteURL != nil {
		p.RemoteURL = *f.RemoteURL
	}
	if f.Branch != nil {
		p.Branch = *f.Branch
	}
}

// Validate checks that the profile can be applied to a project directory
func (p *Profile) Validate() error {
	for i, s := range p.GitSettings {
		if strings.TrimSpace(s.Key) == "" {
			return gserrors.NewProfileError(fmt.Sprintf("gitSettings[%d]", i), "key is empty")
		}
		if strings.ContainsAny(s.Key+s.Value, " \t\n") {
			return gserrors.NewProfileError(fmt.Sprintf("gitSettings[%d]", i), "key and value must not contain whitespace")
		}
	}
	for i, dir := range p.PlaceholderDirs {
		field := fmt.Sprintf("placeholderDirs[%d]", i)
		if strings.TrimSpace(dir) == "" {
			return gserrors.NewProfileError(field, "directory is empty")
		}
		clean := filepath.Clean(filepath.FromSlash(dir))
		if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
			return gserrors.NewProfileError(field, fmt.Sprintf("%q must stay inside the project", dir))
		}
	}
	if p.Marker == "" || strings.ContainsAny(p.Marker, `/\`) {
		return gserrors.NewProfileError("marker", "must be a plain file name")
	}
	if strings.TrimSpace(p.CommitMessage) == "" {
		return gserrors.NewProfileError("commitMessage", "is empty")
	}
	if p.Branch == "" {
		return gserrors.NewProfileError("branch", "is empty")
	}
	return nil
}

// CommitCommand renders the initial commit command line
func (p *Profile) CommitCommand() string {
	return "git commit -m " + shellQuote(p.CommitMessage)
}

// shellQuote double-quotes s when nothing inside would be expanded by sh,
// and falls back to single quotes otherwise.
func shellQuote(s string) string {
	if !strings.ContainsAny(s, "\"$`\\!") {
		return `"` + s + `"`
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
