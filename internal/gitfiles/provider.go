// Package gitfiles lists the files tracked by a git repository.
package gitfiles

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

const (
	gitExecutableName  = "git"
	fileListSeparator  = "\x00"
	defaultDirectory   = "."
	errorListingFormat = "list tracked files in %s: %w"
)

var (
	// ErrNotRepository reports that the directory is not inside a git work tree.
	ErrNotRepository = errors.New("not a git repository")
	// ErrNoTrackedFiles reports that git tracks no files in the directory.
	ErrNoTrackedFiles = errors.New("no git tracked files found")
)

// Provider supplies repository-relative, slash-separated paths of tracked files.
type Provider interface {
	TrackedFiles(ctx context.Context) ([]string, error)
}

// GitProvider runs the git executable against Directory.
type GitProvider struct {
	Directory  string
	Executable string
}

// NewGitProvider returns a provider for directory; an empty directory means the working directory.
func NewGitProvider(directory string) *GitProvider {
	if strings.TrimSpace(directory) == "" {
		directory = defaultDirectory
	}
	return &GitProvider{Directory: directory, Executable: gitExecutableName}
}

// TrackedFiles verifies the repository and returns the output of git ls-files.
func (provider *GitProvider) TrackedFiles(ctx context.Context) ([]string, error) {
	if _, verifyError := provider.run(ctx, "rev-parse", "--git-dir"); verifyError != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotRepository, verifyError)
	}
	output, listError := provider.run(ctx, "ls-files", "-z")
	if listError != nil {
		return nil, fmt.Errorf(errorListingFormat, provider.Directory, listError)
	}
	files := ParseFileList(output)
	if len(files) == 0 {
		return nil, ErrNoTrackedFiles
	}
	return files, nil
}

func (provider *GitProvider) run(ctx context.Context, arguments ...string) (string, error) {
	executable := provider.Executable
	if executable == "" {
		executable = gitExecutableName
	}
	fullArguments := append([]string{"-C", provider.Directory}, arguments...)
	// #nosec G204
	command := exec.CommandContext(ctx, executable, fullArguments...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr
	if runError := command.Run(); runError != nil {
		if message := strings.TrimSpace(stderr.String()); message != "" {
			return "", fmt.Errorf("%s %s: %w: %s", executable, strings.Join(arguments, " "), runError, message)
		}
		return "", fmt.Errorf("%s %s: %w", executable, strings.Join(arguments, " "), runError)
	}
	return stdout.String(), nil
}

// ParseFileList splits NUL- or newline-separated git output into paths, dropping
// empty entries and surrounding line breaks.
func ParseFileList(output string) []string {
	separator := fileListSeparator
	if !strings.Contains(output, fileListSeparator) {
		separator = "\n"
	}
	var files []string
	for _, entry := range strings.Split(output, separator) {
		entry = strings.Trim(entry, "\r\n")
		if entry == "" {
			continue
		}
		files = append(files, entry)
	}
	return files
}

var _ Provider = (*GitProvider)(nil)
