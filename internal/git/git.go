// Package git provides the Git repository utilities keepachangelog needs to tag
// a release: repository detection, branch and tag lookup and tag creation.
// It uses the go-git library, so no git binary is required.
package git

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ErrTagExists is returned by CreateTag when the tag is already present.
var ErrTagExists = errors.New("tag already exists")

// defaultTagger signs annotated tags when no user is configured.
var defaultTagger = object.Signature{Name: "keepachangelog", Email: "keepachangelog@localhost"}

// debugLogger is a function that logs debug messages when debug mode is enabled.
// By default, it's a no-op. Set it via SetDebugLogger to enable debug output.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations.
// Pass nil to disable debug logging. The logger function should format
// and output the message (similar to log.Printf signature).
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

// logDebug logs a debug message if the debug logger is set.
func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// openRepo opens a git repository at the specified path or current working directory.
// It uses go-git's PlainOpenWithOptions with DetectDotGit enabled to traverse
// up the directory tree to find the repository root.
// If path is empty, the current working directory is used.
func openRepo(path string) (*git.Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logDebug("[git] opening repository at %s", path)

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	logDebug("[git] repository opened successfully")
	return repo, nil
}

// IsGitRepository checks if dir (or the working directory when empty) is
// within a git repository.
func IsGitRepository(dir string) bool {
	_, err := openRepo(dir)
	result := err == nil
	logDebug("[git] IsGitRepository(%s): %v", dir, result)
	return result
}

// GetRepositoryRoot returns the absolute path to the repository root.
func GetRepositoryRoot(dir string) (string, error) {
	repo, err := openRepo(dir)
	if err != nil {
		return "", err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("getting worktree: %w", err)
	}

	root := worktree.Filesystem.Root()
	logDebug("[git] GetRepositoryRoot: %s", root)
	return root, nil
}

// GetCurrentBranch returns the name of the current git branch.
// Returns empty string if in detached HEAD state.
func GetCurrentBranch(dir string) (string, error) {
	repo, err := openRepo(dir)
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD reference: %w", err)
	}

	// Check if in detached HEAD state
	if !head.Name().IsBranch() {
		logDebug("[git] GetCurrentBranch: detached HEAD state")
		return "", nil
	}

	branch := head.Name().Short()
	logDebug("[git] GetCurrentBranch: %s", branch)
	return branch, nil
}

// TagExists reports whether the tag name is present in the repository at dir.
func TagExists(dir, name string) (bool, error) {
	repo, err := openRepo(dir)
	if err != nil {
		return false, err
	}
	return tagExists(repo, name)
}

func tagExists(repo *git.Repository, name string) (bool, error) {
	_, err := repo.Reference(plumbing.NewTagReferenceName(name), false)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("checking tag existence: %w", err)
}

// CreateTag tags HEAD of the repository at dir. An empty message creates a
// lightweight tag, otherwise an annotated tag signed by the configured user.
// It returns ErrTagExists when the tag is already present.
func CreateTag(dir, name, message string) error {
	repo, err := openRepo(dir)
	if err != nil {
		return err
	}

	exists, err := tagExists(repo, name)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrTagExists, name)
	}

	head, err := repo.Head()
	if err != nil {
		return fmt.Errorf("getting HEAD: %w", err)
	}

	var opts *git.CreateTagOptions
	if message != "" {
		tagger := resolveTagger(repo)
		opts = &git.CreateTagOptions{Tagger: &tagger, Message: message}
	}

	if _, err := repo.CreateTag(name, head.Hash(), opts); err != nil {
		if errors.Is(err, git.ErrTagExists) {
			return fmt.Errorf("%w: %s", ErrTagExists, name)
		}
		return fmt.Errorf("creating tag '%s': %w", name, err)
	}

	logDebug("[git] CreateTag: %s at %s (annotated: %v)", name, head.Hash(), opts != nil)
	return nil
}

// resolveTagger returns the user from the repository or global config, or
// defaultTagger when neither sets one.
func resolveTagger(repo *git.Repository) object.Signature {
	sig := defaultTagger
	if cfg, err := repo.ConfigScoped(config.GlobalScope); err == nil {
		if cfg.User.Name != "" {
			sig.Name = cfg.User.Name
		}
		if cfg.User.Email != "" {
			sig.Email = cfg.User.Email
		}
	}
	sig.When = time.Now()
	return sig
}
