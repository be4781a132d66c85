package localstore

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-git/go-billy/v5"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/cache"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	gogitfs "github.com/go-git/go-git/v5/storage/filesystem"
)

// Author signs journal commits
type Author struct {
	Name  string
	Email string
}

// Revision is one entry of the journal
type Revision struct {
	Hash    string
	Message string
	Author  string
	When    time.Time
}

// Journal records every record write as a commit in a git repository
type Journal struct {
	repo   *gogit.Repository
	author Author
	now    func() time.Time
}

// OpenJournal initializes, or opens when it already exists, a git repository at the root of fs
func OpenJournal(fs billy.Filesystem, author Author) (*Journal, error) {
	if err := fs.MkdirAll(".git", 0o755); err != nil {
		return nil, fmt.Errorf("failed to create .git dir: %w", err)
	}
	dotGitFS, err := fs.Chroot(".git")
	if err != nil {
		return nil, fmt.Errorf("failed to chroot .git dir: %w", err)
	}

	storage := gogitfs.NewStorage(dotGitFS, cache.NewObjectLRUDefault())

	repo, err := gogit.Init(storage, fs)
	if errors.Is(err, gogit.ErrRepositoryAlreadyExists) {
		repo, err = gogit.Open(storage, fs)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	if author.Name == "" {
		author.Name = "seva-rota"
	}

	return &Journal{
		repo:   repo,
		author: author,
		now:    time.Now,
	}, nil
}

// Commit stages path and commits it. It returns false when the file did not change.
func (j *Journal) Commit(path, message string) (bool, error) {
	w, err := j.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("failed to get worktree: %w", err)
	}

	if _, err := w.Add(path); err != nil {
		return false, fmt.Errorf("failed to stage %s: %w", path, err)
	}

	_, err = w.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  j.author.Name,
			Email: j.author.Email,
			When:  j.now(),
		},
	})
	if errors.Is(err, gogit.ErrEmptyCommit) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to commit %s: %w", path, err)
	}
	return true, nil
}

// History returns up to limit revisions, newest first. A limit of 0 returns everything.
func (j *Journal) History(limit int) ([]Revision, error) {
	revisions := []Revision{}

	iter, err := j.repo.Log(&gogit.LogOptions{})
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		// nothing committed yet
		return revisions, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}
	defer iter.Close()

	err = iter.ForEach(func(c *object.Commit) error {
		if limit > 0 && len(revisions) >= limit {
			return storer.ErrStop
		}
		revisions = append(revisions, Revision{
			Hash:    c.Hash.String(),
			Message: c.Message,
			Author:  c.Author.Name,
			When:    c.Author.When,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk journal: %w", err)
	}

	return revisions, nil
}
