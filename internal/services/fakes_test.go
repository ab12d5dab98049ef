package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rce-oj/dataserver/internal/store"
	"github.com/rce-oj/dataserver/types"
)

var errStoreDown = errors.New("server selection error: context deadline exceeded")

// memoryProblems keeps problems in insertion order, standing in for the
// collection's natural order.
type memoryProblems struct {
	items []types.Problem
	err   error
}

func seedProblems(n int) *memoryProblems {
	repo := &memoryProblems{}
	for i := 1; i <= n; i++ {
		repo.items = append(repo.items, types.Problem{
			ID:         fmt.Sprintf("p-%d", i),
			Title:      fmt.Sprintf("Problem %d", i),
			Difficulty: "medium",
			Limits:     "1s",
		})
	}
	return repo
}

func (m *memoryProblems) GetByKey(_ context.Context, key string) (types.Problem, error) {
	if m.err != nil {
		return types.Problem{}, m.err
	}
	for _, p := range m.items {
		if p.ID == key {
			return p, nil
		}
	}
	return types.Problem{}, store.ErrNotFound
}

func (m *memoryProblems) ListPage(_ context.Context, page int) ([]types.Problem, error) {
	if m.err != nil {
		return nil, m.err
	}
	return paginate(m.items, page, store.ProblemPageSize), nil
}

func (m *memoryProblems) Count(context.Context) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.items)), nil
}

type memorySubmissions struct {
	items []types.Submission
	err   error
}

func (m *memorySubmissions) GetByID(_ context.Context, id int64) (types.Submission, error) {
	if m.err != nil {
		return types.Submission{}, m.err
	}
	for _, s := range m.items {
		if s.SubmissionID == id {
			return s, nil
		}
	}
	return types.Submission{}, store.ErrNotFound
}

func (m *memorySubmissions) ListPage(_ context.Context, page int, user, problemTitle string) ([]types.Submission, error) {
	if m.err != nil {
		return nil, m.err
	}
	if user == "" || problemTitle == "" {
		return []types.Submission{}, nil
	}
	var matched []types.Submission
	for _, s := range m.items {
		if s.User == user && s.ProblemTitle == problemTitle {
			matched = append(matched, s)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].SubmissionID > matched[j].SubmissionID
	})
	return paginate(matched, page, store.SubmissionPageSize), nil
}

func (m *memorySubmissions) CountByUser(_ context.Context, user string) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	var total int64
	for _, s := range m.items {
		if s.User == user {
			total++
		}
	}
	return total, nil
}

func paginate[T any](items []T, page, size int) []T {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return append([]T{}, items[start:end]...)
}
