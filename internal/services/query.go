package services

import (
	"context"
	"errors"

	"github.com/rce-oj/dataserver/internal/store"
	"github.com/rce-oj/dataserver/types"
	"github.com/rs/zerolog"
)

// CountUnavailable is returned by count operations when the store
// could not be queried.
const CountUnavailable int64 = -1

// Names of the query operations, used in logs.
const (
	OpProblem         = "problem"
	OpProblems        = "problems"
	OpProblemCount    = "problemCount"
	OpSubmission      = "submission"
	OpSubmissions     = "submissions"
	OpSubmissionCount = "submissionCount"
)

// ProblemRepository defines read operations for problems.
type ProblemRepository interface {
	GetByKey(ctx context.Context, key string) (types.Problem, error)
	ListPage(ctx context.Context, page int) ([]types.Problem, error)
	Count(ctx context.Context) (int64, error)
}

// SubmissionRepository defines read operations for submissions.
type SubmissionRepository interface {
	GetByID(ctx context.Context, id int64) (types.Submission, error)
	ListPage(ctx context.Context, page int, user, problemTitle string) ([]types.Submission, error)
	CountByUser(ctx context.Context, user string) (int64, error)
}

// QueryService resolves the named read queries. It never returns an
// error: store failures are logged and replaced by an empty entity, an
// empty list, or CountUnavailable. It holds no mutable state and is safe
// for concurrent use.
type QueryService struct {
	problems    ProblemRepository
	submissions SubmissionRepository
	log         zerolog.Logger
}

func NewQueryService(problems ProblemRepository, submissions SubmissionRepository, log zerolog.Logger) *QueryService {
	return &QueryService{
		problems:    problems,
		submissions: submissions,
		log:         log.With().Str("component", "query").Logger(),
	}
}

func (s *QueryService) Problem(ctx context.Context, key string) types.Problem {
	problem, err := s.problems.GetByKey(ctx, key)
	return resolve(s, OpProblem, problem, err, types.Problem{})
}

func (s *QueryService) Problems(ctx context.Context, page int) []types.Problem {
	problems, err := s.problems.ListPage(ctx, normalizePage(page))
	return nonNil(resolve(s, OpProblems, problems, err, nil))
}

func (s *QueryService) ProblemCount(ctx context.Context) int64 {
	total, err := s.problems.Count(ctx)
	return resolve(s, OpProblemCount, total, err, CountUnavailable)
}

func (s *QueryService) Submission(ctx context.Context, id int64) types.Submission {
	submission, err := s.submissions.GetByID(ctx, id)
	return resolve(s, OpSubmission, submission, err, types.Submission{})
}

func (s *QueryService) Submissions(ctx context.Context, page int, user, problemTitle string) []types.Submission {
	submissions, err := s.submissions.ListPage(ctx, normalizePage(page), user, problemTitle)
	return nonNil(resolve(s, OpSubmissions, submissions, err, nil))
}

func (s *QueryService) SubmissionCount(ctx context.Context, user string) int64 {
	total, err := s.submissions.CountByUser(ctx, user)
	return resolve(s, OpSubmissionCount, total, err, CountUnavailable)
}

// resolve turns a repository result into the caller-facing value.
// ErrNotFound is a normal empty result; any other error is logged and
// replaced by fallback.
func resolve[T any](s *QueryService, op string, value T, err error, fallback T) T {
	if err == nil {
		return value
	}
	if errors.Is(err, store.ErrNotFound) {
		s.log.Debug().Str("operation", op).Msg("no matching record")
		return fallback
	}
	s.log.Error().Err(err).Str("operation", op).Msg("store query failed, returning fallback")
	return fallback
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
