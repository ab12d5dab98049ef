package store

// Fixed page sizes of the two listings.
const (
	ProblemPageSize    = 5
	SubmissionPageSize = 10
)

// skipFor returns how many records precede the given 1-based page.
// Pages below 1 never produce a negative skip.
func skipFor(page int, size int64) int64 {
	if page < 1 {
		return 0
	}
	return int64(page-1) * size
}
