package types

// Submission represents a user's submission to a problem.
// Submissions are append-only and identified by a monotonically assigned id.
type Submission struct {
	// SubmissionID is the sortable identifier of the submission.
	// Higher ids are more recent.
	SubmissionID int64 `json:"submissionId" bson:"submissionId"`

	// User identifies the submitting user.
	User string `json:"user" bson:"user"`

	// ProblemTitle references Problem.Title. The reference is not enforced;
	// a dangling title simply matches nothing.
	ProblemTitle string `json:"problemTitle" bson:"problemTitle"`

	// Code is the submitted source code.
	Code string `json:"code" bson:"code"`

	// Status is the judging outcome as recorded by the judge
	// (e.g. "accepted", "rejected", "pending").
	Status string `json:"status" bson:"status"`

	// Time is the submission timestamp in its stored representation.
	Time string `json:"time" bson:"time"`
}

// IsZero reports whether s is the empty submission returned for a missing
// or unavailable record.
func (s Submission) IsZero() bool {
	return s == Submission{}
}
