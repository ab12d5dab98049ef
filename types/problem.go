package types

import (
	"fmt"
	"strings"
)

// Problem represents a coding problem served by the gateway.
// Documents live in the "Problems" collection and are read-only here.
type Problem struct {
	// ID is the explicit identifier used when problems are keyed by id.
	ID string `json:"id" bson:"id"`

	// Title is the human-readable name of the problem. It doubles as the
	// natural key in deployments that address problems by title, where it
	// must be unique within the collection.
	Title string `json:"title" bson:"title"`

	// Description contains the full problem statement.
	Description string `json:"description" bson:"description"`

	// Difficulty is a free-form difficulty label (e.g. "easy", "hard").
	Difficulty string `json:"difficulty" bson:"difficulty"`

	// Topics are ordered labels associated with the problem.
	Topics []string `json:"topics" bson:"topics"`

	// Examples are the sample input/output pairs shown with the statement.
	Examples []Example `json:"examples" bson:"examples"`

	// Limits is free-form text describing resource constraints.
	Limits string `json:"limits" bson:"limits"`
}

// Example is a sample test case shown alongside a problem statement.
type Example struct {
	Input  string `json:"input" bson:"input"`
	Output string `json:"output" bson:"output"`
}

// IsZero reports whether p is the empty problem returned for a missing
// or unavailable record.
func (p Problem) IsZero() bool {
	return p.ID == "" &&
		p.Title == "" &&
		p.Description == "" &&
		p.Difficulty == "" &&
		p.Limits == "" &&
		len(p.Topics) == 0 &&
		len(p.Examples) == 0
}

// ProblemKeyField selects the document field used to address a single problem.
// A deployment uses exactly one of them.
type ProblemKeyField string

// Supported natural keys.
const (
	ProblemKeyID    ProblemKeyField = "id"
	ProblemKeyTitle ProblemKeyField = "title"
)

// ParseProblemKeyField validates a configured key field name.
func ParseProblemKeyField(raw string) (ProblemKeyField, error) {
	switch ProblemKeyField(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ProblemKeyID:
		return ProblemKeyID, nil
	case ProblemKeyTitle:
		return ProblemKeyTitle, nil
	default:
		return "", fmt.Errorf("unsupported problem key field %q", raw)
	}
}

// String returns the document field name.
func (f ProblemKeyField) String() string {
	return string(f)
}
