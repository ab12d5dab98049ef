package store

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestSkipFor(t *testing.T) {
	cases := []struct {
		page int
		size int64
		want int64
	}{
		{page: 1, size: ProblemPageSize, want: 0},
		{page: 3, size: ProblemPageSize, want: 10},
		{page: 2, size: SubmissionPageSize, want: 10},
		{page: 0, size: ProblemPageSize, want: 0},
		{page: -4, size: SubmissionPageSize, want: 0},
	}
	for _, tc := range cases {
		if got := skipFor(tc.page, tc.size); got != tc.want {
			t.Fatalf("skipFor(%d, %d) = %d, want %d", tc.page, tc.size, got, tc.want)
		}
	}
}

func TestSubmissionPagePipeline(t *testing.T) {
	pipeline := submissionPagePipeline(2, "alice", "Two Sum")
	if len(pipeline) != 4 {
		t.Fatalf("unexpected stage count: %d", len(pipeline))
	}

	wantOps := []string{"$match", "$sort", "$skip", "$limit"}
	for i, op := range wantOps {
		if got := pipeline[i][0].Key; got != op {
			t.Fatalf("stage %d: got %s, want %s", i, got, op)
		}
	}

	match := pipeline[0][0].Value.(bson.D)
	if len(match) != 2 || match[0].Value != "alice" || match[1].Value != "Two Sum" {
		t.Fatalf("unexpected match stage: %v", match)
	}
	sort := pipeline[1][0].Value.(bson.D)
	if sort[0].Key != "submissionId" || sort[0].Value != -1 {
		t.Fatalf("unexpected sort stage: %v", sort)
	}
	if skip := pipeline[2][0].Value.(int64); skip != 10 {
		t.Fatalf("unexpected skip: %d", skip)
	}
	if limit := pipeline[3][0].Value.(int64); limit != SubmissionPageSize {
		t.Fatalf("unexpected limit: %d", limit)
	}
}

func TestProblemKeyFilter(t *testing.T) {
	filter := problemKeyFilter("title", "Two Sum")
	if len(filter) != 1 || filter[0].Key != "title" || filter[0].Value != "Two Sum" {
		t.Fatalf("unexpected filter: %v", filter)
	}
}
