package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/rce-oj/dataserver/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SubmissionRepository reads submissions from the document store.
type SubmissionRepository struct {
	coll *mongo.Collection
}

func NewSubmissionRepository(coll *mongo.Collection) *SubmissionRepository {
	return &SubmissionRepository{coll: coll}
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id int64) (types.Submission, error) {
	var submission types.Submission
	err := r.coll.FindOne(ctx, bson.D{{Key: "submissionId", Value: id}}).Decode(&submission)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return types.Submission{}, ErrNotFound
		}
		return types.Submission{}, fmt.Errorf("find submission %d: %w", id, err)
	}
	return submission, nil
}

// ListPage returns one page of a user's submissions to a problem, newest
// first. Both filters are required: an empty one matches nothing and the
// store is not queried.
func (r *SubmissionRepository) ListPage(ctx context.Context, page int, user, problemTitle string) ([]types.Submission, error) {
	if user == "" || problemTitle == "" {
		return []types.Submission{}, nil
	}

	cursor, err := r.coll.Aggregate(ctx, submissionPagePipeline(page, user, problemTitle))
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer cursor.Close(ctx)

	submissions := make([]types.Submission, 0, SubmissionPageSize)
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, fmt.Errorf("decode submissions: %w", err)
	}
	if submissions == nil {
		submissions = []types.Submission{}
	}
	return submissions, nil
}

// CountByUser counts every submission made by user. An empty user
// counts as zero without a store round trip.
func (r *SubmissionRepository) CountByUser(ctx context.Context, user string) (int64, error) {
	if user == "" {
		return 0, nil
	}
	total, err := r.coll.CountDocuments(ctx, bson.D{{Key: "user", Value: user}})
	if err != nil {
		return 0, fmt.Errorf("count submissions for user: %w", err)
	}
	return total, nil
}

func submissionPagePipeline(page int, user, problemTitle string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "user", Value: user},
			{Key: "problemTitle", Value: problemTitle},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "submissionId", Value: -1}}}},
		{{Key: "$skip", Value: skipFor(page, SubmissionPageSize)}},
		{{Key: "$limit", Value: int64(SubmissionPageSize)}},
	}
}
