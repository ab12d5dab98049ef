package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/rce-oj/dataserver/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProblemRepository reads problems from the document store.
type ProblemRepository struct {
	coll     *mongo.Collection
	keyField types.ProblemKeyField
}

// NewProblemRepository addresses single problems by keyField. An empty
// key field defaults to the explicit id.
func NewProblemRepository(coll *mongo.Collection, keyField types.ProblemKeyField) *ProblemRepository {
	if keyField == "" {
		keyField = types.ProblemKeyID
	}
	return &ProblemRepository{coll: coll, keyField: keyField}
}

// KeyField reports the natural key this repository looks problems up by.
func (r *ProblemRepository) KeyField() types.ProblemKeyField {
	return r.keyField
}

func (r *ProblemRepository) GetByKey(ctx context.Context, key string) (types.Problem, error) {
	if key == "" {
		return types.Problem{}, ErrNotFound
	}

	var problem types.Problem
	err := r.coll.FindOne(ctx, problemKeyFilter(r.keyField, key)).Decode(&problem)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return types.Problem{}, ErrNotFound
		}
		return types.Problem{}, fmt.Errorf("find problem by %s: %w", r.keyField, err)
	}
	return problem, nil
}

func (r *ProblemRepository) ListPage(ctx context.Context, page int) ([]types.Problem, error) {
	opts := options.Find().
		SetSkip(skipFor(page, ProblemPageSize)).
		SetLimit(ProblemPageSize)

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list problems: %w", err)
	}
	defer cursor.Close(ctx)

	problems := make([]types.Problem, 0, ProblemPageSize)
	if err := cursor.All(ctx, &problems); err != nil {
		return nil, fmt.Errorf("decode problems: %w", err)
	}
	if problems == nil {
		problems = []types.Problem{}
	}
	return problems, nil
}

func (r *ProblemRepository) Count(ctx context.Context) (int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count problems: %w", err)
	}
	return total, nil
}

func problemKeyFilter(field types.ProblemKeyField, key string) bson.D {
	return bson.D{{Key: field.String(), Value: key}}
}
