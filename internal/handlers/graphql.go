package handlers

import (
	"net/http"

	"github.com/graphql-go/graphql"
	gqlhandler "github.com/graphql-go/handler"
	"github.com/rce-oj/dataserver/internal/services"
	"github.com/rce-oj/dataserver/types"
)

var exampleType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "Example",
	Description: "A example test case",
	Fields: graphql.Fields{
		"input":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"output": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var problemType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "Problem",
	Description: "Problem",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"title":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"difficulty":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"limits":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"topics":      &graphql.Field{Type: graphql.NewList(graphql.String)},
		"examples":    &graphql.Field{Type: graphql.NewList(exampleType)},
	},
})

var submissionType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "Submission",
	Description: "A user's submission to a problem",
	Fields: graphql.Fields{
		"submissionId": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"user":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"problemTitle": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"code":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"status":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"time":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

// NewSchema binds the query service to the GraphQL root query. The
// argument of the problem field is named after keyField.
func NewSchema(svc *services.QueryService, keyField types.ProblemKeyField) (graphql.Schema, error) {
	if keyField == "" {
		keyField = types.ProblemKeyID
	}
	keyArg := keyField.String()

	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name:        "Query",
		Description: "This is Root Query",
		Fields: graphql.Fields{
			"problem": &graphql.Field{
				Type:        problemType,
				Description: "problem",
				Args: graphql.FieldConfigArgument{
					keyArg: &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return svc.Problem(p.Context, stringArg(p, keyArg)), nil
				},
			},
			"problems": &graphql.Field{
				Type:        graphql.NewList(problemType),
				Description: "List of all the problems",
				Args: graphql.FieldConfigArgument{
					"page": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return svc.Problems(p.Context, intArg(p, "page")), nil
				},
			},
			"problemCount": &graphql.Field{
				Type:        graphql.Int,
				Description: "count of problems available in database",
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return svc.ProblemCount(p.Context), nil
				},
			},
			"submission": &graphql.Field{
				Type:        submissionType,
				Description: "submission",
				Args: graphql.FieldConfigArgument{
					"submissionId": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return svc.Submission(p.Context, int64(intArg(p, "submissionId"))), nil
				},
			},
			"submissions": &graphql.Field{
				Type:        graphql.NewList(submissionType),
				Description: "A user's submissions to a problem, most recent first",
				Args: graphql.FieldConfigArgument{
					"page":         &graphql.ArgumentConfig{Type: graphql.Int},
					"user":         &graphql.ArgumentConfig{Type: graphql.String},
					"problemTitle": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return svc.Submissions(p.Context, intArg(p, "page"), stringArg(p, "user"), stringArg(p, "problemTitle")), nil
				},
			},
			"submissionCount": &graphql.Field{
				Type:        graphql.Int,
				Description: "count of submissions made by a user",
				Args: graphql.FieldConfigArgument{
					"user": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return svc.SubmissionCount(p.Context, stringArg(p, "user")), nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: rootQuery})
}

// GraphQL serves schema over HTTP, with the GraphiQL explorer on GET
// requests from browsers when enabled.
func GraphQL(schema *graphql.Schema, graphiql bool) http.Handler {
	return gqlhandler.New(&gqlhandler.Config{
		Schema:   schema,
		Pretty:   true,
		GraphiQL: graphiql,
	})
}

func stringArg(p graphql.ResolveParams, name string) string {
	value, _ := p.Args[name].(string)
	return value
}

// intArg returns 0 for an absent argument; the service treats page 0 as 1.
func intArg(p graphql.ResolveParams, name string) int {
	value, _ := p.Args[name].(int)
	return value
}
