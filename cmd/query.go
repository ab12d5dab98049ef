/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rce-oj/dataserver/config"
	"github.com/rce-oj/dataserver/internal/db"
	"github.com/rce-oj/dataserver/internal/logger"
	"github.com/rce-oj/dataserver/internal/server"
	"github.com/rce-oj/dataserver/internal/services"
	"github.com/spf13/cobra"
)

type queryFlags struct {
	key          string
	page         int
	submissionID int64
	user         string
	problemTitle string
}

var qf queryFlags

// queryCmd runs a single named query and prints the result as JSON.
var queryCmd = &cobra.Command{
	Use:   "query <operation>",
	Short: "Runs one named query against the store",
	Long: `Runs one named query against the store and prints the result as JSON.
Operations: problem, problems, problemCount, submission, submissions, submissionCount.

	rce-data query problems --page 2
	rce-data query submissions --user alice --problem-title "Two Sum"
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()
		if err := cfg.Validate(); err != nil {
			return err
		}
		log := logger.New(cfg.Log, os.Stderr)

		client, err := db.Open(cmd.Context(), cfg.Database)
		if err != nil {
			return err
		}
		defer func() {
			_ = db.Close(client)
		}()

		svc := server.NewQueryService(client, cfg, log)
		result, err := runQuery(cmd, svc, args[0], qf)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), result)
	},
}

func runQuery(cmd *cobra.Command, svc *services.QueryService, op string, f queryFlags) (any, error) {
	ctx := cmd.Context()
	switch op {
	case services.OpProblem:
		return svc.Problem(ctx, f.key), nil
	case services.OpProblems:
		return svc.Problems(ctx, f.page), nil
	case services.OpProblemCount:
		return svc.ProblemCount(ctx), nil
	case services.OpSubmission:
		return svc.Submission(ctx, f.submissionID), nil
	case services.OpSubmissions:
		return svc.Submissions(ctx, f.page, f.user, f.problemTitle), nil
	case services.OpSubmissionCount:
		return svc.SubmissionCount(ctx, f.user), nil
	default:
		return nil, fmt.Errorf("unknown operation %q", op)
	}
}

func printJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.Flags().StringVar(&qf.key, "key", "", "problem key (id or title, per PROBLEM_KEY_FIELD)")
	queryCmd.Flags().IntVar(&qf.page, "page", 1, "page number, starting at 1")
	queryCmd.Flags().Int64Var(&qf.submissionID, "submission-id", 0, "submission id")
	queryCmd.Flags().StringVar(&qf.user, "user", "", "submitting user")
	queryCmd.Flags().StringVar(&qf.problemTitle, "problem-title", "", "problem title")
}
