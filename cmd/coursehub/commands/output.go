package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"coursehub/internal/domain"
	"coursehub/internal/query"
)

// printCourses writes one "id name" line per course, or the --query output.
func printCourses(cmd *cobra.Command, courses []domain.Course) error {
	if queryExpr != "" {
		return printQuery(cmd, courses)
	}
	out := cmd.OutOrStdout()
	if len(courses) == 0 {
		fmt.Fprintln(out, "no courses")
		return nil
	}
	for _, c := range courses {
		fmt.Fprintf(out, "%4d  %s\n", c.ID, c.Name)
	}
	return nil
}

func printQuery(cmd *cobra.Command, v any) error {
	results, err := query.Apply(queryExpr, v)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, r := range results {
		if s, ok := r.(string); ok {
			fmt.Fprintln(out, s)
			continue
		}
		b, err := json.Marshal(r)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(b))
	}
	return nil
}

func printMessages(cmd *cobra.Command) {
	out := cmd.ErrOrStderr()
	for _, m := range appCtx.Messages.Messages() {
		fmt.Fprintln(out, m)
	}
}

func parseID(s string) (domain.CourseID, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid course id %q", s)
	}
	return domain.CourseID(n), nil
}

func addQueryFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&queryExpr, "query", "q", "", "jq expression applied to the JSON output")
}
