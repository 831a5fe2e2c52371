package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/joinrss-backend/internal/app"
	"github.com/heartmarshall/joinrss-backend/internal/domain"
	"github.com/heartmarshall/joinrss-backend/internal/service/member"
	"github.com/heartmarshall/joinrss-backend/pkg/ctxutil"
)

func newMemberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Work with member records",
		RunE:  requireSubcommand,
	}
	cmd.AddCommand(newMemberExportCmd())
	return cmd
}

func newMemberExportCmd() *cobra.Command {
	var (
		format  string
		out     string
		bhag    string
		fields  []string
		queries []string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export members to CSV or XLSX",
		Long: `Export members the same way the web export does.

--field and --q may be repeated; they pair up by position and every pair
must match. A --q without a matching --field searches all fields.
Without --bhag every member is exported.`,
		Example: `  joinctl member export --out all.csv
  joinctl member export --format xlsx --out pune.xlsx --bhag PUNE-01 --field age --q 18-30`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(cmd.Context(), cmd.ErrOrStderr(), func(c *app.Container) error {
				ctx := ctxutil.WithSession(cmd.Context(), operatorSession(bhag))

				doc, err := c.Members.Export(ctx, member.ExportInput{
					Criteria: pairCriteria(fields, queries),
					Format:   format,
				})
				if errors.Is(err, domain.ErrNothingToExport) {
					return errors.New("no members match; nothing exported")
				}
				if err != nil {
					return err
				}

				target := out
				if target == "" {
					target = doc.Filename
				}
				if err := writeOutput(cmd.OutOrStdout(), target, doc.Body); err != nil {
					return err
				}
				if target != "-" {
					fmt.Fprintf(cmd.OutOrStdout(), "Exported %d members to %s.\n", doc.Rows, target)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "csv or xlsx (default from export.default_format)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, - for stdout (default members_<date>.<ext>)")
	cmd.Flags().StringVar(&bhag, "bhag", "", "export only this bhag")
	cmd.Flags().StringArrayVar(&fields, "field", nil, "search field key (repeatable)")
	cmd.Flags().StringArrayVar(&queries, "q", nil, "search query (repeatable)")
	return cmd
}

// operatorSession is the session the CLI acts under: admin, or scoped to
// bhag when one is given.
func operatorSession(bhag string) domain.Session {
	now := time.Now()
	return domain.Session{
		ID:        uuid.New(),
		Username:  "joinctl",
		Role:      domain.RoleFor(&bhag),
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func pairCriteria(fields, queries []string) []member.CriterionInput {
	criteria := make([]member.CriterionInput, 0, len(queries))
	for i, q := range queries {
		var field string
		if i < len(fields) {
			field = fields[i]
		}
		criteria = append(criteria, member.CriterionInput{Field: field, Query: q})
	}
	return criteria
}

func writeOutput(stdout io.Writer, target string, body []byte) error {
	if target == "-" {
		_, err := stdout.Write(body)
		return err
	}
	if err := os.WriteFile(target, body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	return nil
}
