package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tendant/simple-blog/pkg/simpleblog/seed"
)

// SeedSummary counts the entities in a valid seed.
type SeedSummary struct {
	Valid    bool `json:"valid"`
	Authors  int  `json:"authors"`
	Posts    int  `json:"posts"`
	Comments int  `json:"comments"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a seed satisfies the store invariants",
		Long: `Load a seed and check author ids are unique, post ids match their
titles, and every post and comment names an existing author. Every violation
is reported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := seed.Load(cmd.Context(), rootOpts.Seed, rootOpts.seedOptions())
			if err != nil {
				return err
			}

			summary := SeedSummary{Valid: true, Authors: len(snapshot.Authors), Posts: len(snapshot.Posts)}
			for _, p := range snapshot.Posts {
				summary.Comments += len(p.Comments)
			}

			if rootOpts.Output == "json" {
				return writeJSON(cmd.OutOrStdout(), summary)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "seed valid: %d authors, %d posts, %d comments\n",
				summary.Authors, summary.Posts, summary.Comments)
			return err
		},
	}
}
