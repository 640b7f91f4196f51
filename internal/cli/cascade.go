package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tendant/simple-blog/pkg/simpleblog"
	"github.com/tendant/simple-blog/pkg/simpleblog/seed"
)

// NewCascadeCommand creates the cascade command.
func NewCascadeCommand(rootOpts *RootOptions) *cobra.Command {
	var authorID string

	cmd := &cobra.Command{
		Use:   "cascade",
		Short: "Show what deleting an author would remove",
		Long: `Compute the cascading delete of one author against a seed without
changing the seed: the author, every post they wrote, and every comment they
left on other posts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := seed.Load(cmd.Context(), rootOpts.Seed, rootOpts.seedOptions())
			if err != nil {
				return err
			}

			_, report, err := simpleblog.CascadeAuthor(snapshot, authorID)
			if err != nil {
				return err
			}

			if rootOpts.Output == "json" {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleting %s removes %d posts and %d comments\n",
				report.AuthorID, report.PostsRemoved, report.CommentsRemoved)
			return err
		},
	}

	cmd.Flags().StringVar(&authorID, "author", "", "author id to delete")
	_ = cmd.MarkFlagRequired("author")

	return cmd
}
