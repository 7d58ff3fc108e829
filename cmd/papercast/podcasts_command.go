package main

import (
	"encoding/json"
	"fmt"
	"github.com/Tejasai37/papercast/application/ports/inbound"
	"github.com/Tejasai37/papercast/domain"
	"github.com/spf13/cobra"
	"strconv"
	"time"
)

func newPodcastsCommand() *cobra.Command {
	podcastsCmd := &cobra.Command{
		Use:   "podcasts",
		Short: "Inspect and manage stored podcasts",
	}

	podcastsCmd.AddCommand(newPodcastsListCommand())
	podcastsCmd.AddCommand(newPodcastsDeleteCommand())
	podcastsCmd.AddCommand(newPodcastsPurgeCommand())

	return podcastsCmd
}

func newPodcastsListCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored podcasts, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap()
			if err != nil {
				return err
			}
			defer app.Close()

			records, err := app.admin.List(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(records)
			}
			if len(records) == 0 {
				fmt.Fprintln(out, "No podcasts stored")
				return nil
			}
			fmt.Fprintln(out, renderPodcasts(records))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print records as JSON")
	return cmd
}

func renderPodcasts(records []domain.PodcastRecord) string {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		created := ""
		if !record.CreatedAt.IsZero() {
			created = record.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{
			record.ArticleID,
			record.Title,
			record.UserID,
			string(record.Status),
			strconv.Itoa(len(record.KeyPoints)),
			created,
		})
	}
	return renderTable(
		[]string{"Article", "Title", "User", "Status", "Points", "Created"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
	)
}

func newPodcastsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <article-id>",
		Short: "Delete one stored podcast",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap()
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.admin.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

func newPodcastsPurgeCommand() *cobra.Command {
	var userID string
	var before string
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete stored podcasts by user and/or age",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := purgeParams(userID, before, olderThan, time.Now())
			if err != nil {
				return err
			}

			app, err := bootstrap()
			if err != nil {
				return err
			}
			defer app.Close()

			deleted, err := app.admin.Purge(cmd.Context(), params)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d podcast(s)\n", deleted)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "Only purge podcasts requested by this user")
	cmd.Flags().StringVar(&before, "before", "", "Only purge podcasts created before this RFC3339 time or YYYY-MM-DD date")
	cmd.Flags().DurationVar(&olderThan, "older-than", 0, "Only purge podcasts older than this duration")

	return cmd
}

// purgeParams refuses an unfiltered purge.
func purgeParams(userID string, before string, olderThan time.Duration, now time.Time) (inbound.PurgeParams, error) {
	params := inbound.PurgeParams{UserID: userID}
	if before != "" && olderThan > 0 {
		return params, fmt.Errorf("--before and --older-than are mutually exclusive")
	}
	if before != "" {
		cutoff, err := time.Parse(time.RFC3339, before)
		if err != nil {
			cutoff, err = time.Parse(time.DateOnly, before)
		}
		if err != nil {
			return params, fmt.Errorf("invalid --before %q: expected RFC3339 or YYYY-MM-DD", before)
		}
		params.CreatedBefore = cutoff
	}
	if olderThan > 0 {
		params.CreatedBefore = now.Add(-olderThan)
	}
	if params.UserID == "" && params.CreatedBefore.IsZero() {
		return params, fmt.Errorf("purge needs --user, --before or --older-than")
	}
	return params, nil
}
