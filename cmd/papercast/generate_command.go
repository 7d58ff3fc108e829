package main

import (
	"encoding/json"
	"fmt"
	"github.com/Tejasai37/papercast/application/ports/inbound"
	"github.com/Tejasai37/papercast/domain"
	"github.com/spf13/cobra"
	"strings"
)

func newGenerateCommand() *cobra.Command {
	var userID string
	var category string
	var link string

	cmd := &cobra.Command{
		Use:   "generate [article-id]",
		Short: "Generate or fetch the podcast for one article",
		Long: "Generate or fetch the podcast for one article. A fresh process knows no headlines, " +
			"so pass --category to load headlines first or --url to process a custom link.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap()
			if err != nil {
				return err
			}
			defer app.Close()
			ctx := cmd.Context()

			articleID := ""
			if len(args) == 1 {
				articleID = strings.TrimSpace(args[0])
			}

			if category != "" {
				articles, err := app.discovery.Headlines(ctx, category)
				if err != nil {
					return err
				}
				if articleID == "" && len(articles) > 0 {
					articleID = articles[0].ID
				}
			}
			if link != "" {
				article, err := app.discovery.ExtractLink(ctx, link)
				if err != nil {
					return err
				}
				articleID = article.ID
			}
			if articleID == "" {
				return fmt.Errorf("an article id, --category or --url is required")
			}

			result := app.generator.GenerateOrFetch(ctx, inbound.GeneratePodcastParams{
				ArticleID: articleID,
				UserID:    userID,
			})

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(result.ToEvent()); err != nil {
				return err
			}
			if result.Status == domain.ResultFailed {
				return result.Err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "cli", "User recorded as the podcast requester")
	cmd.Flags().StringVar(&category, "category", "", "Load headlines for this category first")
	cmd.Flags().StringVar(&link, "url", "", "Process a custom article link and generate its podcast")

	return cmd
}
