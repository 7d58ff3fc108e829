package main

import (
	"fmt"
	"github.com/Tejasai37/papercast/application/services"
	"github.com/Tejasai37/papercast/domain"
	"github.com/spf13/cobra"
)

func newHeadlinesCommand() *cobra.Command {
	var category string
	var query string

	cmd := &cobra.Command{
		Use:   "headlines",
		Short: "Show current headlines or search results",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap()
			if err != nil {
				return err
			}
			defer app.Close()

			var articles []domain.Article
			if query != "" {
				articles, err = app.discovery.Search(cmd.Context(), query)
			} else {
				articles, err = app.discovery.Headlines(cmd.Context(), category)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderArticles(articles))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", services.DefaultCategory, "Headline category")
	cmd.Flags().StringVarP(&query, "search", "q", "", "Search query instead of headlines")

	return cmd
}

func renderArticles(articles []domain.Article) string {
	rows := make([][]string, 0, len(articles))
	for _, article := range articles {
		rows = append(rows, []string{article.ID, article.Title, article.Source, article.PublishedAt})
	}
	return renderTable([]string{"ID", "Title", "Source", "Published"}, rows, nil)
}
