package cli

import (
	"net/url"

	"github.com/spf13/cobra"

	"github.com/kefmc/tournament-engine/internal/api/request"
	"github.com/kefmc/tournament-engine/internal/api/response"
)

func newHighlightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "highlights",
		Short: "Highlights feed commands",
	}

	cmd.AddCommand(newHighlightsListCmd())
	cmd.AddCommand(newHighlightsPostCmd())

	return cmd
}

func newHighlightsListCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the highlights feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.HighlightsResponse

			path := "/api/v1/highlights"
			if category != "" {
				path += "?category=" + url.QueryEscape(category)
			}
			if err := client.Get(path, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Goal, Tackle, Skill or Full Match")

	return cmd
}

func newHighlightsPostCmd() *cobra.Command {
	var req request.PostHighlightRequest

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Post a highlight as the session player",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.HighlightResponse

			if err := client.Post("/api/v1/highlights", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Title, "title", "", "Title (required)")
	cmd.Flags().StringVar(&req.Description, "description", "", "Description")
	cmd.Flags().StringVar(&req.ThumbnailURL, "thumbnail", "", "Thumbnail URL")
	cmd.Flags().StringVar(&req.Category, "category", "", "Goal, Tackle, Skill or Full Match (required)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}
