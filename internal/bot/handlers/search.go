package handlers

import (
	"context"
	"errors"

	"FaffinityBot/internal/core/domain"
	"FaffinityBot/internal/core/ports"
	"FaffinityBot/internal/dispatch"
	"FaffinityBot/internal/format"
)

// Search handles title, cast and director queries; the route's pattern
// decides which capture carries the query text. Results come back as a
// keyboard of detail buttons.
func Search(d *Deps) dispatch.HandlerFunc {
	return func(ctx context.Context, evt *ports.Event, ec *dispatch.EventContext, caps dispatch.Captures) (dispatch.Result, error) {
		query := ports.SearchQuery{
			Title:    caps["title"],
			Cast:     caps["cast"],
			Director: caps["director"],
		}

		result, err := ec.Films.Search(ctx, searchLimit, query)
		if err != nil {
			if errors.Is(err, domain.ErrDataSourceUnavailable) {
				d.sendError(ctx, evt.ChatID, ec)
				return dispatch.Handled, err
			}
			return dispatch.Handled, err
		}

		if len(result) == 0 {
			text := caps["title"]
			if text == "" {
				text = caps["cast"]
			}
			if text == "" {
				text = caps["director"]
			}
			_, err := d.Bot.SendMessage(ctx, ports.SendMessageParams{
				ChatID:    evt.ChatID,
				Text:      ec.Td("no_matches", map[string]interface{}{"Query": text}),
				ParseMode: "Markdown",
			})
			return dispatch.Handled, err
		}

		_, err = d.Bot.SendMessage(ctx, ports.SendMessageParams{
			ChatID:      evt.ChatID,
			Text:        ec.T("query_results"),
			ReplyMarkup: format.SearchResultKeyboard(ec.T, result),
		})
		return dispatch.Handled, err
	}
}

// InlineSearch answers inline queries with article results carrying a deep
// link back to the bot.
func InlineSearch(d *Deps) dispatch.HandlerFunc {
	return func(ctx context.Context, evt *ports.Event, ec *dispatch.EventContext, caps dispatch.Captures) (dispatch.Result, error) {
		result, err := ec.Films.Search(ctx, searchLimit, ports.SearchQuery{Title: evt.Text})
		if err != nil {
			answerErr := d.Bot.AnswerInline(ctx, ports.AnswerInlineParams{
				InlineID: evt.InlineID,
				Results: []ports.InlineResult{{
					ID:    "error",
					Title: ec.T("fa_error"),
					Text:  ec.T("fa_error"),
				}},
			})
			if answerErr != nil {
				return dispatch.Handled, answerErr
			}
			return dispatch.Handled, err
		}

		if len(result) == 0 {
			noMatch := ec.Td("no_matches", map[string]interface{}{"Query": evt.Text})
			err := d.Bot.AnswerInline(ctx, ports.AnswerInlineParams{
				InlineID: evt.InlineID,
				Results: []ports.InlineResult{{
					ID:    "no-matches",
					Title: noMatch,
					Text:  noMatch,
				}},
			})
			return dispatch.Handled, err
		}

		articles := make([]ports.InlineResult, 0, len(result))
		for _, movie := range result {
			article := ports.InlineResult{
				ID:          movie.ID,
				Title:       movie.Title,
				Text:        format.InlineResultText(ec.Td, movie),
				ReplyMarkup: format.InlineDetailsKeyboard(ec.T, d.BotName, ec.Films.Lang(), movie.ID),
			}
			if movie.Poster != "" {
				article.ThumbURL = movie.Poster
			}
			articles = append(articles, article)
		}

		err = d.Bot.AnswerInline(ctx, ports.AnswerInlineParams{
			InlineID: evt.InlineID,
			Results:  articles,
		})
		return dispatch.Handled, err
	}
}
