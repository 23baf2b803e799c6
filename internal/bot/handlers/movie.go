package handlers

import (
	"context"

	"FaffinityBot/internal/core/ports"
	"FaffinityBot/internal/dispatch"
	"FaffinityBot/internal/format"
)

// Movie shows the detail card for a movie id, reached either through a
// film_ button or a deep link. The caption carries a rotating ad line.
//
// When the caption exceeds the platform's limit the detail is split: the
// poster goes out alone, then the text with the keyboard, whose hide
// payload is retargeted to delete both messages.
func Movie(d *Deps) dispatch.HandlerFunc {
	return func(ctx context.Context, evt *ports.Event, ec *dispatch.EventContext, caps dispatch.Captures) (dispatch.Result, error) {
		movie, err := ec.Films.GetMovie(ctx, caps["id"], false)
		if err != nil {
			d.sendError(ctx, evt.ChatID, ec)
			d.ack(ctx, evt)
			return dispatch.Handled, err
		}

		d.Stats.MoviesSeen.Add(1)

		human := format.Humanize(*movie)
		caption := format.MovieCaption(ec.Td, ec.Films.Lang(), human) + "\n" + d.Rotator.Pick(ec.T)

		poster := movie.Poster
		if poster == "" {
			poster = format.NoPosterURL
		}

		if !format.ExceedsCaptionLimit(caption) {
			_, err = d.Bot.SendPhoto(ctx, ports.SendPhotoParams{
				ChatID:      evt.ChatID,
				PhotoURL:    poster,
				Caption:     caption,
				ParseMode:   "Markdown",
				ReplyMarkup: format.MovieKeyboard(ec.T, movie.ID),
			})
			d.ack(ctx, evt)
			return dispatch.Handled, err
		}

		posterID, err := d.Bot.SendPhoto(ctx, ports.SendPhotoParams{
			ChatID:   evt.ChatID,
			PhotoURL: poster,
		})
		if err != nil {
			d.sendError(ctx, evt.ChatID, ec)
			d.ack(ctx, evt)
			return dispatch.Handled, err
		}

		_, err = d.Bot.SendMessage(ctx, ports.SendMessageParams{
			ChatID:            evt.ChatID,
			Text:              caption,
			ParseMode:         "Markdown",
			ReplyMarkup:       format.MovieKeyboard(ec.T, movie.ID, posterID),
			DisableWebPreview: true,
		})
		d.ack(ctx, evt)
		return dispatch.Handled, err
	}
}

// Synopsis sends the movie's synopsis as its own message.
func Synopsis(d *Deps) dispatch.HandlerFunc {
	return func(ctx context.Context, evt *ports.Event, ec *dispatch.EventContext, caps dispatch.Captures) (dispatch.Result, error) {
		movie, err := ec.Films.GetMovie(ctx, caps["id"], false)
		if err != nil {
			d.sendError(ctx, evt.ChatID, ec)
			d.ack(ctx, evt)
			return dispatch.Handled, err
		}

		human := format.Humanize(*movie)
		text := format.SynopsisText(ec.Td, human) + "\n\n" + d.Rotator.Pick(ec.T)

		_, err = d.Bot.SendMessage(ctx, ports.SendMessageParams{
			ChatID:            evt.ChatID,
			Text:              text,
			ParseMode:         "Markdown",
			ReplyMarkup:       format.HideKeyboard(ec.T),
			DisableWebPreview: true,
		})
		d.ack(ctx, evt)
		return dispatch.Handled, err
	}
}

// Awards sends the movie's award list.
func Awards(d *Deps) dispatch.HandlerFunc {
	return func(ctx context.Context, evt *ports.Event, ec *dispatch.EventContext, caps dispatch.Captures) (dispatch.Result, error) {
		movie, err := ec.Films.GetMovie(ctx, caps["id"], false)
		if err != nil {
			d.sendError(ctx, evt.ChatID, ec)
			d.ack(ctx, evt)
			return dispatch.Handled, err
		}

		if len(movie.Awards) == 0 {
			_, err := d.Bot.SendMessage(ctx, ports.SendMessageParams{
				ChatID: evt.ChatID,
				Text:   ec.T("no_awards"),
			})
			d.ack(ctx, evt)
			return dispatch.Handled, err
		}

		text := format.AwardsText(ec.T, ec.Td, ec.Films.Lang(), movie) + "\n\n" + d.Rotator.Pick(ec.T)
		_, err = d.Bot.SendMessage(ctx, ports.SendMessageParams{
			ChatID:            evt.ChatID,
			Text:              text,
			ParseMode:         "Markdown",
			ReplyMarkup:       format.HideKeyboard(ec.T),
			DisableWebPreview: true,
		})
		d.ack(ctx, evt)
		return dispatch.Handled, err
	}
}

// Reviews sends the movie's professional reviews.
func Reviews(d *Deps) dispatch.HandlerFunc {
	return func(ctx context.Context, evt *ports.Event, ec *dispatch.EventContext, caps dispatch.Captures) (dispatch.Result, error) {
		movie, err := ec.Films.GetMovie(ctx, caps["id"], false)
		if err != nil {
			d.sendError(ctx, evt.ChatID, ec)
			d.ack(ctx, evt)
			return dispatch.Handled, err
		}

		if len(movie.Reviews) == 0 {
			_, err := d.Bot.SendMessage(ctx, ports.SendMessageParams{
				ChatID: evt.ChatID,
				Text:   ec.T("no_reviews"),
			})
			d.ack(ctx, evt)
			return dispatch.Handled, err
		}

		text := format.ReviewsText(ec.T, ec.Td, ec.Films.Lang(), movie) + "\n\n" + d.Rotator.Pick(ec.T)
		_, err = d.Bot.SendMessage(ctx, ports.SendMessageParams{
			ChatID:            evt.ChatID,
			Text:              text,
			ParseMode:         "Markdown",
			ReplyMarkup:       format.HideKeyboard(ec.T),
			DisableWebPreview: true,
		})
		d.ack(ctx, evt)
		return dispatch.Handled, err
	}
}

// Images sends up to ten stills as a media group.
func Images(d *Deps) dispatch.HandlerFunc {
	return func(ctx context.Context, evt *ports.Event, ec *dispatch.EventContext, caps dispatch.Captures) (dispatch.Result, error) {
		movie, err := ec.Films.GetMovie(ctx, caps["id"], true)
		if err != nil {
			d.sendError(ctx, evt.ChatID, ec)
			d.ack(ctx, evt)
			return dispatch.Handled, err
		}

		if len(movie.Images) == 0 {
			_, err := d.Bot.SendMessage(ctx, ports.SendMessageParams{
				ChatID: evt.ChatID,
				Text:   ec.T("no_images"),
			})
			d.ack(ctx, evt)
			return dispatch.Handled, err
		}

		stills := movie.Images
		if len(stills) > imagesLimit {
			stills = stills[:imagesLimit]
		}
		if err := d.Bot.SendAlbum(ctx, evt.ChatID, stills); err != nil {
			_, sendErr := d.Bot.SendMessage(ctx, ports.SendMessageParams{
				ChatID: evt.ChatID,
				Text:   ec.T("no_images"),
			})
			d.ack(ctx, evt)
			if sendErr != nil {
				return dispatch.Handled, sendErr
			}
			return dispatch.Handled, err
		}
		d.ack(ctx, evt)
		return dispatch.Handled, nil
	}
}
