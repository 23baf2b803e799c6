// Package bot owns the route table: which handler sees which event, and in
// what order. Registration order is the priority order the dispatcher
// honors.
package bot

import (
	"regexp"

	"FaffinityBot/internal/bot/handlers"
	"FaffinityBot/internal/core/ports"
	"FaffinityBot/internal/dispatch"
)

var (
	messages  = []ports.EventKind{ports.KindMessage}
	callbacks = []ports.EventKind{ports.KindCallback}
	inline    = []ports.EventKind{ports.KindInline}
	chats     = []ports.EventKind{ports.KindMessage, ports.KindCallback}
)

// MountRoutes registers every route. The order encodes the handler
// priorities:
//
//  1. the private gate silently drops group/channel events; inline queries
//     are outside its kind set and always served.
//  2. the delete callback and the user commands, then the free-text title
//     search (its pattern refuses the command prefix).
//  3. the admin gate, then admin commands.
func MountRoutes(d *dispatch.Dispatcher, deps *handlers.Deps, loc dispatch.Localizer) {
	d.Mount(
		dispatch.Route{
			Name:    "private_gate",
			Kinds:   chats,
			Handler: handlers.PrivateGate(),
		},
		dispatch.Route{
			Name:    "delete",
			Kinds:   callbacks,
			Pattern: regexp.MustCompile(`^delete(?:_(?P<msg1>\d+))?(?:_(?P<msg2>\d+))?$`),
			Handler: handlers.Delete(deps),
		},
		dispatch.Route{
			Name:    "inline_search",
			Kinds:   inline,
			Handler: handlers.InlineSearch(deps),
		},
		dispatch.Route{
			Name:    "start",
			Kinds:   messages,
			Pattern: regexp.MustCompile(`^/start(?: lang_(?P<lang>es|en)(?:_id_(?P<id>\d+))?)?$`),
			Handler: handlers.Start(deps),
		},
		dispatch.Route{
			Name:    "movie_deep_link",
			Kinds:   messages,
			Pattern: regexp.MustCompile(`^/start lang_(?:es|en)_id_(?P<id>\d+)$`),
			Handler: handlers.Movie(deps),
		},
		dispatch.Route{
			Name:    "help",
			Kinds:   messages,
			Pattern: regexp.MustCompile(`^/help$`),
			Handler: handlers.Help(deps),
		},
		dispatch.Route{
			Name:    "support",
			Kinds:   messages,
			Pattern: regexp.MustCompile(`^/support$`),
			Handler: handlers.Support(deps),
		},
		dispatch.Route{
			Name:    "language",
			Kinds:   messages,
			Pattern: regexp.MustCompile(`^/language$`),
			Handler: handlers.Language(deps),
		},
		dispatch.Route{
			Name:    "top",
			Kinds:   messages,
			Pattern: regexp.MustCompile(`^/top$`),
			Handler: handlers.Top(deps),
		},
		dispatch.Route{
			Name:    "search_cast",
			Kinds:   messages,
			Pattern: regexp.MustCompile(`^/cast (?P<cast>.+)$`),
			Handler: handlers.Search(deps),
		},
		dispatch.Route{
			Name:    "search_director",
			Kinds:   messages,
			Pattern: regexp.MustCompile(`^/director (?P<director>.+)$`),
			Handler: handlers.Search(deps),
		},
		dispatch.Route{
			Name:    "movie_detail",
			Kinds:   callbacks,
			Pattern: regexp.MustCompile(`^film_(?P<id>\d+)$`),
			Handler: handlers.Movie(deps),
		},
		dispatch.Route{
			Name:    "synopsis",
			Kinds:   callbacks,
			Pattern: regexp.MustCompile(`^synopsis_(?P<id>\d+)$`),
			Handler: handlers.Synopsis(deps),
		},
		dispatch.Route{
			Name:    "awards",
			Kinds:   callbacks,
			Pattern: regexp.MustCompile(`^awards_(?P<id>\d+)$`),
			Handler: handlers.Awards(deps),
		},
		dispatch.Route{
			Name:    "reviews",
			Kinds:   callbacks,
			Pattern: regexp.MustCompile(`^reviews_(?P<id>\d+)$`),
			Handler: handlers.Reviews(deps),
		},
		dispatch.Route{
			Name:    "images",
			Kinds:   callbacks,
			Pattern: regexp.MustCompile(`^images_(?P<id>\d+)$`),
			Handler: handlers.Images(deps),
		},
		dispatch.Route{
			Name:    "select_language",
			Kinds:   callbacks,
			Pattern: regexp.MustCompile(`^lang_(?P<lang>es|en)$`),
			Handler: handlers.SelectLanguage(deps, loc),
		},
		dispatch.Route{
			Name:    "select_top",
			Kinds:   callbacks,
			Pattern: regexp.MustCompile(`^top_(?P<provider>\w+)$`),
			Handler: handlers.SelectTop(deps),
		},
		dispatch.Route{
			Name:    "search_title",
			Kinds:   messages,
			Pattern: regexp.MustCompile(`(?s)^(?P<title>[^/].*)$`),
			Handler: handlers.Search(deps),
		},
		dispatch.Route{
			Name:    "admin_gate",
			Kinds:   messages,
			Handler: handlers.AdminGate(deps.AdminID),
		},
		dispatch.Route{
			Name:    "list_ads",
			Kinds:   messages,
			Pattern: regexp.MustCompile(`^/ads$`),
			Handler: handlers.ListAds(deps),
		},
		dispatch.Route{
			Name:    "change_ad",
			Kinds:   messages,
			Pattern: regexp.MustCompile(`(?s)^/change_ad_(?P<index>[0-4]) (?P<ad>.+)$`),
			Handler: handlers.ChangeAd(deps),
		},
		dispatch.Route{
			Name:    "session",
			Kinds:   messages,
			Pattern: regexp.MustCompile(`^/session$`),
			Handler: handlers.Session(deps),
		},
		dispatch.Route{
			Name:    "broadcast",
			Kinds:   messages,
			Pattern: regexp.MustCompile(`^/broadcast (?P<lang>es|en|all)$`),
			Handler: handlers.Broadcast(deps),
		},
		dispatch.Route{
			Name:    "stats",
			Kinds:   messages,
			Pattern: regexp.MustCompile(`^/stats$`),
			Handler: handlers.BotStats(deps),
		},
	)
}
