package dispatch

import (
	"context"
	"regexp"

	"FaffinityBot/internal/core/domain"
	"FaffinityBot/internal/core/ports"

	"github.com/rs/zerolog"
)

// Result tells the dispatcher whether to keep walking the route table.
type Result int

const (
	// Continue lets later routes see the event.
	Continue Result = iota
	// Handled stops propagation for the current event.
	Handled
)

// Captures holds the named groups extracted by a route's pattern.
type Captures map[string]string

// EventContext is built once per event before any content handler runs and
// passed to every handler. It is immutable for the event's lifetime.
type EventContext struct {
	// Lang is the resolved language for the sender.
	Lang string
	// T looks up a localized template for the resolved language.
	T func(messageID string) string
	// Td is T with template data.
	Td func(messageID string, data map[string]interface{}) string
	// Films is the data gateway bound to the resolved language.
	Films ports.FilmGateway
}

// Handler is a guarded unit of logic bound to one or more event shapes.
type Handler interface {
	Handle(ctx context.Context, evt *ports.Event, ec *EventContext, caps Captures) (Result, error)
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(ctx context.Context, evt *ports.Event, ec *EventContext, caps Captures) (Result, error)

func (f HandlerFunc) Handle(ctx context.Context, evt *ports.Event, ec *EventContext, caps Captures) (Result, error) {
	return f(ctx, evt, ec, caps)
}

// Route binds an event kind set and an optional payload pattern to a
// handler. Routes are tried in registration order; the first handler that
// returns Handled ends the chain.
type Route struct {
	Name    string
	Kinds   []ports.EventKind
	Pattern *regexp.Regexp
	Handler Handler
}

func (r *Route) matchesKind(kind ports.EventKind) bool {
	for _, k := range r.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Localizer is the slice of the i18n manager the dispatcher needs.
type Localizer interface {
	T(lang, messageID string) string
	Td(lang, messageID string, data map[string]interface{}) string
}

// GatewayFactory yields a language-bound film gateway.
type GatewayFactory interface {
	ForLang(lang string) ports.FilmGateway
}

// deepLinkPattern extracts the optional language parameter from an
// invitation URL's start payload. The captured code is validated against
// the supported set; unknown codes fall back to the default.
var deepLinkPattern = regexp.MustCompile(`^/start lang_([a-z]{2})`)

// Dispatcher routes one inbound event through the ordered route table with
// a per-event context resolved up front.
type Dispatcher struct {
	log      zerolog.Logger
	users    ports.UserRepository
	loc      Localizer
	gateways GatewayFactory
	routes   []Route
}

// NewDispatcher creates an empty dispatcher. Routes are added with Mount in
// priority order.
func NewDispatcher(
	users ports.UserRepository,
	loc Localizer,
	gateways GatewayFactory,
	baseLogger *zerolog.Logger,
) *Dispatcher {
	return &Dispatcher{
		log:      baseLogger.With().Str("component", "dispatcher").Logger(),
		users:    users,
		loc:      loc,
		gateways: gateways,
	}
}

// Mount appends routes to the table. Registration order is priority order.
func (d *Dispatcher) Mount(routes ...Route) {
	for _, rt := range routes {
		d.routes = append(d.routes, rt)
		d.log.Info().Str("route", rt.Name).Msg("Mounted route")
	}
}

// Dispatch resolves the sender's context and walks the route table until a
// handler claims the event. Handler errors are logged and never escape.
func (d *Dispatcher) Dispatch(ctx context.Context, evt *ports.Event) {
	ctxLogger := d.log.With().
		Int64("user_id", evt.SenderID).
		Str("kind", evt.Kind.String()).
		Logger()
	ctx = ctxLogger.WithContext(ctx)

	ec := d.resolveContext(ctx, evt)
	payload := evt.Payload()

	for i := range d.routes {
		rt := &d.routes[i]
		if !rt.matchesKind(evt.Kind) {
			continue
		}

		var caps Captures
		if rt.Pattern != nil {
			match := rt.Pattern.FindStringSubmatch(payload)
			if match == nil {
				continue
			}
			caps = namedCaptures(rt.Pattern, match)
		}

		result, err := rt.Handler.Handle(ctx, evt, ec, caps)
		if err != nil {
			ctxLogger.Error().Err(err).Str("route", rt.Name).Msg("Handler failed")
		}
		if result == Handled {
			return
		}
	}

	ctxLogger.Debug().Str("payload", payload).Msg("No route claimed the event")
}

// resolveContext implements the language fallback chain: stored preference,
// then deep-link parameter, then the default. First contact persists the
// resolved value so resolution is idempotent afterwards.
func (d *Dispatcher) resolveContext(ctx context.Context, evt *ports.Event) *EventContext {
	log := zerolog.Ctx(ctx)

	lang, found, err := d.users.GetLang(ctx, evt.SenderID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read user language, using default")
		lang, found = domain.DefaultLang, true
	}

	if !found {
		lang = domain.DefaultLang
		if evt.Kind == ports.KindMessage {
			if m := deepLinkPattern.FindStringSubmatch(evt.Text); m != nil && domain.IsSupportedLang(m[1]) {
				lang = m[1]
			}
		}
		if err := d.users.SetLang(ctx, evt.SenderID, lang); err != nil {
			log.Error().Err(err).Msg("Failed to persist first-contact language")
		}
	}

	return &EventContext{
		Lang: lang,
		T: func(messageID string) string {
			return d.loc.T(lang, messageID)
		},
		Td: func(messageID string, data map[string]interface{}) string {
			return d.loc.Td(lang, messageID, data)
		},
		Films: d.gateways.ForLang(lang),
	}
}

// namedCaptures maps the pattern's named groups to their matched values.
// Unnamed groups are dropped, unmatched optional groups are absent.
func namedCaptures(pattern *regexp.Regexp, match []string) Captures {
	caps := make(Captures)
	for i, name := range pattern.SubexpNames() {
		if name == "" || i >= len(match) || match[i] == "" {
			continue
		}
		caps[name] = match[i]
	}
	return caps
}
