// Package engine ties the match resolver to a channel database snapshot:
// broadcast lookups by extracted callsign, premium matching by name, and
// category resolution across both.
package engine

import (
	"github.com/rs/zerolog"

	"github.com/streammapparr/streammatch/internal/chandb"
	"github.com/streammapparr/streammatch/internal/log"
	"github.com/streammapparr/streammatch/internal/match"
)

// Engine resolves channel names against the current database snapshot.
// All methods are safe for concurrent use; the snapshot is read atomically
// per call.
type Engine struct {
	store    *chandb.Store
	resolver *match.Resolver
	opts     match.Options
	logger   zerolog.Logger
}

// New builds an engine. The logger is the engine's injected diagnostics
// sink; pass a disabled logger to silence it.
func New(store *chandb.Store, resolver *match.Resolver, opts match.Options, logger zerolog.Logger) *Engine {
	return &Engine{store: store, resolver: resolver, opts: opts, logger: logger}
}

// Resolve matches query against an arbitrary candidate list.
func (e *Engine) Resolve(query string, candidates []string) match.MatchResult {
	res := e.resolver.Resolve(query, candidates, e.opts)
	e.logger.Debug().
		Str(log.FieldQuery, query).
		Str(log.FieldMatched, res.Name).
		Int(log.FieldScore, res.Score).
		Str(log.FieldMatchType, res.Type.String()).
		Msg("resolved")
	return res
}

// MatchBroadcast extracts a callsign from name and looks it up, first under
// the exact callsign, then under its suffix-stripped base form. The
// extracted callsign is returned even when no record is found, which
// distinguishes "unknown station" from "no callsign in the name".
func (e *Engine) MatchBroadcast(name string) (string, *chandb.Record) {
	callsign, ok := match.ExtractCallsign(name)
	if !ok {
		return "", nil
	}
	snap := e.store.Snapshot()
	if rec := snap.ByCallsign(callsign); rec != nil {
		return callsign, rec
	}
	if rec := snap.ByCallsign(match.StripCallsignSuffix(callsign)); rec != nil {
		return callsign, rec
	}
	return callsign, nil
}

// CategoryFor resolves the database category for a channel name: broadcast
// callsign lookup first, then premium name matching. The boolean reports
// whether a record was found at all.
func (e *Engine) CategoryFor(name string) (string, bool) {
	if callsign, rec := e.MatchBroadcast(name); rec != nil {
		e.logger.Debug().
			Str(log.FieldChannel, name).
			Str(log.FieldCallsign, callsign).
			Str(log.FieldCategory, rec.Category).
			Msg("category via broadcast callsign")
		return rec.Category, true
	}

	snap := e.store.Snapshot()
	names := snap.PremiumNames()
	if len(names) == 0 {
		return "", false
	}
	res := e.resolver.Resolve(name, names, e.opts)
	if res.Type == match.MatchNone {
		return "", false
	}
	for _, rec := range snap.Premium() {
		if rec.Name == res.Name {
			e.logger.Debug().
				Str(log.FieldChannel, name).
				Str(log.FieldMatched, rec.Name).
				Int(log.FieldScore, res.Score).
				Str(log.FieldCategory, rec.Category).
				Msg("category via premium match")
			return rec.Category, true
		}
	}
	return "", false
}
