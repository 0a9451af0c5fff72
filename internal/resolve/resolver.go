package resolve

import (
	"context"
	"log/slog"

	"github.com/mkurien/skillpath/internal/llm"
	"github.com/mkurien/skillpath/internal/skills"
)

// Resolver produces a dependency record for any skill name using a
// strict precedence chain: static table, pattern matcher, cache, remote
// inference. The first two are deterministic and free; the cache avoids
// repeat remote calls; inference is the last resort and always yields a
// minimally-valid record, so Resolve never fails.
type Resolver struct {
	cache    *Cache
	inferrer *Inferrer
}

// NewResolver builds a Resolver with its own cache.
func NewResolver(provider llm.Provider, logger *slog.Logger) *Resolver {
	return &Resolver{
		cache:    NewCache(0),
		inferrer: NewInferrer(provider, DefaultInferConfig(), logger),
	}
}

// NewResolverWithCache builds a Resolver around an existing cache,
// letting tests and composing hosts control cache lifetime.
func NewResolverWithCache(provider llm.Provider, cache *Cache, logger *slog.Logger) *Resolver {
	if cache == nil {
		cache = NewCache(0)
	}
	return &Resolver{
		cache:    cache,
		inferrer: NewInferrer(provider, DefaultInferConfig(), logger),
	}
}

// Resolve returns the dependency record for a skill name. The same key
// always wins at the same tier, so results are deterministic up to the
// remote backend.
func (r *Resolver) Resolve(ctx context.Context, name string, uc skills.UserContext) Record {
	if rec, ok := LookupStatic(name); ok {
		return rec
	}
	if rec, ok := MatchPattern(name); ok {
		return rec
	}

	key := NormalizeName(name)
	if rec, ok := r.cache.Get(key); ok {
		return rec
	}

	rec := r.inferrer.Infer(ctx, name, uc)
	r.cache.Put(key, rec)
	return rec
}

// ResolveLocal tries only the zero-latency tiers: static table, pattern
// matcher, cache. The recommendation engine uses it to score candidate
// skills without fanning out network calls.
func (r *Resolver) ResolveLocal(name string) (Record, bool) {
	if rec, ok := LookupStatic(name); ok {
		return rec, true
	}
	if rec, ok := MatchPattern(name); ok {
		return rec, true
	}
	return r.cache.Get(NormalizeName(name))
}

// Cache exposes the resolution cache for observability.
func (r *Resolver) Cache() *Cache {
	return r.cache
}
