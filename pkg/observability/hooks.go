// Package observability lets a host program watch the shelf pipeline, the
// artifact and cover caches, and cover downloads.
//
// Libraries report events through [Pipeline], [Cache] and [HTTP]. Until a
// program registers its own hooks those return [Noop]. The bookshelf CLI
// registers [LogHooks] when run with --verbose:
//
//	observability.Register(observability.NewLogHooks(logger))
//	defer observability.Reset()
package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// PlanStats summarises a computed shelf plan.
type PlanStats struct {
	Books  int // records produced
	Rows   int // shelves
	Tilted int // tilted books across all shelves
}

// PipelineHooks receives plan and render events.
type PipelineHooks interface {
	OnPlanStart(ctx context.Context, books, booksPerRow int)
	OnPlanComplete(ctx context.Context, stats PlanStats, duration time.Duration, err error)
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// CacheHooks receives cache lookups and writes. keyType is "artifact" or
// "cover".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks receives cover download events. OnError covers transport
// failures only; error statuses arrive through OnResponse.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, host, path string)
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)
	OnError(ctx context.Context, method, host, path string, err error)
}

// Hooks is the full set of hook interfaces. Register accepts any value
// and installs every interface it implements.
type Hooks interface {
	PipelineHooks
	CacheHooks
	HTTPHooks
}

// Noop ignores every event. Embed it to implement only some methods.
type Noop struct{}

func (Noop) OnPlanStart(context.Context, int, int)                                  {}
func (Noop) OnPlanComplete(context.Context, PlanStats, time.Duration, error)        {}
func (Noop) OnRenderStart(context.Context, []string)                                {}
func (Noop) OnRenderComplete(context.Context, []string, time.Duration, error)       {}
func (Noop) OnCacheHit(context.Context, string)                                     {}
func (Noop) OnCacheMiss(context.Context, string)                                    {}
func (Noop) OnCacheSet(context.Context, string, int)                                {}
func (Noop) OnRequest(context.Context, string, string, string)                      {}
func (Noop) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (Noop) OnError(context.Context, string, string, string, error)                 {}

var _ Hooks = Noop{}

type registry struct {
	pipeline PipelineHooks
	cache    CacheHooks
	http     HTTPHooks
}

var current atomic.Pointer[registry]

func init() { Reset() }

func load() registry { return *current.Load() }

// update swaps in a modified copy of the registry.
func update(fn func(r *registry)) {
	for {
		old := current.Load()
		next := *old
		fn(&next)
		if current.CompareAndSwap(old, &next) {
			return
		}
	}
}

// Register installs h for every hook interface it implements. Values that
// implement none of them are ignored.
func Register(h any) {
	update(func(r *registry) {
		if p, ok := h.(PipelineHooks); ok {
			r.pipeline = p
		}
		if c, ok := h.(CacheHooks); ok {
			r.cache = c
		}
		if x, ok := h.(HTTPHooks); ok {
			r.http = x
		}
	})
}

// SetPipelineHooks installs pipeline hooks. nil is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h != nil {
		update(func(r *registry) { r.pipeline = h })
	}
}

// SetCacheHooks installs cache hooks. nil is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		update(func(r *registry) { r.cache = h })
	}
}

// SetHTTPHooks installs HTTP hooks. nil is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h != nil {
		update(func(r *registry) { r.http = h })
	}
}

// Pipeline returns the installed pipeline hooks.
func Pipeline() PipelineHooks { return load().pipeline }

// Cache returns the installed cache hooks.
func Cache() CacheHooks { return load().cache }

// HTTP returns the installed HTTP hooks.
func HTTP() HTTPHooks { return load().http }

// Reset reinstalls Noop everywhere.
func Reset() {
	current.Store(&registry{pipeline: Noop{}, cache: Noop{}, http: Noop{}})
}
