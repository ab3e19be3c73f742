package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/novinshop/core/internal/pkg/kv"
	"go.uber.org/zap"
)

const defaultNamespace = "reco"

// Engine is the stateful half of the recommendation subsystem: it records
// reader signals (views, bookmarks) through an injected blob store and reads
// them back to personalize feeds. It is an enhancement layer, not a system of
// record: reads degrade to empty defaults and failed writes are logged and
// dropped, so the public surface never returns an error.
type Engine struct {
	store kv.Store
	ns    string
	log   *zap.Logger
	now   func() time.Time
}

// Options configures an Engine. Zero values fall back to the "reco"
// namespace, a no-op logger and the wall clock.
type Options struct {
	Namespace string
	Logger    *zap.Logger
	Clock     func() time.Time
}

func NewEngine(store kv.Store, opts Options) *Engine {
	ns := opts.Namespace
	if ns == "" {
		ns = defaultNamespace
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Engine{store: store, ns: ns, log: log, now: clock}
}

func (e *Engine) viewedKey(uid string) string    { return fmt.Sprintf("%s:viewed:%s", e.ns, uid) }
func (e *Engine) patternKey(uid string) string   { return fmt.Sprintf("%s:pattern:%s", e.ns, uid) }
func (e *Engine) bookmarksKey(uid string) string { return fmt.Sprintf("%s:bookmarks:%s", e.ns, uid) }

// load deserializes the blob at key into v. Missing keys, store failures and
// corrupt payloads all report false; the caller substitutes its default.
func (e *Engine) load(ctx context.Context, key string, v interface{}) bool {
	data, ok, err := e.store.Get(ctx, key)
	if err != nil || !ok {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

// persist serializes v under key. Failures are logged and swallowed; the
// update is simply lost.
func (e *Engine) persist(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		e.log.Warn("recommend: serialize failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := e.store.Set(ctx, key, data); err != nil {
		e.log.Warn("recommend: persist failed", zap.String("key", key), zap.Error(err))
	}
}

func (e *Engine) remove(ctx context.Context, key string) {
	if err := e.store.Remove(ctx, key); err != nil {
		e.log.Warn("recommend: remove failed", zap.String("key", key), zap.Error(err))
	}
}

// Personalized is the stateful feed entry point: it loads the reader's
// pattern and ranks the corpus with GeneratePersonalizedRecommendations.
func (e *Engine) Personalized(ctx context.Context, uid string, corpus []ContentItem, limit int) []RecommendationScore {
	pattern := e.GetReadingPatterns(ctx, uid)
	return GeneratePersonalizedRecommendations(corpus, pattern, limit)
}
