package translation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// Store is the subset of the valkey client the cache needs.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

// CachedTranslator memoizes translations of identical (sourceLang, text)
// pairs. Cache failures fall through to the wrapped backend; they never fail
// the translation itself.
type CachedTranslator struct {
	next  Translator
	store Store
	ttl   time.Duration
}

func NewCachedTranslator(next Translator, store Store, ttl time.Duration) *CachedTranslator {
	return &CachedTranslator{next: next, store: store, ttl: ttl}
}

func (c *CachedTranslator) Translate(ctx context.Context, text string, sourceLang string) (Translation, error) {
	key := cacheKey(text, sourceLang)

	if raw, err := c.store.Get(ctx, key); err == nil {
		var cached Translation
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			slog.Debug("[TranslationCache] Cache hit",
				slog.String("source_language", sourceLang))
			return cached, nil
		}
	}

	result, err := c.next.Translate(ctx, text, sourceLang)
	if err != nil {
		return Translation{}, err
	}

	if raw, err := json.Marshal(result); err == nil {
		if err := c.store.Set(ctx, key, string(raw), c.ttl); err != nil {
			slog.Warn("[TranslationCache] Failed to cache translation",
				slog.String("error", err.Error()))
		}
	}

	return result, nil
}

func cacheKey(text, sourceLang string) string {
	hash := sha256.Sum256([]byte(fmt.Sprintf("%s:%s", sourceLang, text)))
	return "translation:" + hex.EncodeToString(hash[:])
}
