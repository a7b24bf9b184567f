package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"learnhub/internal/cache"
	"learnhub/internal/domain"
	"learnhub/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const DefaultQuizCacheTTL = 10 * time.Minute

// QuizCacheService is a read-through cache of quiz trees keyed by module.
type QuizCacheService interface {
	// GetQuizTree returns (nil, nil) when the module has no quiz.
	GetQuizTree(ctx context.Context, moduleID int64) (*domain.Quiz, error)
	Invalidate(ctx context.Context, moduleID int64)
}

type quizCacheServiceImpl struct {
	cache domain.Cache
	repo  domain.QuizRepository
	ttl   time.Duration
	group singleflight.Group
}

// quizCacheEntry is a cached tree stamped with the module version it was loaded under.
type quizCacheEntry struct {
	Version string       `json:"version"`
	Quiz    *domain.Quiz `json:"quiz"`
}

// NewQuizCacheService wraps repo with cache. A nil cache disables caching.
func NewQuizCacheService(c domain.Cache, repo domain.QuizRepository, ttl time.Duration) QuizCacheService {
	if ttl <= 0 {
		ttl = DefaultQuizCacheTTL
	}
	return &quizCacheServiceImpl{cache: c, repo: repo, ttl: ttl}
}

// GetQuizTree serves an entry only when it carries the current module version.
// The version is read before loading, so a tree loaded before an Invalidate
// is stamped with the old version and never served afterwards.
func (s *quizCacheServiceImpl) GetQuizTree(ctx context.Context, moduleID int64) (*domain.Quiz, error) {
	if s.cache == nil {
		return s.repo.FindQuizTreeByModule(ctx, moduleID)
	}

	key := cache.QuizByModuleKey(moduleID)
	version, err := s.version(ctx, moduleID)
	if err != nil {
		logger.Get().Warn("QuizCache: version read failed, bypassing cache", zap.Int64("module_id", moduleID), zap.Error(err))
		return s.repo.FindQuizTreeByModule(ctx, moduleID)
	}

	if quiz, ok := s.lookup(ctx, key, version); ok {
		return quiz, nil
	}

	v, err, _ := s.group.Do(key+"@"+version, func() (interface{}, error) {
		quiz, err := s.repo.FindQuizTreeByModule(ctx, moduleID)
		if err != nil || quiz == nil {
			return quiz, err
		}
		s.store(ctx, key, quizCacheEntry{Version: version, Quiz: quiz})
		return quiz, nil
	})
	if err != nil {
		return nil, err
	}
	quiz, _ := v.(*domain.Quiz)
	return quiz, nil
}

// Invalidate bumps the module version before dropping the entry.
func (s *quizCacheServiceImpl) Invalidate(ctx context.Context, moduleID int64) {
	if s.cache == nil {
		return
	}
	if _, err := s.cache.Incr(ctx, cache.QuizVersionKey(moduleID)); err != nil {
		logger.Get().Warn("QuizCache: failed to bump version", zap.Int64("module_id", moduleID), zap.Error(err))
	}
	key := cache.QuizByModuleKey(moduleID)
	if err := s.cache.Delete(ctx, key); err != nil {
		logger.Get().Warn("QuizCache: failed to invalidate", zap.String("key", key), zap.Error(err))
	}
}

// version is "0" until the module is first invalidated.
func (s *quizCacheServiceImpl) version(ctx context.Context, moduleID int64) (string, error) {
	v, err := s.cache.Get(ctx, cache.QuizVersionKey(moduleID))
	if errors.Is(err, domain.ErrCacheMiss) {
		return "0", nil
	}
	return v, err
}

func (s *quizCacheServiceImpl) lookup(ctx context.Context, key, version string) (*domain.Quiz, bool) {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("QuizCache: get failed, falling back to database", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var entry quizCacheEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil || entry.Quiz == nil {
		logger.Get().Warn("QuizCache: dropping undecodable entry", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if entry.Version != version {
		return nil, false
	}
	return entry.Quiz, true
}

func (s *quizCacheServiceImpl) store(ctx context.Context, key string, entry quizCacheEntry) {
	raw, err := json.Marshal(entry)
	if err != nil {
		logger.Get().Warn("QuizCache: failed to encode quiz", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.ttl); err != nil {
		logger.Get().Warn("QuizCache: set failed", zap.String("key", key), zap.Error(err))
	}
}
