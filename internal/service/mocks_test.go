package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"learnhub/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockQuizRepository ---
type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) FindQuizByModule(ctx context.Context, moduleID int64) (*domain.Quiz, error) {
	args := m.Called(ctx, moduleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) FindQuizTreeByModule(ctx context.Context, moduleID int64) (*domain.Quiz, error) {
	args := m.Called(ctx, moduleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) CreateQuiz(ctx context.Context, quiz *domain.Quiz) (int64, error) {
	args := m.Called(ctx, quiz)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuizRepository) CreateQuestion(ctx context.Context, question *domain.Question) (int64, error) {
	args := m.Called(ctx, question)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuizRepository) CreateChoice(ctx context.Context, choice *domain.Choice) (int64, error) {
	args := m.Called(ctx, choice)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuizRepository) UpdateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}

func (m *MockQuizRepository) DeleteQuestionsOfQuiz(ctx context.Context, quizID int64) error {
	args := m.Called(ctx, quizID)
	return args.Error(0)
}

func (m *MockQuizRepository) DeleteQuiz(ctx context.Context, quizID int64) error {
	args := m.Called(ctx, quizID)
	return args.Error(0)
}

// --- MockModuleRepository ---
type MockModuleRepository struct {
	mock.Mock
}

func (m *MockModuleRepository) FindModule(ctx context.Context, id int64) (*domain.Module, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Module), args.Error(1)
}

func (m *MockModuleRepository) FindModuleByTitle(ctx context.Context, title string) (*domain.Module, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Module), args.Error(1)
}

func (m *MockModuleRepository) CreateModule(ctx context.Context, module *domain.Module) (int64, error) {
	args := m.Called(ctx, module)
	return args.Get(0).(int64), args.Error(1)
}

// --- MockTransactionManager ---
// Runs fn inline and records how many transactions were opened.
type MockTransactionManager struct {
	Calls int
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	return fn(ctx)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Incr(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- memoryCache ---
type memoryCache struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string]string)}
}

func (c *memoryCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return v, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memoryCache) Incr(ctx context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, _ := strconv.ParseInt(c.data[key], 10, 64)
	n++
	c.data[key] = strconv.FormatInt(n, 10)
	return n, nil
}

func (c *memoryCache) Ping(ctx context.Context) error { return nil }
