package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"recipe-browser/internal/model"
	"recipe-browser/internal/recipe"
	"recipe-browser/internal/recipe/repository"
	"recipe-browser/pkg/log"
)

const (
	defaultMemoSize = 256
	defaultMemoTTL  = 10 * time.Minute
)

// Options tunes the visible-set memo.
type Options struct {
	MemoSize int
	MemoTTL  time.Duration
}

// snapshot is the immutable collection plus everything derived from it.
type snapshot struct {
	recipes  []model.Recipe
	byID     map[string]int
	courses  []string
	tags     []string
	loadedAt time.Time
}

// implUseCase is the private implementation of recipe.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
	memo *expirable.LRU[recipe.Criteria, []model.Recipe]

	once    sync.Once
	mu      sync.RWMutex
	state   recipe.State
	snap    *snapshot
	loadErr error
}

// New creates a new recipe UseCase implementation. The collection starts in
// the loading state until Load completes.
func New(repo repository.Repository, l log.Logger, opt Options) *implUseCase {
	if opt.MemoSize <= 0 {
		opt.MemoSize = defaultMemoSize
	}
	if opt.MemoTTL <= 0 {
		opt.MemoTTL = defaultMemoTTL
	}
	return &implUseCase{
		repo:  repo,
		l:     l,
		memo:  expirable.NewLRU[recipe.Criteria, []model.Recipe](opt.MemoSize, nil, opt.MemoTTL),
		state: recipe.StateLoading,
	}
}

var _ recipe.UseCase = (*implUseCase)(nil)
