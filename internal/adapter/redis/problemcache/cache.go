package problemcache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/core/ports/primary"
	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/core/ports/secondary"
	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/domain"
)

const (
	problemKeyPrefix  = "problem:"
	problemExpiration = 5 * time.Minute
)

// ProblemCache is a read-through Redis cache in front of a problem
// repository. Cache failures degrade to direct reads; they never fail
// the grading request.
type ProblemCache struct {
	redisClient *redis.Client
	next        secondary.ProblemRepository
	logger      primary.Logger
}

var _ secondary.ProblemRepository = (*ProblemCache)(nil)

func New(redisClient *redis.Client, next secondary.ProblemRepository, logger primary.Logger) *ProblemCache {
	return &ProblemCache{
		redisClient: redisClient,
		next:        next,
		logger:      logger,
	}
}

// GetProblem returns the cached problem when present, otherwise loads it
// from the underlying repository and caches the result.
func (c *ProblemCache) GetProblem(ctx context.Context, problemID uuid.UUID) (*domain.Problem, error) {
	key := problemKeyPrefix + problemID.String()

	data, err := c.redisClient.Get(ctx, key).Bytes()
	if err == nil {
		var problem domain.Problem
		if err := json.Unmarshal(data, &problem); err == nil {
			return &problem, nil
		}
		c.logger.Warn("Discarding corrupt cached problem", "problemId", problemID)
	} else if err != redis.Nil {
		c.logger.Warn("Problem cache read failed", "problemId", problemID, "error", err)
	}

	problem, err := c.next.GetProblem(ctx, problemID)
	if err != nil || problem == nil {
		return problem, err
	}

	if data, err := json.Marshal(problem); err == nil {
		if err := c.redisClient.Set(ctx, key, data, problemExpiration).Err(); err != nil {
			c.logger.Warn("Problem cache write failed", "problemId", problemID, "error", err)
		}
	}

	return problem, nil
}

// GetTestCaseConfig is not cached: link overrides are tiny, edited during
// assessment setup, and staleness there changes what gets graded.
func (c *ProblemCache) GetTestCaseConfig(ctx context.Context, linkID uuid.UUID) (*domain.TestCaseConfig, error) {
	return c.next.GetTestCaseConfig(ctx, linkID)
}
