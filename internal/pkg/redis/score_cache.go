package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Kredible-Inc/kredible-lending/internal/pkg/logger"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/models"

	"github.com/redis/go-redis/v9"
)

const scoreKeyPrefix = "credit_score:"

// ScoreCache keeps computed credit score breakdowns in Redis so repeated
// lookups within the staleness window skip the factor recomputation.
type ScoreCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewScoreCache(client *redis.Client, ttl time.Duration) *ScoreCache {
	return &ScoreCache{client: client, ttl: ttl}
}

func scoreKey(walletAddress string) string {
	return scoreKeyPrefix + walletAddress
}

// GetScore returns the cached breakdown for the wallet, or (nil, nil) on a
// cache miss.
func (c *ScoreCache) GetScore(ctx context.Context, walletAddress string) (*models.CreditScore, error) {
	raw, err := c.client.Get(ctx, scoreKey(walletAddress)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		logger.Error(ctx, "scoreCache : Error reading %s %v", walletAddress, err.Error())
		return nil, err
	}

	var score models.CreditScore
	if err := json.Unmarshal([]byte(raw), &score); err != nil {
		logger.Error(ctx, "scoreCache : Corrupt entry for %s %v", walletAddress, err.Error())
		return nil, fmt.Errorf("scoreCache : corrupt entry for %s: %w", walletAddress, err)
	}
	return &score, nil
}

func (c *ScoreCache) SetScore(ctx context.Context, walletAddress string, score models.CreditScore) error {
	raw, err := json.Marshal(score)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, scoreKey(walletAddress), raw, c.ttl).Err(); err != nil {
		logger.Error(ctx, "scoreCache : Error writing %s %v", walletAddress, err.Error())
		return err
	}
	return nil
}

// Invalidate drops the cached score, typically after a loan state change that
// feeds the factor inputs.
func (c *ScoreCache) Invalidate(ctx context.Context, walletAddress string) error {
	if err := c.client.Del(ctx, scoreKey(walletAddress)).Err(); err != nil {
		logger.Error(ctx, "scoreCache : Error invalidating %s %v", walletAddress, err.Error())
		return err
	}
	return nil
}
