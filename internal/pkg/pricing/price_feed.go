package pricing

import (
	"context"
	"strconv"
	"time"

	"github.com/Kredible-Inc/kredible-lending/configs"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const xlmPriceKey = "price:XLM_USDC"

// PriceFeed supplies the XLM/USDC price used for collateral conversion.
type PriceFeed interface {
	XLMPriceUSDC(ctx context.Context) (float64, error)
}

// StaticPriceFeed serves the configured price. It is the fallback when no
// cached quote is present and the default feed in tests.
type StaticPriceFeed struct {
	price float64
}

func NewStaticPriceFeed() *StaticPriceFeed {
	return &StaticPriceFeed{price: configs.XLM_PRICE_USDC}
}

func NewStaticPriceFeedWithPrice(price float64) *StaticPriceFeed {
	return &StaticPriceFeed{price: price}
}

func (f *StaticPriceFeed) XLMPriceUSDC(ctx context.Context) (float64, error) {
	return f.price, nil
}

// CachedPriceFeed reads the latest quote written to Redis by the price
// ingestion job, falling back to the wrapped feed when the key is absent.
type CachedPriceFeed struct {
	client   *redis.Client
	fallback PriceFeed
	ttl      time.Duration
}

func NewCachedPriceFeed(client *redis.Client, fallback PriceFeed) *CachedPriceFeed {
	return &CachedPriceFeed{client: client, fallback: fallback, ttl: 5 * time.Minute}
}

func (f *CachedPriceFeed) XLMPriceUSDC(ctx context.Context) (float64, error) {
	raw, err := f.client.Get(ctx, xlmPriceKey).Result()
	if err == nil {
		price, parseErr := strconv.ParseFloat(raw, 64)
		if parseErr == nil && price > 0 {
			return price, nil
		}
		logger.Warn(ctx, "priceFeed : Unparseable cached quote %q", raw)
	} else if err != redis.Nil {
		logger.Error(ctx, "priceFeed : Redis read failed %v", err.Error())
	}

	price, err := f.fallback.XLMPriceUSDC(ctx)
	if err != nil {
		return 0, err
	}

	if setErr := f.client.Set(ctx, xlmPriceKey, strconv.FormatFloat(price, 'f', -1, 64), f.ttl).Err(); setErr != nil {
		logger.Warn(ctx, "priceFeed : Failed to cache quote %v", setErr.Error())
	}
	return price, nil
}
