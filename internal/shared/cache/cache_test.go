package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/cache"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brandList struct {
	Names []string `json:"names"`
}

func TestRemember(t *testing.T) {
	ctx := context.Background()
	args := map[string]string{"brand": "sunsilk"}
	key := cache.Key("brand-by-slug", args)
	tagKey := cache.TagKey(cache.TagBrands)
	value := brandList{Names: []string{"Sunsilk"}}
	encoded, _ := json.Marshal(value)

	t.Run("miss then hit within ttl fetches once", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		c := cache.New(rdb)
		calls := 0
		fetch := func(ctx context.Context) (brandList, error) {
			calls++
			return value, nil
		}

		mock.ExpectGet(key).RedisNil()
		mock.ExpectSet(key, encoded, cache.DefaultTTL).SetVal("OK")
		mock.ExpectSAdd(tagKey, key).SetVal(1)
		mock.ExpectExpire(tagKey, cache.DefaultTTL).SetVal(true)
		mock.ExpectGet(key).SetVal(string(encoded))

		first, err := cache.Remember(ctx, c, "brand-by-slug", args, cache.DefaultTTL, []string{cache.TagBrands}, fetch)
		require.NoError(t, err)
		second, err := cache.Remember(ctx, c, "brand-by-slug", args, cache.DefaultTTL, []string{cache.TagBrands}, fetch)
		require.NoError(t, err)

		assert.Equal(t, 1, calls)
		assert.Equal(t, value, first)
		assert.Equal(t, value, second)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("expired entry fetches again", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		c := cache.New(rdb)
		calls := 0
		fetch := func(ctx context.Context) (brandList, error) {
			calls++
			return value, nil
		}

		for i := 0; i < 2; i++ {
			mock.ExpectGet(key).RedisNil()
			mock.ExpectSet(key, encoded, cache.DefaultTTL).SetVal("OK")
			mock.ExpectSAdd(tagKey, key).SetVal(1)
			mock.ExpectExpire(tagKey, cache.DefaultTTL).SetVal(true)
		}

		_, err := cache.Remember(ctx, c, "brand-by-slug", args, cache.DefaultTTL, []string{cache.TagBrands}, fetch)
		require.NoError(t, err)
		_, err = cache.Remember(ctx, c, "brand-by-slug", args, cache.DefaultTTL, []string{cache.TagBrands}, fetch)
		require.NoError(t, err)

		assert.Equal(t, 2, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis down falls through to fetch", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		c := cache.New(rdb)
		mock.ExpectGet(key).SetErr(errors.New("connection refused"))

		got, err := cache.Remember(ctx, c, "brand-by-slug", args, cache.DefaultTTL, nil, func(ctx context.Context) (brandList, error) {
			return value, nil
		})
		require.NoError(t, err)
		assert.Equal(t, value, got)
	})

	t.Run("fetch error is not cached", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		c := cache.New(rdb)
		mock.ExpectGet(key).RedisNil()

		_, err := cache.Remember(ctx, c, "brand-by-slug", args, cache.DefaultTTL, nil, func(ctx context.Context) (brandList, error) {
			return brandList{}, errors.New("db down")
		})
		assert.EqualError(t, err, "db down")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil client passes through", func(t *testing.T) {
		c := cache.New(nil)
		calls := 0
		for i := 0; i < 3; i++ {
			_, _ = cache.Remember(ctx, c, "brand-by-slug", args, cache.DefaultTTL, nil, func(ctx context.Context) (brandList, error) {
				calls++
				return value, nil
			})
		}
		assert.Equal(t, 3, calls)
	})
}

func TestInvalidate(t *testing.T) {
	ctx := context.Background()
	rdb, mock := redismock.NewClientMock()
	c := cache.New(rdb)

	tagKey := cache.TagKey(cache.TagKnowledge)
	mock.ExpectSMembers(tagKey).SetVal([]string{"cache:knowledge-list:a", "cache:knowledge-list:b"})
	mock.ExpectDel("cache:knowledge-list:a", "cache:knowledge-list:b", tagKey).SetVal(3)

	require.NoError(t, c.Invalidate(ctx, cache.TagKnowledge))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTagsFor(t *testing.T) {
	assert.ElementsMatch(t, []string{cache.TagBrands, cache.TagCategories}, cache.TagsFor("products"))
	assert.Equal(t, []string{cache.TagQualityTraining}, cache.TagsFor("quality_training_subdetails"))
	assert.Empty(t, cache.TagsFor("outbox_events"))
}
