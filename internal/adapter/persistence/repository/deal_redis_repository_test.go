package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"dealdesk/internal/domain/entities"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisRepo(t *testing.T) (*DealRedisRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewDealRedisRepository(rdb, "test:deals"), mr
}

func sampleDeal(id string) entities.Deal {
	d := entities.NewEmptyDeal(id, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	d.Name = "Deal " + id
	d.ReportedEbitda = 400000
	d.AdjustedEbitda = 480000
	d.Addbacks = []entities.AdjustmentLine{{Description: "Owner salary", Amount: 80000}}
	bank := 450000.0
	d.BankEbitdaOverride = &bank
	d.ChangeLog = []entities.ChangeLogEntry{{
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Field:     entities.FieldAdjustedEbitda,
		OldValue:  400000,
		NewValue:  480000,
		Reason:    "QoE",
	}}
	return d
}

func TestDealRedisRepository_CRUD(t *testing.T) {
	repo, _ := newTestRedisRepo(t)
	ctx := context.Background()

	deals, err := repo.LoadDeals(ctx)
	require.NoError(t, err)
	assert.NotNil(t, deals)
	assert.Empty(t, deals)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	a, b := sampleDeal("a"), sampleDeal("b")
	_, err = repo.Put(ctx, a)
	require.NoError(t, err)
	_, err = repo.Put(ctx, b)
	require.NoError(t, err)

	a.Name = "Renamed"
	_, err = repo.Put(ctx, a)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, a, got)

	deals, err = repo.LoadDeals(ctx)
	require.NoError(t, err)
	require.Len(t, deals, 2)
	assert.Equal(t, "Renamed", deals[0].Name, "upsert keeps list position")

	deleted, err := repo.Delete(ctx, "a")
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = repo.Delete(ctx, "a")
	require.NoError(t, err)
	assert.False(t, deleted)

	deals, err = repo.LoadDeals(ctx)
	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.Equal(t, "b", deals[0].ID)
}

func TestDealRedisRepository_SaveDealsReplacesWorkspace(t *testing.T) {
	repo, mr := newTestRedisRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveDeals(ctx, []entities.Deal{sampleDeal("x"), sampleDeal("y")}))
	require.NoError(t, repo.SaveDeals(ctx, []entities.Deal{sampleDeal("z")}))

	deals, err := repo.LoadDeals(ctx)
	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.Equal(t, "z", deals[0].ID)

	require.NoError(t, repo.SaveDeals(ctx, nil))
	raw, err := mr.Get("test:deals")
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestDealRedisRepository_CorruptValue(t *testing.T) {
	repo, mr := newTestRedisRepo(t)
	require.NoError(t, mr.Set("test:deals", `{"not":"a list"}`))

	_, err := repo.LoadDeals(context.Background())
	assert.Error(t, err)
	_, err = repo.Put(context.Background(), sampleDeal("a"))
	assert.Error(t, err, "corrupt workspace is never overwritten by a single-deal write")
}

func TestDealRedisRepository_ConcurrentPuts(t *testing.T) {
	repo, _ := newTestRedisRepo(t)
	ctx := context.Background()

	ids := []string{"a", "b", "c", "d", "e", "f"}
	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := repo.Put(ctx, sampleDeal(id))
			assert.NoError(t, err)
		}(id)
	}
	wg.Wait()

	deals, err := repo.LoadDeals(ctx)
	require.NoError(t, err)
	assert.Len(t, deals, len(ids))
}

// afterFirstGet runs fn once, right after the first GET the client sends.
type afterFirstGet struct {
	once sync.Once
	fn   func()
}

func (h *afterFirstGet) DialHook(next redis.DialHook) redis.DialHook { return next }

func (h *afterFirstGet) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		if cmd.Name() == "get" {
			h.once.Do(h.fn)
		}
		return err
	}
}

func (h *afterFirstGet) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func TestDealRedisRepository_DeleteLosesRace(t *testing.T) {
	other, mr := newTestRedisRepo(t)
	ctx := context.Background()

	_, err := other.Put(ctx, sampleDeal("a"))
	require.NoError(t, err)

	var otherDeleted bool
	var otherErr error
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	rdb.AddHook(&afterFirstGet{fn: func() {
		otherDeleted, otherErr = other.Delete(ctx, "a")
	}})
	repo := NewDealRedisRepository(rdb, "test:deals")

	deleted, err := repo.Delete(ctx, "a")
	require.NoError(t, err)
	require.NoError(t, otherErr)
	assert.True(t, otherDeleted)
	assert.False(t, deleted, "a delete that lost the race must not report success")

	deals, err := repo.LoadDeals(ctx)
	require.NoError(t, err)
	assert.Empty(t, deals)
}
