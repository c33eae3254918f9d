package agent_test

import (
	"context"
	"testing"
	"time"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/agent"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openDB(t *testing.T) *gorm.DB {
	return testdb.Open(t, agent.Models()...)
}

func TestRepository_ListFilter(t *testing.T) {
	db := openDB(t)
	repo := agent.NewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &agent.Agent{ID: "u-1", Name: "Budi", Email: "budi@cc.id", Category: agent.CategoryInbound, Active: true}))
	require.NoError(t, repo.Create(ctx, &agent.Agent{ID: "u-2", Name: "Ani", Email: "ani@cc.id", Category: agent.CategoryOutbound, Active: true}))
	require.NoError(t, repo.Create(ctx, &agent.Agent{ID: "u-3", Name: "Citra", Email: "citra@cc.id", Category: agent.CategoryInbound, Active: false}))

	all, err := repo.List(ctx, agent.AgentFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Ani", all[0].Name)

	active := true
	inbound, err := repo.List(ctx, agent.AgentFilter{Category: agent.CategoryInbound, Active: &active})
	require.NoError(t, err)
	require.Len(t, inbound, 1)
	assert.Equal(t, "u-1", inbound[0].ID)

	found, err := repo.List(ctx, agent.AgentFilter{Q: "CITRA"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.False(t, found[0].Active)
}

func TestRepository_UpsertIdentityKeepsProfile(t *testing.T) {
	db := openDB(t)
	repo := agent.NewRepository(db)
	ctx := context.Background()

	nip := "123"
	require.NoError(t, repo.Create(ctx, &agent.Agent{ID: "u-1", Name: "Budi Santoso", Email: "old@cc.id", Active: true, NIP: &nip}))
	require.NoError(t, repo.UpsertIdentity(ctx, &agent.Agent{ID: "u-1", Name: "budi", Email: "new@cc.id", Active: true}))

	a, err := repo.FindByID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", a.Name)
	assert.Equal(t, "new@cc.id", a.Email)
	require.NotNil(t, a.NIP)
	assert.Equal(t, "123", *a.NIP)

	require.NoError(t, repo.UpsertIdentity(ctx, &agent.Agent{ID: "u-2", Name: "ani", Email: "ani@cc.id", Active: true}))
	_, err = repo.FindByID(ctx, "u-2")
	assert.NoError(t, err)
}

func TestRepository_Performance(t *testing.T) {
	db := openDB(t)
	repo := agent.NewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &agent.Agent{ID: "u-1", Name: "Budi", Email: "budi@cc.id", Active: true}))

	empty, err := repo.AveragePerformance(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), empty.Count)
	assert.Zero(t, empty.CSAT)

	now := time.Now()
	require.NoError(t, repo.CreatePerformance(ctx, &agent.PerformanceRecord{AgentID: "u-1", QAScore: 80, CSAT: 4, AFRT: 30, RecordedAt: now.Add(-48 * time.Hour)}))
	require.NoError(t, repo.CreatePerformance(ctx, &agent.PerformanceRecord{AgentID: "u-1", QAScore: 90, CSAT: 5, AFRT: 20, RecordedAt: now}))

	records, err := repo.ListPerformance(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, float64(90), records[0].QAScore)

	avg, err := repo.AveragePerformance(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), avg.Count)
	assert.InDelta(t, 85, avg.QAScore, 0.001)
	assert.InDelta(t, 4.5, avg.CSAT, 0.001)
	assert.InDelta(t, 25, avg.AFRT, 0.001)

	require.NoError(t, repo.Delete(ctx, "u-1"))
	records, err = repo.ListPerformance(ctx, "u-1")
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.ErrorIs(t, repo.Delete(ctx, "u-1"), gorm.ErrRecordNotFound)
}
