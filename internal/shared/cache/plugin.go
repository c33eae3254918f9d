package cache

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const pluginName = "cache:invalidation"

type Invalidator interface {
	Invalidate(ctx context.Context, tags ...string) error
}

// InvalidationPlugin hooks gorm's create/update/delete callbacks and drops the
// tags registered for the written table, so no mutation has to remember to.
//
// Tags are only dropped once the write is committed. Writes inside an explicit
// transaction are held until Transaction sees the commit succeed.
type InvalidationPlugin struct {
	inv    Invalidator
	logger *zap.Logger

	mu      sync.Mutex
	pending map[gorm.ConnPool]map[string]struct{}
}

func NewInvalidationPlugin(inv Invalidator, logger ...*zap.Logger) *InvalidationPlugin {
	l := zap.L().Named("cache.plugin")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cache.plugin")
	}
	return &InvalidationPlugin{inv: inv, logger: l, pending: map[gorm.ConnPool]map[string]struct{}{}}
}

func (p *InvalidationPlugin) Name() string {
	return pluginName
}

func (p *InvalidationPlugin) Initialize(db *gorm.DB) error {
	const after = "gorm:commit_or_rollback_transaction"
	cb := db.Callback()
	if err := cb.Create().After(after).Register("cache:invalidate_create", p.afterWrite); err != nil {
		return err
	}
	if err := cb.Update().After(after).Register("cache:invalidate_update", p.afterWrite); err != nil {
		return err
	}
	return cb.Delete().After(after).Register("cache:invalidate_delete", p.afterWrite)
}

func (p *InvalidationPlugin) afterWrite(db *gorm.DB) {
	if db.Error != nil || db.Statement == nil || db.Statement.RowsAffected == 0 {
		return
	}

	table := db.Statement.Table
	if table == "" && db.Statement.Schema != nil {
		table = db.Statement.Schema.Table
	}

	tags := TagsFor(table)
	if len(tags) == 0 {
		return
	}

	// still inside a caller's transaction: the default one has already been
	// committed and its pool swapped back by now
	if inTx(db.Statement.ConnPool) {
		p.hold(db.Statement.ConnPool, tags)
		return
	}

	p.invalidate(db.Statement.Context, tags)
}

func (p *InvalidationPlugin) invalidate(ctx context.Context, tags []string) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := p.inv.Invalidate(context.WithoutCancel(ctx), tags...); err != nil {
		p.logger.Warn("auto invalidation failed", zap.Strings("tags", tags), zap.Error(err))
	}
}

func (p *InvalidationPlugin) hold(pool gorm.ConnPool, tags []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	set, ok := p.pending[pool]
	if !ok {
		set = map[string]struct{}{}
		p.pending[pool] = set
	}
	for _, t := range tags {
		set[t] = struct{}{}
	}
}

func (p *InvalidationPlugin) take(pool gorm.ConnPool) []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	set := p.pending[pool]
	delete(p.pending, pool)
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	return out
}

func inTx(pool gorm.ConnPool) bool {
	_, ok := pool.(gorm.TxCommitter)
	return ok
}

// Transaction runs fn in a gorm transaction and drops the tags its writes
// touched after the commit. A rolled back transaction drops nothing. Nested
// calls leave the invalidation to the outermost one.
func Transaction(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	db = db.WithContext(ctx)
	if inTx(db.Statement.ConnPool) {
		return db.Transaction(fn)
	}

	var pool gorm.ConnPool
	err := db.Transaction(func(tx *gorm.DB) error {
		pool = tx.Statement.ConnPool
		return fn(tx)
	})

	p, ok := db.Config.Plugins[pluginName].(*InvalidationPlugin)
	if !ok || pool == nil {
		return err
	}
	tags := p.take(pool)
	if err == nil && len(tags) > 0 {
		p.invalidate(ctx, tags)
	}
	return err
}
