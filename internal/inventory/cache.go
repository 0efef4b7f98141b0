package inventory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultTTL is the maximum snapshot age before a rebuild is required.
	DefaultTTL = 300 * time.Second

	// DefaultCollectorTimeout bounds a single collector invocation. Expiry
	// counts as a collector failure, not a hang.
	DefaultCollectorTimeout = 10 * time.Second
)

// Collector produces partial application records from one data source.
// A Collect error marks the whole contribution unavailable; the cache
// absorbs it and proceeds with the remaining collectors.
type Collector interface {
	Name() string
	Collect(ctx context.Context) ([]Record, error)
}

// Config configures a Cache.
type Config struct {
	// Collectors in invocation order. The order is a contract: it decides
	// merge tie-breaks, earlier collectors win (see Merge).
	Collectors []Collector

	TTL              time.Duration
	CollectorTimeout time.Duration

	// Now is the clock used for TTL decisions and build stamps. Nil means
	// time.Now.
	Now func() time.Time

	// OnRebuild, when set, observes every completed rebuild with the new
	// snapshot's record count.
	OnRebuild func(apps int)

	Logger *zap.Logger
}

// Cache holds at most one reconciled snapshot. Readers load an atomically
// swapped reference; rebuilds serialize on a mutex, collect and merge off
// to the side, and swap the reference last. A rebuild is all-or-nothing:
// old data is never blended with partial new data.
type Cache struct {
	collectors []Collector
	ttl        time.Duration
	timeout    time.Duration
	now        func() time.Time
	onRebuild  func(int)
	log        *zap.Logger

	buildMu sync.Mutex
	snap    atomic.Pointer[Snapshot]
}

// New creates an empty cache. The first Snapshot call populates it.
func New(cfg Config) *Cache {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.CollectorTimeout <= 0 {
		cfg.CollectorTimeout = DefaultCollectorTimeout
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Cache{
		collectors: cfg.Collectors,
		ttl:        cfg.TTL,
		timeout:    cfg.CollectorTimeout,
		now:        cfg.Now,
		onRebuild:  cfg.OnRebuild,
		log:        cfg.Logger,
	}
}

// Snapshot returns a valid inventory snapshot, rebuilding through the
// collectors when the held snapshot is stale, absent, or force is set.
func (c *Cache) Snapshot(ctx context.Context, force bool) (*Snapshot, error) {
	if !force {
		if snap := c.snap.Load(); c.fresh(snap) {
			return snap, nil
		}
	}
	return c.rebuild(ctx, force)
}

// Current returns the held snapshot without any freshness check or
// rebuild. It may be nil before the first build.
func (c *Cache) Current() *Snapshot {
	return c.snap.Load()
}

func (c *Cache) fresh(snap *Snapshot) bool {
	return snap != nil && c.now().Sub(snap.BuiltAt) < c.ttl
}

func (c *Cache) rebuild(ctx context.Context, force bool) (*Snapshot, error) {
	c.buildMu.Lock()
	defer c.buildMu.Unlock()

	// A concurrent rebuild may have landed while we waited on the lock.
	if !force {
		if snap := c.snap.Load(); c.fresh(snap) {
			return snap, nil
		}
	}

	var records []Record
	for _, col := range c.collectors {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		part, err := c.collect(ctx, col)
		if err != nil {
			// Partial data beats total failure: this collector contributes
			// nothing and the rebuild continues.
			c.log.Warn("collector unavailable",
				zap.String("collector", col.Name()),
				zap.Error(err))
			continue
		}
		records = append(records, part...)
	}

	apps := Merge(records)
	sort.Slice(apps, func(i, j int) bool {
		return strings.ToLower(apps[i].Name) < strings.ToLower(apps[j].Name)
	})

	snap := &Snapshot{Apps: apps, BuiltAt: c.now()}
	c.snap.Store(snap)

	if c.onRebuild != nil {
		c.onRebuild(len(apps))
	}
	c.log.Info("inventory rebuilt",
		zap.Int("apps", len(apps)),
		zap.Int("raw_records", len(records)))
	return snap, nil
}

func (c *Cache) collect(ctx context.Context, col Collector) ([]Record, error) {
	cctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return col.Collect(cctx)
}
