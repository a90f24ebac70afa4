// Package tenantpool bounds the database handles held open per tenant.
// Handles are created lazily on first acquisition, reused across requests,
// recycled least-recently-used once a tenant hits capacity, and dropped by a
// background sweeper after sitting idle past a TTL.
package tenantpool

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/campuslms/rewards-api/pkg/logger"
)

const (
	DefaultMaxPerTenant  = 5
	DefaultIdleTTL       = 30 * time.Minute
	DefaultSweepInterval = 10 * time.Minute
)

// Opener creates a live database handle for a tenant DSN.
type Opener func(ctx context.Context, dsn string) (*gorm.DB, error)

// Closer releases a handle previously returned by an Opener.
type Closer func(db *gorm.DB) error

type conn struct {
	db       *gorm.DB
	tenantID string
	lastUsed time.Time
}

type Options struct {
	MaxPerTenant  int
	IdleTTL       time.Duration
	SweepInterval time.Duration
	Open          Opener
	Close         Closer
}

// Pool owns every pooled tenant connection. Handlers borrow handles through
// Acquire and never close them themselves.
type Pool struct {
	mu      sync.Mutex
	tenants map[string][]*conn

	maxPerTenant  int
	idleTTL       time.Duration
	sweepInterval time.Duration
	open          Opener
	close         Closer
	logger        *logger.Logger

	stopCh  chan struct{}
	wg      sync.WaitGroup
	started bool
}

func New(opts Options, log *logger.Logger) *Pool {
	if opts.MaxPerTenant <= 0 {
		opts.MaxPerTenant = DefaultMaxPerTenant
	}
	if opts.IdleTTL <= 0 {
		opts.IdleTTL = DefaultIdleTTL
	}
	if opts.SweepInterval <= 0 {
		opts.SweepInterval = DefaultSweepInterval
	}
	if opts.Close == nil {
		opts.Close = closeGormDB
	}

	return &Pool{
		tenants:       make(map[string][]*conn),
		maxPerTenant:  opts.MaxPerTenant,
		idleTTL:       opts.IdleTTL,
		sweepInterval: opts.SweepInterval,
		open:          opts.Open,
		close:         opts.Close,
		logger:        log,
	}
}

// Acquire returns a live handle for the tenant behind dsn. Below capacity a
// fresh handle is opened; at capacity the least-recently-used handle is
// refreshed and returned. All pool mutation happens under one lock, so the
// per-tenant cap holds even for concurrent acquisitions.
func (p *Pool) Acquire(ctx context.Context, dsn, tenantID string) (*gorm.DB, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pool := p.tenants[dsn]

	if len(pool) < p.maxPerTenant {
		db, err := p.open(ctx, dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open tenant connection: %w", err)
		}

		p.tenants[dsn] = append(pool, &conn{
			db:       db,
			tenantID: tenantID,
			lastUsed: time.Now(),
		})
		p.logger.Infof("Created connection for tenant %s. Pool size: %d/%d",
			tenantID, len(pool)+1, p.maxPerTenant)

		return db, nil
	}

	// Pool is full, recycle the least recently used handle.
	lru := pool[0]
	for _, c := range pool[1:] {
		if c.lastUsed.Before(lru.lastUsed) {
			lru = c
		}
	}
	lru.lastUsed = time.Now()

	return lru.db, nil
}

// Start launches the background sweeper. Call Shutdown to stop it.
func (p *Pool) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return
	}
	p.started = true
	p.stopCh = make(chan struct{})

	p.wg.Add(1)
	go p.run()
}

func (p *Pool) run() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopCh:
			return
		case <-ticker.C:
			p.sweep(time.Now())
		}
	}
}

// sweep closes and drops every handle idle longer than the TTL, removing a
// tenant's pool entirely once empty. Handles are closed outside the lock so
// a slow close never stalls request-serving acquisitions.
func (p *Pool) sweep(now time.Time) {
	var expired []*conn

	p.mu.Lock()
	for dsn, pool := range p.tenants {
		kept := pool[:0]
		for _, c := range pool {
			if now.Sub(c.lastUsed) > p.idleTTL {
				expired = append(expired, c)
			} else {
				kept = append(kept, c)
			}
		}

		if len(kept) == 0 {
			delete(p.tenants, dsn)
		} else {
			p.tenants[dsn] = kept
		}
	}
	p.mu.Unlock()

	for _, c := range expired {
		if err := p.close(c.db); err != nil {
			p.logger.Error("Failed to close expired tenant connection", err)
		}
	}

	if len(expired) > 0 {
		p.logger.Infof("Cleaned %d expired tenant connections", len(expired))
	}
}

// Shutdown stops the sweeper and closes every pooled handle across all
// tenants concurrently. Used at process termination only.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if p.started {
		p.started = false
		close(p.stopCh)
	}
	var all []*conn
	for _, pool := range p.tenants {
		all = append(all, pool...)
	}
	p.tenants = make(map[string][]*conn)
	p.mu.Unlock()

	p.wg.Wait()

	var closeWG sync.WaitGroup
	for _, c := range all {
		closeWG.Add(1)
		go func(c *conn) {
			defer closeWG.Done()
			if err := p.close(c.db); err != nil {
				p.logger.Error("Failed to close tenant connection", err)
			}
		}(c)
	}

	done := make(chan struct{})
	go func() {
		closeWG.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.logger.Infof("Closed %d tenant connections", len(all))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TenantStats is one tenant's slice of a pool snapshot. The DSN is redacted
// before it leaves this package.
type TenantStats struct {
	Database       string `json:"database"`
	Connections    int    `json:"connections"`
	MaxConnections int    `json:"max_connections"`
}

// Stats returns a point-in-time snapshot of pool occupancy per tenant.
func (p *Pool) Stats() []TenantStats {
	p.mu.Lock()
	defer p.mu.Unlock()

	stats := make([]TenantStats, 0, len(p.tenants))
	for dsn, pool := range p.tenants {
		stats = append(stats, TenantStats{
			Database:       redactDSN(dsn),
			Connections:    len(pool),
			MaxConnections: p.maxPerTenant,
		})
	}
	return stats
}

var (
	urlPasswordRe = regexp.MustCompile(`:[^:@/]+@`)
	kvPasswordRe  = regexp.MustCompile(`password=\S+`)
)

func redactDSN(dsn string) string {
	dsn = urlPasswordRe.ReplaceAllString(dsn, ":****@")
	return kvPasswordRe.ReplaceAllString(dsn, "password=****")
}

func closeGormDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
