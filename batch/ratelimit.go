package batch

import (
	"context"
	"strings"
	"sync"

	"github.com/fwojciec/textract"
	"golang.org/x/time/rate"
)

var _ textract.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out requests to the same host with one token bucket
// per host. Hosts are compared case-insensitively. Requests to different
// hosts never wait on each other.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// to each host, without bursting. A non-positive rps disables limiting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
	}
}

// Wait blocks until a request to domain is allowed or ctx is done.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.limiter(strings.ToLower(domain)).Wait(ctx)
}

func (d *DomainLimiter) limiter(domain string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	l, ok := d.limiters[domain]
	if !ok {
		l = rate.NewLimiter(d.limit, 1)
		d.limiters[domain] = l
	}
	return l
}
