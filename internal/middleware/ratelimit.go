package middleware

import (
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/frogcrew/api/internal/model"
)

// RateLimitConfig holds rate limiter configuration
type RateLimitConfig struct {
	Rate    int           // Sustained requests per Window (default 100)
	Window  time.Duration // Refill period for Rate (default 1 minute)
	Burst   int           // Bucket size (default 20)
	IdleTTL time.Duration // Forget clients idle this long (default 2 windows)
	Now     func() time.Time
}

// RateLimiter keeps one token bucket per client key
type RateLimiter struct {
	cfg     RateLimitConfig
	limit   rate.Limit
	mu      sync.Mutex
	clients map[string]*client
	once    sync.Once
	stop    chan struct{}
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a limiter and starts its idle sweep
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	if cfg.Rate <= 0 {
		cfg.Rate = 100
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 20
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = 2 * cfg.Window
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	rl := &RateLimiter{
		cfg:     cfg,
		limit:   rate.Limit(float64(cfg.Rate) / cfg.Window.Seconds()),
		clients: make(map[string]*client),
		stop:    make(chan struct{}),
	}
	go rl.sweepLoop()
	return rl
}

// Stop ends the idle sweep. It may be called more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Allow takes one token from key's bucket. When the bucket is empty it
// reports how long until the next token.
func (rl *RateLimiter) Allow(key string) (allowed bool, remaining int, retryAfter time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.cfg.Now()
	cl, ok := rl.clients[key]
	if !ok {
		cl = &client{limiter: rate.NewLimiter(rl.limit, rl.cfg.Burst)}
		rl.clients[key] = cl
	}
	cl.lastSeen = now

	if cl.limiter.AllowN(now, 1) {
		return true, int(math.Floor(cl.limiter.TokensAt(now))), 0
	}

	missing := 1 - cl.limiter.TokensAt(now)
	wait := time.Duration(missing / float64(rl.limit) * float64(time.Second))
	return false, 0, wait
}

func (rl *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(rl.cfg.IdleTTL)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.sweep()
		case <-rl.stop:
			return
		}
	}
}

func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.cfg.Now().Add(-rl.cfg.IdleTTL)
	for key, cl := range rl.clients {
		if cl.lastSeen.Before(cutoff) {
			delete(rl.clients, key)
		}
	}
}

// RateLimit limits each authenticated member by id and everyone else by
// client IP. Register it after Auth for the member key to apply.
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if id := GetMemberID(c.Request.Context()); id != 0 {
			key = "member:" + strconv.FormatUint(uint64(id), 10)
		}

		allowed, remaining, wait := limiter.Allow(key)
		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.cfg.Burst))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			seconds := int((wait + time.Second - 1) / time.Second)
			if seconds < 1 {
				seconds = 1
			}
			c.Header("Retry-After", strconv.Itoa(seconds))
			abort(c, model.NewRateLimitError(seconds))
			return
		}
		c.Next()
	}
}
