package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"petsitter-booking/internal/handler/httperr"
	"petsitter-booking/internal/pkg/clock"
	"petsitter-booking/internal/pkg/config"
	"petsitter-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var ErrRateLimited = errs.New("rate limit exceeded")

const defaultIdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// SubmitLimiter throttles request submission per client IP.
// Clients idle for longer than idleTTL are dropped on the next sweep.
type SubmitLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	every     rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
	clock     clock.Clock
	logger    *slog.Logger
}

func NewSubmitLimiter(cfg config.Config, clk clock.Clock, logger *slog.Logger) *SubmitLimiter {
	perMinute := cfg.RateLimit.SubmitPerMinute
	if perMinute <= 0 {
		perMinute = 10
	}
	burst := cfg.RateLimit.SubmitBurst
	if burst <= 0 {
		burst = 1
	}
	ttl := cfg.RateLimit.IdleTTL
	if ttl <= 0 {
		ttl = defaultIdleTTL
	}
	return &SubmitLimiter{
		visitors:  make(map[string]*visitor),
		every:     rate.Every(time.Minute / time.Duration(perMinute)),
		burst:     burst,
		idleTTL:   ttl,
		lastSweep: clk.Now(),
		clock:     clk,
		logger:    logger,
	}
}

func (s *SubmitLimiter) allow(ip string) bool {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastSweep) >= s.idleTTL {
		s.sweep(now)
	}
	v, ok := s.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(s.every, s.burst)}
		s.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// sweep must be called with mu held.
func (s *SubmitLimiter) sweep(now time.Time) {
	for ip, v := range s.visitors {
		if now.Sub(v.lastSeen) >= s.idleTTL {
			delete(s.visitors, ip)
		}
	}
	s.lastSweep = now
}

// Tracked reports how many clients currently hold a limiter.
func (s *SubmitLimiter) Tracked() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.visitors)
}

func (s *SubmitLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !s.allow(ip) {
			s.logger.Warn("Rate limit exceeded", "ip", ip, "request_id", GetRequestID(c))
			httperr.AbortWithError(c, http.StatusTooManyRequests, ErrRateLimited, "Too many submissions. Try again later.", nil)
			return
		}
		c.Next()
	}
}
