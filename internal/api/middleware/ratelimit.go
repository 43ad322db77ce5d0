package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/nuisibook-booking/internal/api/handlers"
)

const (
	msgRateLimited        = "trop de demandes, veuillez réessayer plus tard"
	msgLimiterUnavailable = "service momentanément indisponible"
)

// fixed window: первый INCR в окне ставит TTL
var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RateLimiter ограничивает число запросов с одного клиента за окно
type RateLimiter struct {
	rdb      redis.Scripter
	limit    int
	window   time.Duration
	prefix   string
	failOpen bool
	trusted  []netip.Prefix
	metrics  RateLimitMetrics
	log      Logger
}

// RateLimitOptions параметры лимитера
type RateLimitOptions struct {
	Limit    int
	Window   time.Duration
	Prefix   string
	FailOpen bool // пропускать запросы, если Redis недоступен

	// TrustedProxies адреса прокси, которым доверяем X-Forwarded-For.
	// Пусто: ключ всегда по RemoteAddr.
	TrustedProxies []netip.Prefix
}

// ParseTrustedProxies разбирает список IP и CIDR ("10.0.0.0/8", "192.0.2.1")
func ParseTrustedProxies(raw []string) ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(raw))
	for _, item := range raw {
		item = strings.TrimSpace(item)
		if strings.Contains(item, "/") {
			p, err := netip.ParsePrefix(item)
			if err != nil {
				return nil, fmt.Errorf("invalid trusted proxy %q: %w", item, err)
			}
			prefixes = append(prefixes, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(item)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", item, err)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}

// NewRateLimiter создает лимитер поверх Redis
func NewRateLimiter(rdb redis.Scripter, opts RateLimitOptions, metrics RateLimitMetrics, log Logger) *RateLimiter {
	if opts.Limit <= 0 {
		opts.Limit = 10
	}
	if opts.Window <= 0 {
		opts.Window = time.Minute
	}
	opts.Prefix = strings.TrimSpace(opts.Prefix)
	if opts.Prefix == "" {
		opts.Prefix = "rl"
	}
	return &RateLimiter{
		rdb:      rdb,
		limit:    opts.Limit,
		window:   opts.Window,
		prefix:   opts.Prefix,
		failOpen: opts.FailOpen,
		trusted:  opts.TrustedProxies,
		metrics:  metrics,
		log:      log,
	}
}

// Middleware возвращает mux middleware
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := rl.clientKey(r)
		count, err := rl.incr(r.Context(), rl.prefix+":"+client)
		if err != nil {
			rl.log.Warn("%s %s - Rate limiter error: %v", r.Method, r.URL.Path, err)
			if rl.failOpen {
				next.ServeHTTP(w, r)
				return
			}
			handlers.RespondServiceUnavailable(w, msgLimiterUnavailable)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		remaining := int64(rl.limit) - count
		if remaining < 0 {
			remaining = 0
		}
		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(rl.limit) {
			rl.metrics.IncRateLimited(routePath(r))
			rl.log.Warn("%s %s - Rate limit exceeded: client=%s, count=%d", r.Method, r.URL.Path, client, count)
			w.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			handlers.RespondError(w, http.StatusTooManyRequests, msgRateLimited)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) incr(ctx context.Context, key string) (int64, error) {
	res, err := fixedWindowScript.Run(ctx, rl.rdb, []string{key}, rl.window.Milliseconds()).Result()
	if err != nil {
		return 0, err
	}
	switch v := res.(type) {
	case int64:
		return v, nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected redis script result type %T", res)
	}
}

// clientKey адрес клиента для ключа лимита. X-Forwarded-For читается только
// от доверенного прокси: берем самый правый недоверенный адрес цепочки.
func (rl *RateLimiter) clientKey(r *http.Request) string {
	remote := remoteHost(r)
	if !rl.isTrusted(remote) {
		return remote
	}

	fwd := r.Header.Values("X-Forwarded-For")
	if len(fwd) == 0 {
		return remote
	}
	hops := strings.Split(strings.Join(fwd, ","), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if _, err := netip.ParseAddr(hop); err != nil {
			// мусор в цепочке: дальше доверять нельзя
			return remote
		}
		if !rl.isTrusted(hop) {
			return hop
		}
	}
	return remote
}

func (rl *RateLimiter) isTrusted(host string) bool {
	if len(rl.trusted) == 0 {
		return false
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range rl.trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}
