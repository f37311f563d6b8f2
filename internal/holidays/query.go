package holidays

import (
	"strconv"
	"sync"
	"time"

	"github.com/username/swiss-holidays/pkg/dateutil"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Engine answers point and range queries over the yearly catalogs.
// It is safe for concurrent use.
type Engine struct {
	now      func() time.Time
	logger   *zap.Logger
	useCache bool

	cache   map[int][]Holiday
	cacheMu sync.RWMutex
	group   singleflight.Group
}

// Option configures an Engine
type Option func(*Engine)

// WithClock sets the clock used by CurrentMonth
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithLogger sets the engine logger
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithoutCache rebuilds the catalog on every query
func WithoutCache() Option {
	return func(e *Engine) {
		e.useCache = false
	}
}

// NewEngine creates a new Engine
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		now:      time.Now,
		logger:   zap.NewNop(),
		useCache: true,
		cache:    make(map[int][]Holiday),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ForYear returns the catalog for year. The caller owns the returned slice.
func (e *Engine) ForYear(year int) []Holiday {
	return cloneAll(e.catalog(year))
}

// catalog returns the shared, read-only catalog for year
func (e *Engine) catalog(year int) []Holiday {
	if !e.useCache {
		return ForYear(year)
	}

	e.cacheMu.RLock()
	cached, ok := e.cache[year]
	e.cacheMu.RUnlock()
	if ok {
		e.logger.Debug("Using cached holiday catalog", zap.Int("year", year))
		return cached
	}

	v, _, _ := e.group.Do(strconv.Itoa(year), func() (interface{}, error) {
		built := ForYear(year)

		e.cacheMu.Lock()
		e.cache[year] = built
		e.cacheMu.Unlock()

		e.logger.Debug("Holiday catalog built",
			zap.Int("year", year),
			zap.Int("holidays", len(built)))
		return built, nil
	})
	return v.([]Holiday)
}

// Lookup returns the first holiday on date that applies to region.
// An empty region matches regional holidays of every canton.
func (e *Engine) Lookup(date dateutil.Date, region Canton) (Holiday, bool) {
	date = date.Normalize()
	for _, h := range e.catalog(date.Year) {
		if h.Date == date && h.AppliesTo(region) {
			return h.clone(), true
		}
	}
	return Holiday{}, false
}

// LookupAll returns every holiday on date that applies to region
func (e *Engine) LookupAll(date dateutil.Date, region Canton) []Holiday {
	date = date.Normalize()
	var out []Holiday
	for _, h := range e.catalog(date.Year) {
		if h.Date == date && h.AppliesTo(region) {
			out = append(out, h.clone())
		}
	}
	return out
}

// InRange returns the holidays in the inclusive interval [start, end] that
// apply to region, sorted by date. A reversed interval yields no holidays.
func (e *Engine) InRange(start, end dateutil.Date, region Canton) []Holiday {
	out := []Holiday{}
	start, end = start.Normalize(), end.Normalize()
	if start.After(end) {
		return out
	}

	// yearly catalogs are sorted, so concatenating them in year order keeps the result sorted
	for year := start.Year; ; year++ {
		for _, h := range e.catalog(year) {
			if h.Date.Between(start, end) && h.AppliesTo(region) {
				out = append(out, h.clone())
			}
		}
		// compared before incrementing so end.Year == math.MaxInt cannot wrap
		if year == end.Year {
			break
		}
	}
	return out
}

// Month returns the holidays of the given month that apply to region
func (e *Engine) Month(year int, month time.Month, region Canton) []Holiday {
	first := dateutil.Date{Year: year, Month: month, Day: 1}
	return e.InRange(first, dateutil.EndOfMonth(first), region)
}

// CurrentMonth returns the holidays of the month the engine clock is in
func (e *Engine) CurrentMonth(region Canton) []Holiday {
	today := dateutil.FromTime(e.now())
	return e.Month(today.Year, today.Month, region)
}

// ClearCache drops all memoized catalogs
func (e *Engine) ClearCache() {
	e.cacheMu.Lock()
	defer e.cacheMu.Unlock()

	e.cache = make(map[int][]Holiday)
	e.logger.Debug("Holiday catalog cache cleared")
}

func cloneAll(in []Holiday) []Holiday {
	out := make([]Holiday, len(in))
	for i, h := range in {
		out[i] = h.clone()
	}
	return out
}

var defaultEngine = NewEngine()

// Lookup is Engine.Lookup on the default engine.
func Lookup(date dateutil.Date, region Canton) (Holiday, bool) {
	return defaultEngine.Lookup(date, region)
}

// InRange is Engine.InRange on the default engine.
func InRange(start, end dateutil.Date, region Canton) []Holiday {
	return defaultEngine.InRange(start, end, region)
}

// CurrentMonth is Engine.CurrentMonth on the default engine, using the wall clock.
func CurrentMonth(region Canton) []Holiday {
	return defaultEngine.CurrentMonth(region)
}
