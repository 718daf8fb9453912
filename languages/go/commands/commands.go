// Package commands holds the time ordered history of preference commands for one
// entity.
//
// A command carries an update preferences list that is applied at the command's time.
// Commands accumulate: the preferences an entity shows at time t are its base
// preferences merged with every command at or before t. A clear command removes the
// fields it sets instead of applying them.
//
// Example:
//
//	s, err := commands.New[*simdata.BeamCommand, *simdata.BeamPrefs](ctx)
//	if err != nil {
//		// handle
//	}
//	cmd := &simdata.BeamCommand{}
//	cmd.SetTime(5).MutableUpdatePrefs().MutableCommonPrefs().SetColor(0x5)
//	s.Insert(cmd)
//
//	if err := s.Update(ctx, prefs, 6); err != nil {
//		// handle
//	}
package commands

import (
	"fmt"
	"math"
	"slices"

	"github.com/bearlytools/simdata/languages/go/errors"
	"github.com/bearlytools/simdata/languages/go/field"
	"github.com/bearlytools/simdata/languages/go/reflect"
	"github.com/bearlytools/simdata/languages/go/structs"
	log "github.com/golang/glog"
	"github.com/gostdlib/base/concurrency/sync"
	"github.com/gostdlib/base/context"
	"github.com/gostdlib/base/telemetry/otel/trace/span"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Prefs is a preferences type that commands update.
type Prefs[P any] interface {
	structs.FieldList
	MergeFrom(P)
}

// Command is a generated command type for preferences P.
type Command[C, P any] interface {
	structs.FieldList
	Time() float64
	HasUpdatePrefs() bool
	UpdatePrefs() P
	MutableUpdatePrefs() P
	IsClearCommand() bool
	MergeFrom(C)
}

// Slice is the command history of one entity, sorted by command time. A Slice is safe
// for concurrent use.
type Slice[C Command[C, P], P Prefs[P]] struct {
	mu sync.Mutex

	updates []C
	// cache holds the accumulated update prefs of every command applied so far.
	cache P
	refl  *reflect.Reflection
	// vectors are the paths of every vector field of P.
	vectors []string

	lastUpdate     float64
	earliestInsert float64
	changed        bool

	name    string
	applied metric.Int64Counter
}

// New creates an empty Slice. The counter of applied commands is created on the meter
// in ctx.
func New[C Command[C, P], P Prefs[P]](ctx context.Context) (*Slice[C, P], error) {
	var zero P
	d := zero.Descriptor()
	cache, ok := d.New().(P)
	if !ok {
		return nil, errors.E(ctx, errors.CatInternal, errors.TypeBug, fmt.Errorf("descriptor %s does not create %T", d.Name, zero))
	}

	s := &Slice[C, P]{
		cache:          cache,
		refl:           structs.NewReflection(d),
		lastUpdate:     -math.MaxFloat64,
		earliestInsert: math.MaxFloat64,
		name:           d.Name,
	}
	s.refl.Visit("", func(path string, t field.Type) {
		if field.IsList(t) {
			s.vectors = append(s.vectors, path)
		}
	})

	var err error
	s.applied, err = context.Meter(ctx).Int64Counter(
		"simdata.commands.applied",
		metric.WithDescription("Number of preference commands applied by Update"),
	)
	if err != nil {
		return nil, errors.E(ctx, errors.CatInternal, errors.TypeUnknown, err)
	}
	return s, nil
}

// lowerBound returns the index of the first command at or after t.
func (s *Slice[C, P]) lowerBound(t float64) int {
	i, _ := slices.BinarySearchFunc(s.updates, t, func(c C, t float64) int {
		switch {
		case c.Time() < t:
			return -1
		case c.Time() > t:
			return 1
		}
		return 0
	})
	return i
}

// upperBound returns the index of the first command after t.
func (s *Slice[C, P]) upperBound(t float64) int {
	i, _ := slices.BinarySearchFunc(s.updates, t, func(c C, t float64) int {
		if c.Time() <= t {
			return -1
		}
		return 1
	})
	return i
}

// Insert adds cmd to the history. The Slice takes ownership of cmd. If a command
// already exists at cmd's time, cmd is merged into it and any vector cmd carries
// replaces the existing one.
func (s *Slice[C, P]) Insert(cmd C) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := cmd.Time()
	if t < s.earliestInsert {
		s.earliestInsert = t
	}
	i := s.lowerBound(t)
	if i == len(s.updates) || s.updates[i].Time() != t {
		s.updates = slices.Insert(s.updates, i, cmd)
		return
	}
	existing := s.updates[i]
	if cmd.HasUpdatePrefs() {
		s.clearVectors(existing.MutableUpdatePrefs(), cmd.UpdatePrefs())
	}
	existing.MergeFrom(cmd)
}

// clearVectors clears every vector of dst that is not empty in cond, so that a merge
// from cond replaces the vector instead of appending to it.
func (s *Slice[C, P]) clearVectors(dst, cond P) {
	for _, p := range s.vectors {
		v, _, err := s.refl.GetValue(cond, p)
		if err != nil {
			panic(fmt.Sprintf("commands: vector path %s does not resolve: %s", p, err))
		}
		strs, _ := v.Strings()
		ids, _ := v.IDs()
		if len(strs) == 0 && len(ids) == 0 {
			continue
		}
		s.refl.ClearValue(dst, p)
	}
}

// Update applies the commands at or before t to prefs, which must not be nil. Moving
// forward in time applies only the commands since the last Update, unless a command
// was inserted at or before the last update time. Moving backward replays the history
// from the start. Fields that no command set keep their value in prefs.
func (s *Slice[C, P]) Update(ctx context.Context, prefs P, t float64) error {
	ctx, sp := span.New(ctx, span.WithName("commands.Update"))
	defer sp.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.changed = false
	if len(s.updates) == 0 || t < s.updates[0].Time() {
		s.reset()
		return nil
	}

	var (
		applied int
		err     error
	)
	last, ok := s.current()
	if (!ok || t >= last.Time()) && s.earliestInsert > s.lastUpdate {
		applied, err = s.advance(prefs, s.lastUpdate, t)
		s.changed = applied > 0
	} else {
		s.reset()
		applied, err = s.advance(prefs, s.lastUpdate, t)
		s.changed = true
	}
	if err != nil {
		return errors.E(ctx, errors.CatInternal, errors.TypeBug, err)
	}

	s.clearVectors(prefs, s.cache)
	prefs.MergeFrom(s.cache)
	s.earliestInsert = math.MaxFloat64

	sp.Span.SetAttributes(attribute.String("simdata.type", s.name), attribute.Int("simdata.commands.applied", applied))
	s.applied.Add(ctx, int64(applied), metric.WithAttributes(attribute.String("type", s.name)))
	if log.V(1) {
		log.Infof("commands(%s): update to %v applied %d commands", s.name, t, applied)
	}
	return nil
}

// advance applies the commands in (start, t] to the cache. Clear commands remove their
// fields from the cache and from prefs. It returns the number of commands applied.
func (s *Slice[C, P]) advance(prefs P, start, t float64) (int, error) {
	if t < start {
		return 0, nil
	}
	applied := 0
	for _, cmd := range s.updates[s.upperBound(start):s.upperBound(t)] {
		if !cmd.HasUpdatePrefs() {
			continue
		}
		up := cmd.UpdatePrefs()
		if cmd.IsClearCommand() {
			for _, p := range s.refl.SetPaths(up) {
				if err := s.refl.ClearValue(s.cache, p); err != nil {
					return applied, err
				}
				if err := s.refl.ClearValue(prefs, p); err != nil {
					return applied, err
				}
			}
		} else {
			s.clearVectors(s.cache, up)
			s.cache.MergeFrom(up)
		}
		applied++
		s.lastUpdate = cmd.Time()
	}
	return applied, nil
}

func (s *Slice[C, P]) reset() {
	s.changed = true
	s.cache.Clear()
	s.lastUpdate = -math.MaxFloat64
	s.earliestInsert = math.MaxFloat64
}

func (s *Slice[C, P]) current() (C, bool) {
	i := s.upperBound(s.lastUpdate)
	if i == 0 {
		var zero C
		return zero, false
	}
	return s.updates[i-1], true
}

// Current returns the last command applied by Update.
func (s *Slice[C, P]) Current() (C, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current()
}

// HasChanged reports if the last Update changed the command state.
func (s *Slice[C, P]) HasChanged() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.changed
}

// ClearChanged resets the flag HasChanged reports.
func (s *Slice[C, P]) ClearChanged() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.changed = false
}

// NumItems returns the number of commands held.
func (s *Slice[C, P]) NumItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.updates)
}

// FirstTime returns the time of the first command, or math.MaxFloat64 if there is none.
func (s *Slice[C, P]) FirstTime() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.updates) == 0 {
		return math.MaxFloat64
	}
	return s.updates[0].Time()
}

// LastTime returns the time of the last command, or -math.MaxFloat64 if there is none.
func (s *Slice[C, P]) LastTime() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastTime()
}

func (s *Slice[C, P]) lastTime() float64 {
	if len(s.updates) == 0 {
		return -math.MaxFloat64
	}
	return s.updates[len(s.updates)-1].Time()
}

// StaticTime is the time of a command that holds an entity's static preferences.
const StaticTime = -1.0

// Flush removes every command, unless the slice holds only a static command (time
// StaticTime), which is kept. Use FlushAll to remove a static command too.
func (s *Slice[C, P]) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !(len(s.updates) == 1 && s.updates[0].Time() == StaticTime) {
		s.updates = nil
	}
	s.earliestInsert = math.MaxFloat64
}

// FlushAll removes every command, including a static one.
func (s *Slice[C, P]) FlushAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates = nil
	s.earliestInsert = math.MaxFloat64
}

// FlushRange removes the commands in [start, end).
func (s *Slice[C, P]) FlushRange(start, end float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.lowerBound(start)
	if i == len(s.updates) || s.updates[i].Time() >= end {
		return
	}
	j := s.lowerBound(end)
	s.updates = slices.Delete(s.updates, i, j)
	s.earliestInsert = math.MaxFloat64
}

// LimitByTime removes the commands older than window before the last command. The last
// command is always kept. A negative window is no limit.
func (s *Slice[C, P]) LimitByTime(window float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limitByTime(window)
}

func (s *Slice[C, P]) limitByTime(window float64) {
	if window < 0 || len(s.updates) == 0 {
		return
	}
	limit := s.lastTime() - window
	if limit < 0 {
		return
	}
	i := s.upperBound(limit)
	if i == len(s.updates) {
		i--
	}
	if i == 0 {
		return
	}
	s.updates = slices.Delete(s.updates, 0, i)
}

// LimitByPoints keeps at most the newest n commands. Zero is no limit.
func (s *Slice[C, P]) LimitByPoints(n uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limitByPoints(n)
}

func (s *Slice[C, P]) limitByPoints(n uint32) {
	if n == 0 || len(s.updates) <= int(n) {
		return
	}
	s.updates = slices.Delete(s.updates, 0, len(s.updates)-int(n))
}

// LimitByPrefs applies the dataLimitPoints and then the dataLimitTime of an entity's
// common preferences.
func (s *Slice[C, P]) LimitByPrefs(dataLimitTime float64, dataLimitPoints uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limitByPoints(dataLimitPoints)
	s.limitByTime(dataLimitTime)
}

// Visit calls fn with every command in time order. fn must not change the commands.
func (s *Slice[C, P]) Visit(fn func(C)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.updates {
		fn(c)
	}
}

// Modify calls fn with every command in time order. A command for which fn returns a
// value < 0 is removed. fn must not change a command's time. The accumulated command
// state is reset, so the next Update replays the history.
func (s *Slice[C, P]) Modify(fn func(C) int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.updates = slices.DeleteFunc(s.updates, func(c C) bool {
		return fn(c) < 0
	})
	s.reset()
}
