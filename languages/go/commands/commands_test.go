package commands

import (
	"math"
	"testing"

	"github.com/bearlytools/simdata"
	"github.com/gostdlib/base/context"
	"github.com/stretchr/testify/require"
)

func newPlatformSlice(t *testing.T) *Slice[*simdata.PlatformCommand, *simdata.PlatformPrefs] {
	t.Helper()
	s, err := New[*simdata.PlatformCommand, *simdata.PlatformPrefs](context.Background())
	require.NoError(t, err)
	return s
}

func times[C Command[C, P], P Prefs[P]](s *Slice[C, P]) []float64 {
	var out []float64
	s.Visit(func(c C) {
		out = append(out, c.Time())
	})
	return out
}

func TestUpdateSparseCommands(t *testing.T) {
	ctx := context.Background()
	s := newPlatformSlice(t)

	prefs := &simdata.PlatformPrefs{}
	prefs.SetIcon("icon1")
	prefs.MutableCommonPrefs().SetDraw(true).MutableLabelPrefs().SetDraw(true)

	cmd := &simdata.PlatformCommand{}
	cmd.SetTime(5)
	cmd.MutableUpdatePrefs().SetIcon("icon5")
	cmd.MutableUpdatePrefs().MutableCommonPrefs().MutableLabelPrefs().SetDraw(true)
	s.Insert(cmd)

	cmd = &simdata.PlatformCommand{}
	cmd.SetTime(15)
	cmd.MutableUpdatePrefs().SetIcon("icon15")
	s.Insert(cmd)

	// draw is only set at time 10, so it stays applied after 15.
	cmd = &simdata.PlatformCommand{}
	cmd.SetTime(10)
	cmd.MutableUpdatePrefs().SetIcon("icon10")
	cmd.MutableUpdatePrefs().MutableCommonPrefs().SetDraw(false).MutableLabelPrefs().SetDraw(false)
	s.Insert(cmd)

	require.Equal(t, []float64{5, 10, 15}, times(s))
	require.Equal(t, "icon1", prefs.Icon())

	tests := []struct {
		name      string
		time      float64
		icon      string
		draw      bool
		labelDraw bool
	}{
		{name: "first command", time: 5, icon: "icon5", draw: true, labelDraw: true},
		{name: "past the end", time: 100, icon: "icon15", draw: false, labelDraw: false},
		// No command turns draw back on, so it keeps the value the prefs already hold.
		{name: "backward", time: 7.5, icon: "icon5", draw: false, labelDraw: true},
		{name: "forward to a command", time: 10, icon: "icon10", draw: false, labelDraw: false},
	}

	for _, test := range tests {
		require.NoError(t, s.Update(ctx, prefs, test.time), test.name)
		require.Equal(t, test.icon, prefs.Icon(), "TestUpdateSparseCommands(%s): icon", test.name)
		require.Equal(t, test.draw, prefs.CommonPrefs().Draw(), "TestUpdateSparseCommands(%s): draw", test.name)
		require.Equal(t, test.labelDraw, prefs.CommonPrefs().LabelPrefs().Draw(), "TestUpdateSparseCommands(%s): labelDraw", test.name)
		require.True(t, s.HasChanged(), "TestUpdateSparseCommands(%s): HasChanged", test.name)
	}

	cur, ok := s.Current()
	require.True(t, ok)
	require.Equal(t, 10.0, cur.Time())
}

func TestUpdateTimeline(t *testing.T) {
	ctx := context.Background()
	s, err := New[*simdata.GateCommand, *simdata.GatePrefs](ctx)
	require.NoError(t, err)

	prefs := &simdata.GatePrefs{}
	addColor := func(tm float64, color uint32) {
		cmd := &simdata.GateCommand{}
		cmd.SetTime(tm).MutableUpdatePrefs().MutableCommonPrefs().SetColor(color)
		s.Insert(cmd)
	}
	check := func(step string, tm float64, want uint32) {
		t.Helper()
		if tm >= 0 {
			require.NoError(t, s.Update(ctx, prefs, tm), step)
		}
		require.Equal(t, want, prefs.CommonPrefs().Color(), "TestUpdateTimeline(%s)", step)
	}

	check("default before any command", 0, 0xFFFF00FF)

	addColor(1, 0x1)
	check("first command", 1, 0x1)
	// Going back before the first command keeps the last applied value.
	check("before first command", 0, 0x1)

	addColor(5, 0x5)
	check("second command", 5, 0x5)

	addColor(4, 0x4)
	check("insert without update", -1, 0x5)
	check("insert in the past", 6, 0x5)
	check("back in time", 4, 0x4)
	check("forward past a command", 6, 0x5)

	addColor(6, 0x6)
	check("insert at current time without update", -1, 0x5)
	check("insert at current time", 6, 0x6)

	cmd := &simdata.GateCommand{}
	cmd.SetTime(7).MutableUpdatePrefs().MutableCommonPrefs().SetOverrideColor(0xF007)
	s.Insert(cmd)
	require.NoError(t, s.Update(ctx, prefs, 7))
	addColor(7, 0x7)
	check("merged without update", -1, 0x6)
	check("merged command", 7, 0x7)
	require.Equal(t, uint32(0xF007), prefs.CommonPrefs().OverrideColor())
	require.Equal(t, 5, s.NumItems())
}

func TestUpdateNoChange(t *testing.T) {
	ctx := context.Background()
	s := newPlatformSlice(t)
	prefs := &simdata.PlatformPrefs{}

	cmd := &simdata.PlatformCommand{}
	cmd.SetTime(1).MutableUpdatePrefs().SetIcon("a")
	s.Insert(cmd)

	require.NoError(t, s.Update(ctx, prefs, 2))
	require.True(t, s.HasChanged())
	s.ClearChanged()
	require.False(t, s.HasChanged())

	require.NoError(t, s.Update(ctx, prefs, 3))
	require.False(t, s.HasChanged(), "no command between 2 and 3")
	require.Equal(t, "a", prefs.Icon())
}

func TestVectorsAreReplaced(t *testing.T) {
	ctx := context.Background()
	s, err := New[*simdata.BeamCommand, *simdata.BeamPrefs](ctx)
	require.NoError(t, err)

	add := func(tm float64, ids ...uint64) {
		cmd := &simdata.BeamCommand{}
		cmd.SetTime(tm).MutableUpdatePrefs().MutableCommonPrefs().AddAcceptProjectorIds(ids...)
		s.Insert(cmd)
	}

	add(1, 1, 2)
	add(1, 3)
	require.Equal(t, 1, s.NumItems())
	cur := s.updates[0]
	require.Equal(t, []uint64{3}, cur.UpdatePrefs().CommonPrefs().AcceptProjectorIds())

	prefs := &simdata.BeamPrefs{}
	prefs.MutableCommonPrefs().AddAcceptProjectorIds(9)
	require.NoError(t, s.Update(ctx, prefs, 1))
	require.Equal(t, []uint64{3}, prefs.CommonPrefs().AcceptProjectorIds())

	add(2, 4, 5)
	require.NoError(t, s.Update(ctx, prefs, 2))
	require.Equal(t, []uint64{4, 5}, prefs.CommonPrefs().AcceptProjectorIds())
}

func TestClearCommand(t *testing.T) {
	ctx := context.Background()
	s := newPlatformSlice(t)

	prefs := &simdata.PlatformPrefs{}
	prefs.SetIcon("base")
	prefs.SetDynamicScale(true)

	cmd := &simdata.PlatformCommand{}
	cmd.SetTime(1)
	cmd.MutableUpdatePrefs().SetIcon("a").MutableCommonPrefs().SetDraw(false)
	s.Insert(cmd)

	clr := &simdata.PlatformCommand{}
	clr.SetTime(2).SetIsClearCommand(true).MutableUpdatePrefs().SetIcon("ignored")
	s.Insert(clr)

	require.NoError(t, s.Update(ctx, prefs, 1))
	require.Equal(t, "a", prefs.Icon())

	require.NoError(t, s.Update(ctx, prefs, 2))
	require.False(t, prefs.HasIcon(), "clear command must remove icon from prefs")
	require.False(t, prefs.CommonPrefs().Draw(), "fields the clear does not name are kept")
	require.True(t, prefs.DynamicScale())
	require.False(t, s.cache.HasIcon(), "clear command must remove icon from the command state")
}

func TestLimits(t *testing.T) {
	fill := func() *Slice[*simdata.PlatformCommand, *simdata.PlatformPrefs] {
		s := newPlatformSlice(t)
		for _, tm := range []float64{3, 1, 5, 2, 4} {
			cmd := &simdata.PlatformCommand{}
			cmd.SetTime(tm).MutableUpdatePrefs().SetIcon("x")
			s.Insert(cmd)
		}
		return s
	}

	tests := []struct {
		name string
		fn   func(s *Slice[*simdata.PlatformCommand, *simdata.PlatformPrefs])
		want []float64
	}{
		{name: "sorted", fn: func(s *Slice[*simdata.PlatformCommand, *simdata.PlatformPrefs]) {}, want: []float64{1, 2, 3, 4, 5}},
		{name: "points", fn: func(s *Slice[*simdata.PlatformCommand, *simdata.PlatformPrefs]) { s.LimitByPoints(3) }, want: []float64{3, 4, 5}},
		{name: "points zero is no limit", fn: func(s *Slice[*simdata.PlatformCommand, *simdata.PlatformPrefs]) { s.LimitByPoints(0) }, want: []float64{1, 2, 3, 4, 5}},
		{name: "time", fn: func(s *Slice[*simdata.PlatformCommand, *simdata.PlatformPrefs]) { s.LimitByTime(1.5) }, want: []float64{4, 5}},
		{name: "time keeps the last command", fn: func(s *Slice[*simdata.PlatformCommand, *simdata.PlatformPrefs]) { s.LimitByTime(0) }, want: []float64{5}},
		{name: "negative time is no limit", fn: func(s *Slice[*simdata.PlatformCommand, *simdata.PlatformPrefs]) { s.LimitByTime(-1) }, want: []float64{1, 2, 3, 4, 5}},
		{name: "prefs", fn: func(s *Slice[*simdata.PlatformCommand, *simdata.PlatformPrefs]) { s.LimitByPrefs(-1, 2) }, want: []float64{4, 5}},
		{name: "flush range", fn: func(s *Slice[*simdata.PlatformCommand, *simdata.PlatformPrefs]) { s.FlushRange(2, 4) }, want: []float64{1, 4, 5}},
		{name: "flush empty range", fn: func(s *Slice[*simdata.PlatformCommand, *simdata.PlatformPrefs]) { s.FlushRange(2.1, 2.9) }, want: []float64{1, 2, 3, 4, 5}},
		{name: "flush", fn: func(s *Slice[*simdata.PlatformCommand, *simdata.PlatformPrefs]) { s.Flush() }, want: nil},
		{
			name: "modify removes",
			fn: func(s *Slice[*simdata.PlatformCommand, *simdata.PlatformPrefs]) {
				s.Modify(func(c *simdata.PlatformCommand) int {
					if int(c.Time())%2 == 0 {
						return -1
					}
					c.MutableUpdatePrefs().SetIcon("modified")
					return 0
				})
			},
			want: []float64{1, 3, 5},
		},
	}

	for _, test := range tests {
		s := fill()
		test.fn(s)
		require.Equal(t, test.want, times(s), "TestLimits(%s)", test.name)
		require.Equal(t, len(test.want), s.NumItems(), "TestLimits(%s)", test.name)
	}
}

func TestFlushKeepsStatic(t *testing.T) {
	tests := []struct {
		name  string
		times []float64
		all   bool
		want  []float64
	}{
		{name: "lone static command is kept", times: []float64{StaticTime}, want: []float64{StaticTime}},
		{name: "static command with others", times: []float64{StaticTime, 1, 2}, want: nil},
		{name: "lone timed command", times: []float64{1}, want: nil},
		{name: "flush all removes static", times: []float64{StaticTime}, all: true, want: nil},
		{name: "empty", want: nil},
	}

	for _, test := range tests {
		s := newPlatformSlice(t)
		for _, tm := range test.times {
			cmd := &simdata.PlatformCommand{}
			cmd.SetTime(tm).MutableUpdatePrefs().SetIcon("static")
			s.Insert(cmd)
		}
		if test.all {
			s.FlushAll()
		} else {
			s.Flush()
		}
		require.Equal(t, test.want, times(s), "TestFlushKeepsStatic(%s)", test.name)
	}
}

func TestFirstLastTime(t *testing.T) {
	s := newPlatformSlice(t)
	require.Equal(t, math.MaxFloat64, s.FirstTime())
	require.Equal(t, -math.MaxFloat64, s.LastTime())
	_, ok := s.Current()
	require.False(t, ok)

	for _, tm := range []float64{2, 7} {
		cmd := &simdata.PlatformCommand{}
		cmd.SetTime(tm)
		s.Insert(cmd)
	}
	require.Equal(t, 2.0, s.FirstTime())
	require.Equal(t, 7.0, s.LastTime())
}

func TestModifyResets(t *testing.T) {
	ctx := context.Background()
	s := newPlatformSlice(t)
	prefs := &simdata.PlatformPrefs{}

	cmd := &simdata.PlatformCommand{}
	cmd.SetTime(1).MutableUpdatePrefs().SetIcon("a")
	s.Insert(cmd)
	require.NoError(t, s.Update(ctx, prefs, 1))

	s.Modify(func(c *simdata.PlatformCommand) int {
		c.MutableUpdatePrefs().SetIcon("b")
		return 0
	})
	require.True(t, s.HasChanged())
	require.NoError(t, s.Update(ctx, prefs, 1))
	require.Equal(t, "b", prefs.Icon())
}
