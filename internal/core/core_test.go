package core

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSim struct{}

func (stubSim) Name() string          { return "stub" }
func (stubSim) Size() Size            { return Size{W: 1, H: 1} }
func (stubSim) Reset(int64)           {}
func (stubSim) Step()                 {}
func (stubSim) Cells() []uint8        { return []uint8{0} }
func (stubSim) Palette() []color.RGBA { return []color.RGBA{{}} }

func TestRegistryLookup(t *testing.T) {
	Register("stub-test", func(map[string]string) Sim { return stubSim{} })
	Register("", func(map[string]string) Sim { return stubSim{} })
	Register("nil-factory", nil)

	f, err := Lookup("stub-test")
	require.NoError(t, err)
	assert.Equal(t, "stub", f(nil).Name())

	_, err = Lookup("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stub-test")

	assert.NotContains(t, Names(), "")
	assert.NotContains(t, Names(), "nil-factory")
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "a", Value: "1"}}},
		{Name: "B", Params: []Parameter{{Key: "b", Value: "2"}}},
	}}
	p, ok := snap.Lookup("b")
	require.True(t, ok)
	assert.Equal(t, "2", p.Value)
	_, ok = snap.Lookup("c")
	assert.False(t, ok)
}

func TestIntControlClamp(t *testing.T) {
	c := IntControl{Min: 0, Max: 8}
	assert.Equal(t, 0, c.Clamp(-3))
	assert.Equal(t, 8, c.Clamp(20))
	assert.Equal(t, 4, c.Clamp(4))
}

func TestFixedStepDefaults(t *testing.T) {
	fs := NewFixedStep(0)
	assert.Equal(t, 60, fs.TPS())
	require.True(t, fs.ShouldStep(), "first call should fire immediately")
	fs.SetTPS(10)
	assert.Equal(t, 10, fs.TPS())
}

func TestFixedStepPacesTicks(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	require.True(t, fs.ShouldStep())
	require.False(t, fs.ShouldStep(), "no time has passed")

	clock = clock.Add(50 * time.Millisecond)
	require.False(t, fs.ShouldStep())
	clock = clock.Add(50 * time.Millisecond)
	require.True(t, fs.ShouldStep())

	clock = clock.Add(10 * time.Second)
	require.True(t, fs.ShouldStep())
	require.True(t, fs.ShouldStep())
	require.False(t, fs.ShouldStep(), "backlog is capped at two ticks")
}

func TestFloorDivRoundsTowardNegativeInfinity(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{7, 3, 2},
		{6, 3, 2},
		{0, 3, 0},
		{-1, 3, -1},
		{-3, 3, -1},
		{-4, 3, -2},
		{5, -2, -3},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FloorDiv(tc.a, tc.b), "FloorDiv(%d, %d)", tc.a, tc.b)
	}
}
