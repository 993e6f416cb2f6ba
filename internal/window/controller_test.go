//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensigniasec/pythagoras/internal/config"
	"github.com/ensigniasec/pythagoras/internal/triangle"
)

func TestController_FrameCachedUntilAction(t *testing.T) {
	c := New(config.Default())

	img, err := c.Frame()
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())
	assert.Equal(t, 1, c.Generation())

	again, err := c.Frame()
	require.NoError(t, err)
	assert.Same(t, img, again)
	assert.Equal(t, 1, c.Generation())

	require.True(t, c.Apply(ActionPreset2))
	_, err = c.Frame()
	require.NoError(t, err)
	assert.Equal(t, 2, c.Generation())
}

func TestController_Presets(t *testing.T) {
	c := New(config.Default())
	require.True(t, c.Apply(ActionPreset3))
	assert.Equal(t, triangle.State{A: 6, B: 8, C: 10}, c.Report().State)
	assert.True(t, c.Report().Holds())
}

func TestController_SelectionAndAdjust(t *testing.T) {
	c := New(config.Default())

	c.Apply(ActionPrevSide)
	assert.Equal(t, triangle.SideC, c.Selected())
	c.Apply(ActionNextSide)
	c.Apply(ActionNextSide)
	assert.Equal(t, triangle.SideB, c.Selected())

	require.True(t, c.Apply(ActionIncreaseBig))
	assert.InDelta(t, 5.0, c.Report().State.B, 1e-9)
	require.True(t, c.Apply(ActionDecrease))
	assert.InDelta(t, 4.9, c.Report().State.B, 1e-9)
	assert.False(t, c.Report().Holds())

	require.True(t, c.Apply(ActionSolve))
	assert.True(t, c.Report().Holds())
}

func TestController_NoneIsNoop(t *testing.T) {
	c := New(config.Default())
	_, err := c.Frame()
	require.NoError(t, err)

	assert.False(t, c.Apply(ActionNone))
	assert.False(t, c.Apply(Action(99)))
	_, err = c.Frame()
	require.NoError(t, err)
	assert.Equal(t, 1, c.Generation())
}

func TestController_Title(t *testing.T) {
	c := New(config.Default())
	assert.Equal(t, "a=3.0 b=4.0 c=5.0 [a]  ✓ The Pythagorean theorem holds! (difference: 0.000)", c.Title())

	w, h := c.Size()
	assert.Equal(t, 400, w)
	assert.Equal(t, 300, h)
}

func TestController_SelectionKeepsSnapshot(t *testing.T) {
	c := New(config.Default())
	img, err := c.Frame()
	require.NoError(t, err)

	require.True(t, c.Apply(ActionNextSide))
	require.True(t, c.Apply(ActionPrevSide))
	again, err := c.Frame()
	require.NoError(t, err)
	assert.Same(t, img, again)
	assert.Equal(t, 1, c.Generation())
	assert.Contains(t, c.Title(), "[a]")
}

func TestController_SolveSelected(t *testing.T) {
	c := New(config.Default())
	require.True(t, c.Apply(ActionIncreaseBig))
	assert.False(t, c.Report().Holds())

	require.True(t, c.Apply(ActionSolveSelected))
	assert.InDelta(t, 3.0, c.Report().State.A, 1e-9)
	assert.True(t, c.Report().Holds())

	// b cannot be solved once c = 2 is shorter than a = 3.
	require.True(t, c.Apply(ActionPreset1))
	c.Apply(ActionPrevSide)
	for range 3 {
		require.True(t, c.Apply(ActionDecreaseBig))
	}
	c.Apply(ActionNextSide)
	c.Apply(ActionNextSide)
	assert.Equal(t, triangle.SideB, c.Selected())
	assert.False(t, c.Apply(ActionSolveSelected))
	assert.InDelta(t, 4.0, c.Report().State.B, 1e-9)
}
