package registry

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

type fakeGame struct{ id string }

func (g fakeGame) ID() string                           { return g.id }
func (g fakeGame) Title() string                        { return "Fake " + g.id }
func (g fakeGame) Reset(core.RuntimeConfig)             {}
func (g fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g fakeGame) Render(*core.Screen)                  {}
func (g fakeGame) State() core.GameState                { return core.GameState{} }

func factoryFor(id string) Factory {
	return func() Game { return fakeGame{id: id} }
}

func TestRegisterKeepsOrder(t *testing.T) {
	Register("test_zeta", factoryFor("test_zeta"))
	Register("test_alpha", factoryFor("test_alpha"))

	var ids []string
	for _, info := range List() {
		if info.ID == "test_zeta" || info.ID == "test_alpha" {
			ids = append(ids, info.ID)
		}
	}
	assert.Equal(t, []string{"test_zeta", "test_alpha"}, ids)

	info, ok := Lookup("test_alpha")
	require.True(t, ok)
	assert.Equal(t, "Fake test_alpha", info.Title)
	assert.True(t, Exists("test_zeta"))
}

func TestRegisterPanics(t *testing.T) {
	Register("test_dup", factoryFor("test_dup"))
	assert.Panics(t, func() { Register("test_dup", factoryFor("test_dup")) })
	assert.Panics(t, func() { Register("", factoryFor("x")) })
	assert.Panics(t, func() { Register("test_nil", nil) })
	assert.False(t, Exists("test_nil"))
}

func TestCreate(t *testing.T) {
	Register("test_create", factoryFor("test_create"))

	g, err := Create("test_create")
	require.NoError(t, err)
	assert.Equal(t, "test_create", g.ID())

	_, err = Create("nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownGame)
	assert.Equal(t, ErrUnknownGame, errors.Cause(err))

	_, ok := Lookup("nope")
	assert.False(t, ok)
}
