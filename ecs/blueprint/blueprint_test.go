package blueprint_test

import (
	"path/filepath"
	"testing"

	"github.com/plus3/ecsman/ecs"
	"github.com/plus3/ecsman/ecs/blueprint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	PositionType ecs.ComponentType = iota + 1
	HealthType
	TagType
)

type Position struct {
	ecs.BaseComponent
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

func (*Position) Type() ecs.ComponentType { return PositionType }

type Health struct {
	ecs.BaseComponent
	Current int `yaml:"current"`
	Max     int `yaml:"max"`
}

func (*Health) Type() ecs.ComponentType { return HealthType }

type Tag struct {
	ecs.BaseComponent
}

func (*Tag) Type() ecs.ComponentType { return TagType }

func newRegistry(t *testing.T) *blueprint.ComponentRegistry {
	t.Helper()
	r := blueprint.NewComponentRegistry()
	require.NoError(t, blueprint.Register[Position](r, "Position"))
	require.NoError(t, blueprint.Register[Health](r, "Health"))
	require.NoError(t, blueprint.Register[Tag](r, "Tag"))
	return r
}

func TestComponentRegistry(t *testing.T) {
	r := newRegistry(t)

	typ, factory, ok := r.Lookup("Health")
	require.True(t, ok)
	assert.Equal(t, HealthType, typ)
	assert.IsType(t, &Health{}, factory())
	assert.NotSame(t, factory(), factory())

	assert.Equal(t, "Position", r.Name(PositionType))
	assert.Equal(t, "Type(99)", r.Name(99))
	assert.Equal(t, []string{"Health", "Position", "Tag"}, r.Names())

	_, err := r.New("Velocity")
	assert.Error(t, err)

	assert.Error(t, r.Register(PositionType, "Other", func() ecs.Component { return &Position{} }),
		"type registered twice")
	assert.Error(t, r.Register(77, "Tag", func() ecs.Component { return &Tag{} }),
		"name registered twice")
}

func TestLoad(t *testing.T) {
	lib, err := blueprint.Load(filepath.Join("testdata", "blueprints.yaml"), newRegistry(t))
	require.NoError(t, err)
	require.Equal(t, 2, lib.Len())
	assert.Equal(t, "player", lib.All()[0].Name())

	m := ecs.NewManager()
	m.Init()
	defer m.Destroy()

	player, ok := lib.Get("player")
	require.True(t, ok)

	first, err := m.RegisterAssemblage(player)
	require.NoError(t, err)
	second, err := m.RegisterAssemblage(player)
	require.NoError(t, err)
	assert.NotEqual(t, first.Id(), second.Id())

	pos, ok := ecs.ComponentAs[*Position](m, first.Id(), PositionType)
	require.True(t, ok)
	assert.Equal(t, float32(1), pos.X)
	assert.Equal(t, float32(2), pos.Y)

	other, ok := ecs.ComponentAs[*Position](m, second.Id(), PositionType)
	require.True(t, ok)
	assert.NotSame(t, pos, other, "each entity gets its own instances")

	health, ok := ecs.ComponentAs[*Health](m, second.Id(), HealthType)
	require.True(t, ok)
	assert.Equal(t, 10, health.Max)
	assert.True(t, m.HasComponent(second.Id(), TagType))
	assert.Equal(t, 6, m.ComponentCount())

	t.Run("later components of a type win", func(t *testing.T) {
		rock, ok := lib.Get("rock")
		require.True(t, ok)
		assert.Len(t, rock.Components(), 2)

		e, err := m.RegisterAssemblage(rock)
		require.NoError(t, err)
		pos, ok := ecs.ComponentAs[*Position](m, e.Id(), PositionType)
		require.True(t, ok)
		assert.Equal(t, float32(5), pos.X)
		comps, _ := m.ComponentsOf(e.Id())
		assert.Len(t, comps, 1)
	})
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed", "blueprints: [\n"},
		{"missing name", "blueprints:\n  - components: []\n"},
		{"duplicate name", "blueprints:\n  - name: a\n  - name: a\n"},
		{"unknown component", "blueprints:\n  - name: a\n    components:\n      - type: Velocity\n"},
		{"bad data", "blueprints:\n  - name: a\n    components:\n      - type: Health\n        data: {current: lots}\n"},
	}

	r := newRegistry(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := blueprint.Parse([]byte(tt.doc), r)
			assert.Error(t, err)
		})
	}

	_, err := blueprint.Load(filepath.Join("testdata", "missing.yaml"), r)
	assert.Error(t, err)
}
