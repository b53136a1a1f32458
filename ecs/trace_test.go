package ecs_test

import (
	"strings"
	"testing"

	"github.com/plus3/ecsman/ecs"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// TestNotificationTrace records every hook the registry drives through a full
// lifecycle and compares the sequence against a golden file.
func TestNotificationTrace(t *testing.T) {
	tr := &trace{}
	m := newManager()

	a := newRecordingSystem("a", tr)
	b := newRecordingSystem("b", tr)
	require.NoError(t, m.RegisterSystem(a))
	require.NoError(t, m.RegisterSystem(b))

	e1, err := m.RegisterEntity(&recordingEntity{trace: tr})
	require.NoError(t, err)
	require.NoError(t, m.RegisterComponent(e1.Id(), &Position{}))
	require.NoError(t, m.RegisterComponent(e1.Id(), &Velocity{}))

	e2, err := m.RegisterEntity(&recordingEntity{trace: tr})
	require.NoError(t, err)
	require.NoError(t, m.RegisterComponent(e2.Id(), &Health{}))

	require.NoError(t, m.RegisterComponent(e1.Id(), &Position{}))

	c := newRecordingSystem("c", tr)
	c.onUpdate = func(float32) { m.Destroy() }
	require.NoError(t, m.RegisterSystem(c))

	require.NoError(t, m.UnregisterEntity(e1.Id()))
	require.NoError(t, m.Update(0.25))
	require.False(t, m.IsInitialized())

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "notification_trace", []byte(strings.Join(tr.lines, "\n")+"\n"))

	_, ok := m.Entity(ecs.EntityId(2))
	require.False(t, ok)
}
