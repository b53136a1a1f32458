package main

//go:generate go run ./gen -components 8 -systems 4 -watches 2 -out generated.go

import (
	"math/rand"

	"github.com/plus3/ecsman/ecs"
	"github.com/rotisserie/eris"
)

// RegisterAllGeneratedSystems registers n systems, cycling through the
// generated system kinds.
func RegisterAllGeneratedSystems(m *ecs.Manager, n int) error {
	for i := 0; i < n; i++ {
		if err := m.RegisterSystem(newStressSystem(i % systemCount)); err != nil {
			return eris.Wrapf(err, "register system %d", i)
		}
	}
	return nil
}

// SpawnRandomEntity registers an entity carrying k components of distinct,
// randomly chosen generated types.
func SpawnRandomEntity(m *ecs.Manager, rng *rand.Rand, k int) (ecs.EntityId, error) {
	k = min(k, componentCount)
	components := make([]ecs.Component, 0, k)
	for _, kind := range rng.Perm(componentCount)[:k] {
		components = append(components, newStressComponent(kind, rng))
	}
	e, err := ecs.AssembleEntity(m, &ecs.BaseEntity{}, components)
	if err != nil {
		return 0, err
	}
	return e.Id(), nil
}

// churner replaces a fraction of the live entities on every tick.
type churner struct {
	rng       *rand.Rand
	rate      float64
	perEntity int
	carry     float64
	spawned   int64
	despawned int64
}

// Tick removes and respawns the number of entities owed for this tick. The
// fractional remainder carries over so small rates still churn eventually.
func (c *churner) Tick(m *ecs.Manager) error {
	c.carry += c.rate * float64(m.EntityCount())
	n := int(c.carry)
	c.carry -= float64(n)
	if n == 0 {
		return nil
	}

	ids := m.EntityIds()
	for i := 0; i < n && len(ids) > 0; i++ {
		j := c.rng.Intn(len(ids))
		if err := m.UnregisterEntity(ids[j]); err != nil {
			return err
		}
		ids[j] = ids[len(ids)-1]
		ids = ids[:len(ids)-1]
		c.despawned++

		if _, err := SpawnRandomEntity(m, c.rng, c.perEntity); err != nil {
			return err
		}
		c.spawned++
	}
	return nil
}
