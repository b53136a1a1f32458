// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/ecsman/ecs"
	"github.com/plus3/ecsman/ecs/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// Use this to integrate Dear ImGui rendering into Ebiten game loops.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// Game implements ebiten.Game around a Manager. Each Ebiten tick opens an
// ImGui frame, updates the Manager (whose deferred commands issue the ImGui
// draw calls) and closes the frame again.
type Game struct {
	Backend ImguiBackend
	Manager *ecs.Manager
	// DrawWorld, if set, draws game content beneath the ImGui overlay.
	DrawWorld func(screen *ebiten.Image)

	timer *debugui.FrameTimer
}

func NewGame(backend ImguiBackend, m *ecs.Manager) *Game {
	return &Game{
		Backend: backend,
		Manager: m,
		timer:   debugui.NewFrameTimer(),
	}
}

func (g *Game) Update() error {
	g.Backend.BeginFrame()
	defer g.Backend.EndFrame()

	if !g.Manager.IsInitialized() {
		return ebiten.Termination
	}
	return g.Manager.Update(g.timer.GetDeltaTime())
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.DrawWorld != nil {
		g.DrawWorld(screen)
	}
	g.Backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
