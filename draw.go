package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/polarities/common"
	"github.com/milk9111/polarities/ecs"
	"github.com/milk9111/polarities/ecs/component"
	"github.com/milk9111/polarities/movement"
	"github.com/milk9111/polarities/prefabs"
	"golang.org/x/image/colornames"
)

const debugCircleSegments = 24

var categoryColors = map[movement.Category]color.RGBA{
	movement.CategoryGround:         colornames.Slategray,
	movement.CategoryIce:            colornames.Lightcyan,
	movement.CategoryOneWayUp:       colornames.Steelblue,
	movement.CategoryOneWayDown:     colornames.Indianred,
	movement.CategoryLadder:         colornames.Burlywood,
	movement.CategoryHazard:         colornames.Orange,
	movement.CategoryCheckpointBlue: colornames.Dodgerblue,
	movement.CategoryCheckpointRed:  colornames.Crimson,
}

var polarityColors = map[movement.Polarity]color.RGBA{
	movement.Blue: colornames.Royalblue,
	movement.Red:  colornames.Firebrick,
}

// renderer maps the y-up world onto the screen, scaled to fit the level.
type renderer struct {
	screen *ebiten.Image
	world  *ecs.World
	scale  float64
	offX   float64
	offY   float64
	height float64
}

func newRenderer(screen *ebiten.Image, w *ecs.World) *renderer {
	width, height := 1.0, 1.0
	if _, info, ok := ecs.GetFirst(w, component.LevelInfoComponent.Kind()); ok && info.Width > 0 && info.Height > 0 {
		width, height = info.Width, info.Height
	}
	sw := float64(screen.Bounds().Dx())
	sh := float64(screen.Bounds().Dy())
	scale := math.Min(sw/(width*common.TileSize), sh/(height*common.TileSize)) * common.TileSize
	return &renderer{
		screen: screen,
		world:  w,
		scale:  scale,
		offX:   (sw - width*scale) / 2,
		offY:   (sh - height*scale) / 2,
		height: height,
	}
}

func (r *renderer) toScreen(v cp.Vector) (float32, float32) {
	return float32(r.offX + v.X*r.scale), float32(r.offY + (r.height-v.Y)*r.scale)
}

func (r *renderer) rect(bb cp.BB) (x, y, w, h float32) {
	x, y = r.toScreen(cp.Vector{X: bb.L, Y: bb.T})
	return x, y, float32((bb.R - bb.L) * r.scale), float32((bb.T - bb.B) * r.scale)
}

func (r *renderer) drawLevel() {
	ecs.ForEach(r.world, component.StaticColliderComponent.Kind(), func(_ ecs.Entity, sc *component.StaticCollider) {
		clr, ok := categoryColors[sc.Collider.Category]
		if !ok {
			return
		}
		x, y, w, h := r.rect(sc.Collider.Bounds)
		switch sc.Collider.Category {
		case movement.CategoryCheckpointBlue, movement.CategoryCheckpointRed:
			vector.StrokeRect(r.screen, x, y, w, h, 2, clr, false)
		default:
			vector.DrawFilledRect(r.screen, x, y, w, h, clr, false)
		}
	})
	ecs.ForEach(r.world, component.MovingPlatformComponent.Kind(), func(_ ecs.Entity, mp *component.MovingPlatform) {
		bb := cp.NewBBForExtents(mp.Body.Position(), mp.Size.X/2, mp.Size.Y/2)
		x, y, w, h := r.rect(bb)
		vector.DrawFilledRect(r.screen, x, y, w, h, colornames.Darkgray, false)
	})
}

func (r *renderer) drawCharacters(set *prefabs.Set) {
	ecs.ForEach2(r.world, component.CharacterComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(_ ecs.Entity, c *component.Character, b *component.PhysicsBody) {
		var clr color.Color = polarityColors[c.Polarity]
		if set != nil {
			if yc := set.Character(c.Polarity).Color; yc != nil && yc.Color != nil {
				clr = yc.Color
			}
		}
		x, y, w, h := r.rect(b.Body.Bounds())
		vector.DrawFilledRect(r.screen, x, y, w, h, clr, false)

		// Facing marker on the local-up half of the body.
		st := c.Controller.State()
		side := 1.0
		if !st.FacingRight {
			side = -1
		}
		pos := b.Body.Position()
		tip := pos.Add(c.Polarity.ToWorld(cp.Vector{X: side * b.Size.X / 2, Y: b.Size.Y / 4}))
		x0, y0 := r.toScreen(pos.Add(c.Polarity.ToWorld(cp.Vector{Y: b.Size.Y / 4})))
		x1, y1 := r.toScreen(tip)
		vector.StrokeLine(r.screen, x0, y0, x1, y1, 2, colornames.White, true)
	})
}

func (r *renderer) drawPhysics() {
	pw := r.world.PhysicsWorld()
	if pw == nil {
		return
	}
	cp.DrawSpace(pw.Space(), &physicsDebugDrawer{r: r})
}

type physicsDebugDrawer struct {
	r *renderer
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawCircle(pos, radius, outline)
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.drawLine(pos, end, outline)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
	if radius > 0 {
		d.drawCircle(a, radius, outline)
		d.drawCircle(b, radius, outline)
	}
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], outline)
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	x, y := d.r.toScreen(pos)
	vector.DrawFilledRect(d.r.screen, x-1, y-1, 3, 3, toNRGBA(fill), false)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES | cp.DRAW_COLLISION_POINTS
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape.Sensor() {
		return cp.FColor{R: 1, G: 0.8, B: 0.1, A: 0.6}
	}
	return cp.FColor{R: 0.1, G: 0.6, B: 0.1, A: 0.5}
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, clr cp.FColor) {
	x1, y1 := d.r.toScreen(a)
	x2, y2 := d.r.toScreen(b)
	vector.StrokeLine(d.r.screen, x1, y1, x2, y2, 1, toNRGBA(clr), true)
}

func (d *physicsDebugDrawer) drawPolygon(verts []cp.Vector, clr cp.FColor) {
	for i := range verts {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], clr)
	}
}

func (d *physicsDebugDrawer) drawCircle(center cp.Vector, radius float64, clr cp.FColor) {
	if radius <= 0 {
		return
	}
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points, clr)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(common.Clamp(float64(c.R), 0, 1) * 255),
		G: uint8(common.Clamp(float64(c.G), 0, 1) * 255),
		B: uint8(common.Clamp(float64(c.B), 0, 1) * 255),
		A: uint8(common.Clamp(float64(c.A), 0, 1) * 255),
	}
}
