package tracer

import (
	"fmt"

	"github.com/achilleasa/minimal/rtc"
)

// Vertices and indices of the single triangle traced by the tutorial.
var (
	TriangleVertices = [3]rtc.Vertex{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}

	TriangleIndices = rtc.Triangle{V0: 0, V1: 1, V2: 2}
)

// Create a static scene holding a single triangle mesh with the tutorial
// triangle and commit it. On failure any partially built scene is released.
func BuildScene(dev rtc.Device) (rtc.Scene, error) {
	sc, err := dev.NewScene(rtc.SceneStatic)
	if err != nil {
		return nil, fmt.Errorf("tracer: could not create scene: %w", err)
	}

	if err = populateScene(sc); err != nil {
		sc.Release()
		return nil, err
	}

	return sc, nil
}

func populateScene(sc rtc.Scene) error {
	mesh, err := sc.NewTriangleMesh(rtc.GeometryStatic, 1, len(TriangleVertices))
	if err != nil {
		return fmt.Errorf("tracer: could not create triangle mesh: %w", err)
	}

	vertices, err := sc.VertexBuffer(mesh)
	if err != nil {
		return fmt.Errorf("tracer: could not map vertex buffer: %w", err)
	}
	if len(vertices) != len(TriangleVertices) {
		return fmt.Errorf("tracer: expected vertex buffer with %d entries; got %d", len(TriangleVertices), len(vertices))
	}
	copy(vertices, TriangleVertices[:])

	triangles, err := sc.IndexBuffer(mesh)
	if err != nil {
		return fmt.Errorf("tracer: could not map index buffer: %w", err)
	}
	if len(triangles) != 1 {
		return fmt.Errorf("tracer: expected index buffer with 1 entry; got %d", len(triangles))
	}
	triangles[0] = TriangleIndices

	if err = sc.Commit(); err != nil {
		return fmt.Errorf("tracer: could not commit scene: %w", err)
	}

	return nil
}
