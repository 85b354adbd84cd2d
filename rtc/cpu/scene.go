package cpu

import (
	"sync"

	"github.com/achilleasa/minimal/rtc"
	"github.com/go-gl/mathgl/mgl32"
)

type triangleMesh struct {
	flags    rtc.GeometryFlags
	vertices []rtc.Vertex
	indices  []rtc.Triangle
}

// A scene created by a software device.
type Scene struct {
	device *Device
	flags  rtc.SceneFlags

	mu       sync.Mutex
	refCount int
	meshes   []*triangleMesh

	// Triangles captured by the last commit; nil until the first commit.
	committed   []triangle
	commitCount int
}

func (s *Scene) NewTriangleMesh(flags rtc.GeometryFlags, numTriangles, numVertices int) (uint32, error) {
	if numTriangles < 0 || numVertices < 0 {
		return rtc.InvalidGeometryID, s.device.raise(rtc.InvalidArgument, "negative triangle (%d) or vertex (%d) count", numTriangles, numVertices)
	}

	s.mu.Lock()
	if err := s.checkWritable(); err != nil {
		s.mu.Unlock()
		return rtc.InvalidGeometryID, err
	}

	geomID := uint32(len(s.meshes))
	s.meshes = append(s.meshes, &triangleMesh{
		flags:    flags,
		vertices: make([]rtc.Vertex, numVertices),
		indices:  make([]rtc.Triangle, numTriangles),
	})
	s.mu.Unlock()

	s.device.tracef("created triangle mesh %d (%d triangles, %d vertices)", geomID, numTriangles, numVertices)
	return geomID, nil
}

func (s *Scene) VertexBuffer(geomID uint32) ([]rtc.Vertex, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mesh, err := s.writableMesh(geomID)
	if err != nil {
		return nil, err
	}
	return mesh.vertices, nil
}

func (s *Scene) IndexBuffer(geomID uint32) ([]rtc.Triangle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mesh, err := s.writableMesh(geomID)
	if err != nil {
		return nil, err
	}
	return mesh.indices, nil
}

func (s *Scene) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.refCount == 0 {
		return s.device.raise(rtc.InvalidOperation, "cannot commit a released scene")
	}

	// Static scenes are frozen after their first commit.
	if s.flags&rtc.SceneDynamic == 0 && s.commitCount > 0 {
		return nil
	}

	triangles := make([]triangle, 0)
	for geomID, mesh := range s.meshes {
		numVertices := int32(len(mesh.vertices))
		for primID, tri := range mesh.indices {
			if tri.V0 < 0 || tri.V0 >= numVertices ||
				tri.V1 < 0 || tri.V1 >= numVertices ||
				tri.V2 < 0 || tri.V2 >= numVertices {
				return s.device.raise(rtc.InvalidArgument, "triangle %d of mesh %d references vertex outside [0, %d)", primID, geomID, numVertices)
			}

			triangles = append(triangles, makeTriangle(
				vec(mesh.vertices[tri.V0]),
				vec(mesh.vertices[tri.V1]),
				vec(mesh.vertices[tri.V2]),
				uint32(geomID),
				uint32(primID),
			))
		}
	}

	s.committed = triangles
	s.commitCount++
	s.device.tracef("committed scene with %d triangle(s)", len(triangles))
	return nil
}

func (s *Scene) Intersect(ray *rtc.Ray) {
	s.mu.Lock()
	triangles := s.committed
	committed := s.commitCount > 0
	released := s.refCount == 0
	s.mu.Unlock()

	switch {
	case released:
		s.device.raise(rtc.InvalidOperation, "cannot intersect a released scene")
		return
	case !committed:
		s.device.raise(rtc.InvalidOperation, "scene not committed")
		return
	}

	org := mgl32.Vec3(ray.Org)
	dir := mgl32.Vec3(ray.Dir)
	for i := range triangles {
		hit, ok := triangles[i].intersect(org, dir, ray.TNear, ray.TFar)
		if !ok {
			continue
		}

		ray.TFar = hit.t
		ray.U = hit.u
		ray.V = hit.v
		ray.Ng = triangles[i].normal()
		ray.GeomID = triangles[i].geomID
		ray.PrimID = triangles[i].primID
	}
}

func (s *Scene) Retain() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.refCount > 0 {
		s.refCount++
	}
}

func (s *Scene) Release() {
	s.mu.Lock()
	if s.refCount == 0 {
		s.mu.Unlock()
		s.device.raise(rtc.InvalidOperation, "scene released more times than acquired")
		return
	}
	s.refCount--
	remaining := s.refCount
	if remaining == 0 {
		s.meshes = nil
		s.committed = nil
	}
	s.mu.Unlock()

	// The last scene reference drops the device reference taken by NewScene.
	if remaining == 0 {
		s.device.tracef("destroyed scene")
		s.device.Release()
	}
}

// Get the number of outstanding references.
func (s *Scene) RefCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refCount
}

// Must be called with the scene lock held.
func (s *Scene) checkWritable() error {
	if s.refCount == 0 {
		return s.device.raise(rtc.InvalidOperation, "scene has been released")
	}
	if s.flags&rtc.SceneDynamic == 0 && s.commitCount > 0 {
		return s.device.raise(rtc.InvalidOperation, "static scene can not be modified after commit")
	}
	return nil
}

// Must be called with the scene lock held.
func (s *Scene) writableMesh(geomID uint32) (*triangleMesh, error) {
	if err := s.checkWritable(); err != nil {
		return nil, err
	}
	if geomID >= uint32(len(s.meshes)) {
		return nil, s.device.raise(rtc.InvalidArgument, "invalid geometry id %d", geomID)
	}
	return s.meshes[geomID], nil
}

func vec(v rtc.Vertex) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}
