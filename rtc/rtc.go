// Package rtc defines the ray intersection service consumed by the tracer.
//
// The API follows the device/scene/geometry model of Embree-class libraries:
// a Device builds Scenes, a Scene owns triangle meshes whose vertex and index
// buffers are filled in place and then committed. Once committed a scene can
// be queried with Intersect. Devices and scenes are reference counted.
//
// Backends register themselves with Register, typically from an init
// function, and are instantiated by name with NewDevice.
package rtc

type SceneFlags uint32

// Scene flags.
const (
	// Static scenes can not be modified after their first commit.
	SceneStatic SceneFlags = 0

	// Dynamic scenes may be re-mapped and re-committed.
	SceneDynamic SceneFlags = 1 << 0
)

type GeometryFlags uint32

// Geometry flags. They are hints for the backend.
const (
	GeometryStatic GeometryFlags = iota
	GeometryDeformable
	GeometryDynamic
)

// A device represents an instance of the ray intersection service.
type Device interface {
	// Get the device id.
	Id() string

	// Register a callback to be invoked for every error raised by this
	// device or any scene created by it. Passing nil removes the callback.
	SetErrorFunc(ErrorFunc)

	// Return the first error raised since the last call to Error and
	// reset the stored error code to NoError.
	Error() ErrorCode

	// Create a new empty scene. The scene holds a reference to the device.
	NewScene(flags SceneFlags) (Scene, error)

	// Acquire an additional reference.
	Retain()

	// Release a reference. The device is destroyed when the last reference
	// is released.
	Release()
}

// A scene is a collection of geometry that rays can be intersected with.
type Scene interface {
	// Create a triangle mesh with room for the given number of triangles
	// and vertices and return its geometry id.
	NewTriangleMesh(flags GeometryFlags, numTriangles, numVertices int) (uint32, error)

	// Get the vertex buffer of a mesh for writing. The returned slice
	// aliases the mesh storage.
	VertexBuffer(geomID uint32) ([]Vertex, error)

	// Get the index buffer of a mesh for writing. The returned slice
	// aliases the mesh storage.
	IndexBuffer(geomID uint32) ([]Triangle, error)

	// Finalize scene contents so that the scene can be queried.
	Commit() error

	// Find the closest hit along the ray. Hit information is written back
	// into the ray. The ray is left untouched if nothing is hit.
	Intersect(ray *Ray)

	// Acquire an additional reference.
	Retain()

	// Release a reference.
	Release()
}

// Vertex layout of triangle mesh vertex buffers.
type Vertex struct {
	X, Y, Z float32

	// Padding for 16-byte alignment; ignored.
	A float32
}

// Index layout of triangle mesh index buffers.
type Triangle struct {
	V0, V1, V2 int32
}
