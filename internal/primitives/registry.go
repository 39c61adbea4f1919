package primitives

import (
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Registry caches one GPU mesh per solid shape (kind + tessellation + taper) and
// draws solids with a shared lit material. Meshes are created on first draw so GPU
// resources are allocated after the window/OpenGL context exists.
type Registry struct {
	cache    map[string]rl.Mesh
	mtl      rl.Material
	mtlReady bool
	viewPos  [3]float32 // camera position, set each frame for lighting
	lightDir [3]float32 // direction to light (normalized), set each frame
}

// NewRegistry returns a registry with no cached meshes.
func NewRegistry() *Registry {
	return &Registry{
		cache:    make(map[string]rl.Mesh),
		lightDir: [3]float32{0.5, 1, 0.5}, // default: from above-right
	}
}

// SetView sets camera position and direction-to-light for this frame. Call once
// per frame before drawing so the lit material gets correct shading.
func (r *Registry) SetView(viewPos, lightDir rl.Vector3) {
	r.viewPos = [3]float32{viewPos.X, viewPos.Y, viewPos.Z}
	r.lightDir = [3]float32{lightDir.X, lightDir.Y, lightDir.Z}
}

// ensureMaterial creates the shared lit material on first use.
func (r *Registry) ensureMaterial() {
	if r.mtlReady {
		return
	}
	r.mtl = rl.LoadMaterialDefault()
	shader := rl.LoadShaderFromMemory(litVS, litFS)
	if rl.IsShaderValid(shader) {
		r.mtl.Shader = shader
	}
	r.mtlReady = true
}

// meshKey identifies the cached unit mesh for a solid. Dimensions are applied per
// draw via the transform, so only shape-affecting parameters go into the key.
func meshKey(s Solid) string {
	switch s.Kind {
	case KindBox:
		return "box"
	case KindCylinder:
		if s.TopRadius == 0 || s.BottomRadius == 0 {
			return fmt.Sprintf("cone:%d", s.Segments)
		}
		return fmt.Sprintf("cyl:%d:%.3f", s.Segments, s.TopRadius/s.BottomRadius)
	case KindTorus:
		return fmt.Sprintf("torus:%d:%d:%.3f", s.Segments, s.Rings, s.InnerRadius/s.OuterRadius)
	default:
		return fmt.Sprintf("sphere:%d:%d", s.Segments, s.Rings)
	}
}

// ensureMesh returns the unit mesh for the solid, generating and caching it on
// first use. Unit conventions: sphere radius 0.5 (diameter 1), cylinder/cone
// larger radius 0.5 height 1 (base at Y=0), cube 1x1x1, torus ring radius 1.
func (r *Registry) ensureMesh(s Solid) rl.Mesh {
	key := meshKey(s)
	if m, ok := r.cache[key]; ok {
		return m
	}
	var m rl.Mesh
	switch s.Kind {
	case KindBox:
		m = rl.GenMeshCube(1, 1, 1)
	case KindCylinder:
		switch {
		case s.TopRadius == 0 || s.BottomRadius == 0:
			m = rl.GenMeshCone(0.5, 1, int(s.Segments))
		case s.TopRadius == s.BottomRadius:
			m = rl.GenMeshCylinder(0.5, 1, int(s.Segments))
		default:
			m = genMeshFrustum(s.TopRadius/s.BottomRadius, s.Segments)
		}
	case KindTorus:
		// GenMeshTorus: ring radius = size/2, tube radius = radius*size/2, so
		// passing size 2 makes the ring radius exactly 1.
		m = rl.GenMeshTorus(s.InnerRadius/s.OuterRadius, 2, int(s.Segments), int(s.Rings))
	default: // sphere; capsule caps reuse this mesh
		m = rl.GenMeshSphere(0.5, int(s.Rings), int(s.Segments))
	}
	r.cache[key] = m
	return m
}

// genMeshFrustum uploads a tapered cylinder raylib has no generator for. Same
// unit conventions as GenMeshCylinder: base at Y=0, height 1, and the larger of
// the two radii is 0.5 so the per-draw scale by the larger diameter holds.
func genMeshFrustum(ratio float32, segments int32) rl.Mesh {
	bottomR, topR := float32(0.5), 0.5*ratio
	if ratio > 1 {
		bottomR, topR = 0.5/ratio, 0.5
	}
	verts, norms, uvs := frustumGeometry(bottomR, topR, segments)
	mesh := rl.Mesh{
		VertexCount:   int32(len(verts) / 3),
		TriangleCount: int32(len(verts) / 9),
	}
	mesh.Vertices = &verts[0]
	mesh.Normals = &norms[0]
	mesh.Texcoords = &uvs[0]
	// The CPU slices stay referenced through the cached Mesh, so they outlive
	// the upload.
	rl.UploadMesh(&mesh, false)
	return mesh
}

// frustumGeometry builds the triangle list for a tapered cylinder with the
// bottom ring at Y=0 and the top ring at Y=1. Non-indexed, counter-clockwise
// winding, one slanted normal per side vertex so the taper shades smoothly.
func frustumGeometry(bottomR, topR float32, segments int32) (verts, norms, uvs []float32) {
	n := int(segments)
	tri := 4 * n // 2n side triangles plus n per cap
	verts = make([]float32, 0, tri*9)
	norms = make([]float32, 0, tri*9)
	uvs = make([]float32, 0, tri*6)
	push := func(x, y, z, nx, ny, nz, u, v float32) {
		verts = append(verts, x, y, z)
		norms = append(norms, nx, ny, nz)
		uvs = append(uvs, u, v)
	}

	slope := bottomR - topR
	invSlant := 1 / math32.Sqrt(1+slope*slope)
	for i := 0; i < n; i++ {
		a0 := 2 * math32.Pi * float32(i) / float32(n)
		a1 := 2 * math32.Pi * float32(i+1) / float32(n)
		c0, s0 := math32.Cos(a0), math32.Sin(a0)
		c1, s1 := math32.Cos(a1), math32.Sin(a1)
		u0 := float32(i) / float32(n)
		u1 := float32(i+1) / float32(n)
		nx0, ny0, nz0 := c0*invSlant, slope*invSlant, s0*invSlant
		nx1, ny1, nz1 := c1*invSlant, slope*invSlant, s1*invSlant

		// Side quad.
		push(bottomR*c0, 0, bottomR*s0, nx0, ny0, nz0, u0, 0)
		push(topR*c0, 1, topR*s0, nx0, ny0, nz0, u0, 1)
		push(bottomR*c1, 0, bottomR*s1, nx1, ny1, nz1, u1, 0)
		push(topR*c0, 1, topR*s0, nx0, ny0, nz0, u0, 1)
		push(topR*c1, 1, topR*s1, nx1, ny1, nz1, u1, 1)
		push(bottomR*c1, 0, bottomR*s1, nx1, ny1, nz1, u1, 0)

		// End caps.
		push(0, 0, 0, 0, -1, 0, 0.5, 0.5)
		push(bottomR*c0, 0, bottomR*s0, 0, -1, 0, 0.5+0.5*c0, 0.5+0.5*s0)
		push(bottomR*c1, 0, bottomR*s1, 0, -1, 0, 0.5+0.5*c1, 0.5+0.5*s1)
		push(0, 1, 0, 0, 1, 0, 0.5, 0.5)
		push(topR*c1, 1, topR*s1, 0, 1, 0, 0.5+0.5*c1, 0.5+0.5*s1)
		push(topR*c0, 1, topR*s0, 0, 1, 0, 0.5+0.5*c0, 0.5+0.5*s0)
	}
	return verts, norms, uvs
}

// Draw renders one solid under the given world transform and color. Must be called
// between BeginMode3D and EndMode3D; SetView must have been called this frame.
// The world matrix carries the node's rotation/scale/translation; Draw prepends
// the solid's own dimensions so the cached meshes stay unit-sized.
func (r *Registry) Draw(s Solid, world rl.Matrix, color rl.Color) {
	r.ensureMaterial()
	if albedo := r.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = color
	}
	r.setLitUniforms()

	switch s.Kind {
	case KindCapsule:
		r.drawCapsule(s, world)
	case KindCylinder:
		mesh := r.ensureMesh(s)
		d := 2 * maxf(s.TopRadius, s.BottomRadius)
		// Raylib cylinder/cone base sits at Y=0; center it before scaling.
		local := rl.MatrixMultiply(rl.MatrixTranslate(0, -0.5, 0), rl.MatrixScale(d, s.Height, d))
		if s.BottomRadius == 0 && s.TopRadius > 0 {
			// Cone mesh tapers upward; flip for a downward taper.
			local = rl.MatrixMultiply(local, rl.MatrixRotateZ(rl.Pi))
		}
		rl.DrawMesh(mesh, r.mtl, rl.MatrixMultiply(local, world))
	case KindBox:
		mesh := r.ensureMesh(s)
		local := rl.MatrixScale(s.Size.X, s.Size.Y, s.Size.Z)
		rl.DrawMesh(mesh, r.mtl, rl.MatrixMultiply(local, world))
	case KindTorus:
		mesh := r.ensureMesh(s)
		local := rl.MatrixScale(s.OuterRadius, s.OuterRadius, s.OuterRadius)
		rl.DrawMesh(mesh, r.mtl, rl.MatrixMultiply(local, world))
	default:
		mesh := r.ensureMesh(s)
		local := rl.MatrixScale(2*s.Radius, s.Height, 2*s.Radius)
		rl.DrawMesh(mesh, r.mtl, rl.MatrixMultiply(local, world))
	}
}

// drawCapsule composes a capsule from the unit cylinder plus two sphere caps.
// A capsule whose height equals its diameter has no cylindrical midsection and
// degrades to a single sphere draw.
func (r *Registry) drawCapsule(s Solid, world rl.Matrix) {
	mid := s.Height - 2*s.Radius
	sphere := r.ensureMesh(Solid{Kind: KindSphere, Segments: s.Segments, Rings: s.Rings})
	capScale := rl.MatrixScale(2*s.Radius, 2*s.Radius, 2*s.Radius)
	if mid <= 0 {
		rl.DrawMesh(sphere, r.mtl, rl.MatrixMultiply(capScale, world))
		return
	}
	cyl := r.ensureMesh(Solid{Kind: KindCylinder, TopRadius: s.Radius, BottomRadius: s.Radius, Segments: s.Segments})
	body := rl.MatrixMultiply(rl.MatrixTranslate(0, -0.5, 0), rl.MatrixScale(2*s.Radius, mid, 2*s.Radius))
	rl.DrawMesh(cyl, r.mtl, rl.MatrixMultiply(body, world))
	top := rl.MatrixMultiply(capScale, rl.MatrixTranslate(0, mid/2, 0))
	bottom := rl.MatrixMultiply(capScale, rl.MatrixTranslate(0, -mid/2, 0))
	rl.DrawMesh(sphere, r.mtl, rl.MatrixMultiply(top, world))
	rl.DrawMesh(sphere, r.mtl, rl.MatrixMultiply(bottom, world))
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// defaultAmbient is the ambient term (dim so shadowed areas aren't pure black).
var defaultAmbient = [4]float32{0.2, 0.22, 0.26, 1.0}

// defaultLightColor is a soft warm-white for the directional light.
var defaultLightColor = [3]float32{1.0, 0.98, 0.95}

// defaultLightIntensity scales the directional diffuse (0–1).
const defaultLightIntensity = float32(0.75)

// defaultSpecularPower controls highlight tightness (higher = smaller, sharper highlight).
const defaultSpecularPower = float32(48.0)

// defaultSpecularStrength scales specular contribution (0–1).
const defaultSpecularStrength = float32(0.35)

// setLitUniforms pushes viewPos, lightDir, ambient, light color/intensity, and
// specular to the lit shader (cgo-safe: local arrays).
func (r *Registry) setLitUniforms() {
	shader := r.mtl.Shader
	if !rl.IsShaderValid(shader) {
		return
	}
	viewPos := [3]float32{r.viewPos[0], r.viewPos[1], r.viewPos[2]}
	lightDir := [3]float32{r.lightDir[0], r.lightDir[1], r.lightDir[2]}
	amb := [4]float32{defaultAmbient[0], defaultAmbient[1], defaultAmbient[2], defaultAmbient[3]}
	lightColor := [3]float32{defaultLightColor[0], defaultLightColor[1], defaultLightColor[2]}
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightDir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightColor[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultLightIntensity}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularPower"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultSpecularPower}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularStrength"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultSpecularStrength}, rl.ShaderUniformFloat)
	}
}

// Lit shader: simple directional light + ambient + Blinn-Phong specular. Same
// vertex attributes as raylib meshes: vertexPosition, vertexTexCoord, vertexNormal.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float NdotH = max(dot(N, H), 0.0);
  float spec = pow(NdotH, specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, tint.a);
}
`
)
