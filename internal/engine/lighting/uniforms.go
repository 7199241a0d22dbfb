package lighting

// MaxPerKind is the array size of each light kind in the shaders.
const MaxPerKind = 8

// MaxShadowCasters is how many lights get a shadow map per frame.
const MaxShadowCasters = 4

// Uniforms holds the lights of a scene flattened for GPU upload.
// Slices are always sized MaxPerKind; Count fields say how many are live.
type Uniforms struct {
	Ambient [3]float32 // Sum of all ambient lights

	HemisphereCount  int
	HemisphereSky    []float32 // [r0, g0, b0, r1, ...] premultiplied by intensity
	HemisphereGround []float32
	HemisphereDir    []float32

	PointCount     int
	PointPositions []float32 // [x0, y0, z0, x1, ...]
	PointColors    []float32 // premultiplied by intensity
	PointRanges    []float32
	PointDecays    []float32

	DirectionalCount  int
	DirectionalDirs   []float32 // toward the light
	DirectionalColors []float32 // premultiplied by intensity

	// Casters are the shadow-casting lights in scene order. PointShadow and
	// DirectionalShadow hold each light's index into Casters, or -1.
	Casters           []*Light
	PointShadow       []int32
	DirectionalShadow []int32

	// Dropped counts lights that did not fit in the arrays.
	Dropped int
}

// NewUniforms creates an empty uniform buffer.
func NewUniforms() *Uniforms {
	return &Uniforms{
		HemisphereSky:     make([]float32, MaxPerKind*3),
		HemisphereGround:  make([]float32, MaxPerKind*3),
		HemisphereDir:     make([]float32, MaxPerKind*3),
		PointPositions:    make([]float32, MaxPerKind*3),
		PointColors:       make([]float32, MaxPerKind*3),
		PointRanges:       make([]float32, MaxPerKind),
		PointDecays:       make([]float32, MaxPerKind),
		DirectionalDirs:   make([]float32, MaxPerKind*3),
		DirectionalColors: make([]float32, MaxPerKind*3),
		Casters:           make([]*Light, 0, MaxShadowCasters),
		PointShadow:       make([]int32, MaxPerKind),
		DirectionalShadow: make([]int32, MaxPerKind),
	}
}

// Clear resets all counts and the ambient term.
func (u *Uniforms) Clear() {
	u.Ambient = [3]float32{}
	u.HemisphereCount = 0
	u.PointCount = 0
	u.DirectionalCount = 0
	u.Dropped = 0
	u.Casters = u.Casters[:0]
	for i := range u.PointShadow {
		u.PointShadow[i] = -1
		u.DirectionalShadow[i] = -1
	}
}

// Collect replaces the buffer contents with the given lights.
func (u *Uniforms) Collect(lights []*Light) {
	u.Clear()
	for _, l := range lights {
		if l == nil {
			continue
		}
		if !u.add(l) {
			u.Dropped++
		}
	}
}

func (u *Uniforms) add(l *Light) bool {
	color := l.Color.Scale(l.Intensity).RGBArray()

	switch l.Kind {
	case KindAmbient:
		for i := 0; i < 3; i++ {
			u.Ambient[i] += color[i]
		}
		return true

	case KindHemisphere:
		if u.HemisphereCount >= MaxPerKind {
			return false
		}
		i := u.HemisphereCount
		put3(u.HemisphereSky, i, color)
		put3(u.HemisphereGround, i, l.Ground.Scale(l.Intensity).RGBArray())
		put3(u.HemisphereDir, i, l.Direction().Array())
		u.HemisphereCount++
		return true

	case KindPoint:
		if u.PointCount >= MaxPerKind {
			return false
		}
		i := u.PointCount
		put3(u.PointPositions, i, l.Position.Array())
		put3(u.PointColors, i, color)
		u.PointRanges[i] = l.Distance
		u.PointDecays[i] = l.Decay
		u.PointShadow[i] = u.assignShadow(l)
		u.PointCount++
		return true

	case KindDirectional:
		if u.DirectionalCount >= MaxPerKind {
			return false
		}
		i := u.DirectionalCount
		put3(u.DirectionalDirs, i, l.Direction().Array())
		put3(u.DirectionalColors, i, color)
		u.DirectionalShadow[i] = u.assignShadow(l)
		u.DirectionalCount++
		return true
	}
	return false
}

// assignShadow reserves a shadow map slot for l if it casts shadows and
// one is still free.
func (u *Uniforms) assignShadow(l *Light) int32 {
	if !l.CastShadow || len(u.Casters) >= MaxShadowCasters {
		return -1
	}
	u.Casters = append(u.Casters, l)
	return int32(len(u.Casters) - 1)
}

func put3(dst []float32, i int, v [3]float32) {
	dst[i*3+0] = v[0]
	dst[i*3+1] = v[1]
	dst[i*3+2] = v[2]
}
