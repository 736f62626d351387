package animations

// Geometry is what a resource provider knows about a sprite sheet.
type Geometry struct {
	Frames          int
	FrameDurationMs float64
}

// Provider supplies per-action animation resources. Readiness only matters
// to rendering; the simulation uses the geometry or a default when unready.
type Provider interface {
	Lookup(name string) (geom Geometry, ready bool)
}

// StaticProvider serves fixed geometry for a set of names. Names that are
// missing report not ready.
type StaticProvider map[string]Geometry

func (p StaticProvider) Lookup(name string) (Geometry, bool) {
	g, ok := p[name]
	return g, ok
}

// Unready reports every action as not loaded yet.
type Unready struct{}

func (Unready) Lookup(string) (Geometry, bool) {
	return Geometry{}, false
}

// Resolve merges provider geometry into a default spec. Unready resources
// keep the default geometry; ready ones override it and are validated.
func Resolve(p Provider, name string, def ClipSpec) (ClipSpec, bool, error) {
	spec := def
	if p == nil {
		return spec, false, spec.Validate()
	}
	geom, ready := p.Lookup(name)
	if ready {
		spec.Frames = geom.Frames
		spec.FrameDurationMs = geom.FrameDurationMs
	}
	if err := spec.Validate(); err != nil {
		return spec, ready, err
	}
	return spec, ready, nil
}
