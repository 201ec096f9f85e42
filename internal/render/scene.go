package render

// Scene is the renderer-side scene: the models and lights currently
// submitted for drawing. Components attach and detach their render objects
// here as part of their enable/disable lifecycle.
type Scene struct {
	models []*Model
	lights []*Light
}

func NewScene() *Scene {
	return &Scene{
		models: make([]*Model, 0),
		lights: make([]*Light, 0),
	}
}

func (s *Scene) ContainsModel(m *Model) bool {
	for _, existing := range s.models {
		if existing == m {
			return true
		}
	}
	return false
}

// AddModel appends m to the draw list. Callers guard against duplicates
// with ContainsModel.
func (s *Scene) AddModel(m *Model) {
	s.models = append(s.models, m)
}

func (s *Scene) RemoveModel(m *Model) {
	for i, existing := range s.models {
		if existing == m {
			s.models = append(s.models[:i], s.models[i+1:]...)
			return
		}
	}
}

func (s *Scene) Models() []*Model {
	return s.models
}

func (s *Scene) ContainsLight(l *Light) bool {
	for _, existing := range s.lights {
		if existing == l {
			return true
		}
	}
	return false
}

func (s *Scene) AddLight(l *Light) {
	s.lights = append(s.lights, l)
}

func (s *Scene) RemoveLight(l *Light) {
	for i, existing := range s.lights {
		if existing == l {
			s.lights = append(s.lights[:i], s.lights[i+1:]...)
			return
		}
	}
}

func (s *Scene) Lights() []*Light {
	return s.lights
}
