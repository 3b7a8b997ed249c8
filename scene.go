package main

import (
	"fmt"

	"github.com/seqsense/pcgol/mat"
)

type joint struct {
	name string
	pos  mat.Vec3
}

type locator struct {
	name string
	pos  mat.Vec3
}

// scene is the only mutable state of the tool.
type scene struct {
	joints   []joint
	locators []locator
	selected []string

	nLocator int
}

func newScene() *scene {
	return &scene{}
}

func (s *scene) has(name string) bool {
	for _, j := range s.joints {
		if j.name == name {
			return true
		}
	}
	for _, l := range s.locators {
		if l.name == name {
			return true
		}
	}
	return false
}

// setJoint adds a joint or moves an existing one, keeping definition order.
func (s *scene) setJoint(name string, p mat.Vec3) {
	for i, j := range s.joints {
		if j.name == name {
			s.joints[i].pos = p
			return
		}
	}
	s.joints = append(s.joints, joint{name: name, pos: p})
}

func (s *scene) addLocator(name string, p mat.Vec3) {
	s.locators = append(s.locators, locator{name: name, pos: p})
}

func (s *scene) worldPosition(name string) (mat.Vec3, bool) {
	for _, j := range s.joints {
		if j.name == name {
			return j.pos, true
		}
	}
	for _, l := range s.locators {
		if l.name == name {
			return l.pos, true
		}
	}
	return mat.Vec3{}, false
}

// placeLocator creates a locator at p and selects it. The generated
// name is unique within the scene.
func (s *scene) placeLocator(p mat.Vec3) string {
	for {
		s.nLocator++
		name := fmt.Sprintf("locator%d", s.nLocator)
		if s.has(name) {
			continue
		}
		s.addLocator(name, p)
		s.selected = []string{name}
		return name
	}
}

func (s *scene) selectEntities(names ...string) error {
	for _, name := range names {
		if !s.has(name) {
			return fmt.Errorf("no joint or locator named %q", name)
		}
	}
	s.selected = append([]string(nil), names...)
	return nil
}

func (s *scene) clearSelection() {
	s.selected = nil
}

// selectedJoints keeps selection order and skips selected locators.
func (s *scene) selectedJoints() []joint {
	var jj []joint
	for _, name := range s.selected {
		for _, j := range s.joints {
			if j.name == name {
				jj = append(jj, j)
				break
			}
		}
	}
	return jj
}
