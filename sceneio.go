package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/seqsense/pcgol/mat"
	"gopkg.in/yaml.v3"
)

type sceneEntry struct {
	Name     string    `yaml:"name"`
	Position []float32 `yaml:"position,flow"`
}

type sceneFile struct {
	Joints   []sceneEntry `yaml:"joints"`
	Locators []sceneEntry `yaml:"locators,omitempty"`
}

type sceneIOImpl struct{}

func (*sceneIOImpl) readScene(path string) (*scene, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseScene(b)
}

func (*sceneIOImpl) writeScene(path string, s *scene) error {
	b, err := marshalScene(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

func parseScene(b []byte) (*scene, error) {
	f := &sceneFile{}
	if err := yaml.Unmarshal(b, f); err != nil {
		return nil, err
	}
	s := newScene()
	for _, e := range f.Joints {
		p, err := entryPosition(e)
		if err != nil {
			return nil, err
		}
		if s.has(e.Name) {
			return nil, fmt.Errorf("duplicated entity name: %q", e.Name)
		}
		s.joints = append(s.joints, joint{name: e.Name, pos: p})
	}
	for _, e := range f.Locators {
		p, err := entryPosition(e)
		if err != nil {
			return nil, err
		}
		if s.has(e.Name) {
			return nil, fmt.Errorf("duplicated entity name: %q", e.Name)
		}
		s.locators = append(s.locators, locator{name: e.Name, pos: p})
	}
	return s, nil
}

func entryPosition(e sceneEntry) (mat.Vec3, error) {
	if e.Name == "" {
		return mat.Vec3{}, errors.New("entity name must not be empty")
	}
	if len(e.Position) != 3 {
		return mat.Vec3{}, fmt.Errorf("%s: position must have three components", e.Name)
	}
	var p mat.Vec3
	for i, v := range e.Position {
		if isNonFinite(v) {
			return mat.Vec3{}, fmt.Errorf("%s: position must be finite", e.Name)
		}
		p[i] = v
	}
	return p, nil
}

func marshalScene(s *scene) ([]byte, error) {
	f := &sceneFile{}
	for _, j := range s.joints {
		f.Joints = append(f.Joints, sceneEntry{
			Name:     j.name,
			Position: []float32{j.pos[0], j.pos[1], j.pos[2]},
		})
	}
	for _, l := range s.locators {
		f.Locators = append(f.Locators, sceneEntry{
			Name:     l.name,
			Position: []float32{l.pos[0], l.pos[1], l.pos[2]},
		})
	}
	return yaml.Marshal(f)
}
