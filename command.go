package main

import (
	"errors"

	"github.com/adambucifal/Get-Pole-Vector/ik"
	"github.com/seqsense/pcgol/mat"
)

const defaultMultiplier = 1.0

var errSelectJoints = errors.New("select three joints")

type sceneIO interface {
	readScene(path string) (*scene, error)
	writeScene(path string, s *scene) error
}

type pcdIO interface {
	exportPCD(path string, s *scene) error
}

type poleResult struct {
	Locator string
	Pos     mat.Vec3
}

type commandContext struct {
	scene   *scene
	sceneIO sceneIO
	pcdIO   pcdIO
	logf    func(format string, args ...interface{})

	multiplier float32
}

func newCommandContext(sio sceneIO, pio pcdIO) *commandContext {
	return &commandContext{
		scene:      newScene(),
		sceneIO:    sio,
		pcdIO:      pio,
		logf:       func(string, ...interface{}) {},
		multiplier: defaultMultiplier,
	}
}

func (c *commandContext) Multiplier() float32 {
	return c.multiplier
}

func (c *commandContext) SetMultiplier(m float32) error {
	if isNonFinite(m) {
		return ik.ErrNonFiniteMultiplier
	}
	c.multiplier = m
	return nil
}

func (c *commandContext) SetJoint(name string, p mat.Vec3) error {
	if name == "" {
		return errors.New("joint name must not be empty")
	}
	c.scene.setJoint(name, p)
	return nil
}

func (c *commandContext) Joints() []joint {
	return c.scene.joints
}

func (c *commandContext) Locators() []locator {
	return c.scene.locators
}

func (c *commandContext) Selection() []string {
	return c.scene.selected
}

func (c *commandContext) Select(names ...string) error {
	return c.scene.selectEntities(names...)
}

func (c *commandContext) ClearSelection() {
	c.scene.clearSelection()
}

// PoleVector computes the pole vector of the three selected joints and
// places a locator there. On error nothing is placed.
func (c *commandContext) PoleVector() (poleResult, error) {
	jj := c.scene.selectedJoints()
	if len(jj) != 3 {
		return poleResult{}, errSelectJoints
	}

	pole, err := ik.PoleVector(jj[0].pos, jj[1].pos, jj[2].pos, c.multiplier)
	if err != nil {
		return poleResult{}, err
	}

	name := c.scene.placeLocator(pole)
	c.logf("%g, %g, %g", pole[0], pole[1], pole[2])
	return poleResult{Locator: name, Pos: pole}, nil
}

// PoleVectorAt computes the pole vector of an explicit chain. The scene
// is not touched.
func (c *commandContext) PoleVectorAt(root, mid, end mat.Vec3, multiplier float32) (mat.Vec3, error) {
	pole, err := ik.PoleVector(root, mid, end, multiplier)
	if err != nil {
		return mat.Vec3{}, err
	}
	c.logf("%g, %g, %g", pole[0], pole[1], pole[2])
	return pole, nil
}

func (c *commandContext) LoadScene(path string) error {
	s, err := c.sceneIO.readScene(path)
	if err != nil {
		return err
	}
	c.scene = s
	return nil
}

func (c *commandContext) SaveScene(path string) error {
	return c.sceneIO.writeScene(path, c.scene)
}

func (c *commandContext) ExportPCD(path string) error {
	if len(c.scene.joints) == 0 && len(c.scene.locators) == 0 {
		return errors.New("empty scene")
	}
	return c.pcdIO.exportPCD(path, c.scene)
}
