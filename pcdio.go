package main

import (
	"os"

	"github.com/seqsense/pcgol/pc"
)

const (
	labelJoint   = 1
	labelLocator = 2
)

type pcdIOImpl struct{}

func (*pcdIOImpl) exportPCD(path string, s *scene) error {
	pp, err := scenePointCloud(s)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return pc.Marshal(pp, f)
}

// scenePointCloud packs the scene into a labeled point cloud, joints first.
func scenePointCloud(s *scene) (*pc.PointCloud, error) {
	n := len(s.joints) + len(s.locators)
	pp := &pc.PointCloud{
		PointCloudHeader: pc.PointCloudHeader{
			Version:   0.7,
			Fields:    []string{"x", "y", "z", "label"},
			Size:      []int{4, 4, 4, 4},
			Type:      []string{"F", "F", "F", "U"},
			Count:     []int{1, 1, 1, 1},
			Viewpoint: []float32{0, 0, 0, 1, 0, 0, 0},
			Width:     n,
			Height:    1,
		},
		Points: n,
	}
	pp.Data = make([]byte, n*pp.Stride())

	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, err
	}
	itL, err := pp.Uint32Iterator("label")
	if err != nil {
		return nil, err
	}
	for _, j := range s.joints {
		it.SetVec3(j.pos)
		itL.SetUint32(labelJoint)
		it.Incr()
		itL.Incr()
	}
	for _, l := range s.locators {
		it.SetVec3(l.pos)
		itL.SetUint32(labelLocator)
		it.Incr()
		itL.Incr()
	}
	return pp, nil
}
