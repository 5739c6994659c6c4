package segmentation

import (
	"testing"

	"go.viam.com/test"

	"go.viam.com/planeseg/utils"
)

func TestRGBPlaneConfig(t *testing.T) {
	cfg := RGBPlaneConfig{}
	// invalid angle threshold
	cfg.AngleThreshDegs = 200.
	err := cfg.CheckValid()
	test.That(t, err.Error(), test.ShouldContainSubstring, "angle_threshold_degs must be in degrees, between 0 and 180")
	// invalid distance threshold
	cfg.AngleThreshDegs = 10.
	cfg.DistanceThresh = -0.5
	err = cfg.CheckValid()
	test.That(t, err.Error(), test.ShouldContainSubstring, "distance_threshold cannot be less than 0")
	// invalid color threshold
	cfg.DistanceThresh = 0.05
	cfg.ColorThresh = -1.
	err = cfg.CheckValid()
	test.That(t, err.Error(), test.ShouldContainSubstring, "color_threshold cannot be less than 0")
	// valid
	cfg.ColorThresh = 20.
	err = cfg.CheckValid()
	test.That(t, err, test.ShouldBeNil)

	_, err = (&RGBPlaneConfig{AngleThreshDegs: -3}).NewComparator()
	test.That(t, err, test.ShouldNotBeNil)

	// The constructor pushes the configured values through the setters, so
	// the distance and color getters read back squared.
	c, err := cfg.NewComparator()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, c.AngularThreshold(), test.ShouldAlmostEqual, utils.DegToRad(10))
	test.That(t, c.DistanceThreshold(), test.ShouldAlmostEqual, utils.Square(0.05))
	test.That(t, c.ColorThreshold(), test.ShouldAlmostEqual, 400.)
}

func TestRGBPlaneConfigConvertAttributes(t *testing.T) {
	am := utils.AttributeMap{
		"angle_threshold_degs": 15.0,
		"distance_threshold":   0.1,
		"color_threshold":      35.0,
	}
	cfg := &RGBPlaneConfig{}
	test.That(t, cfg.ConvertAttributes(am), test.ShouldBeNil)
	test.That(t, cfg.AngleThreshDegs, test.ShouldEqual, 15.0)
	test.That(t, cfg.DistanceThresh, test.ShouldEqual, 0.1)
	test.That(t, cfg.ColorThresh, test.ShouldEqual, 35.0)
}

func TestPlaneCoefficientConfig(t *testing.T) {
	cfg := PlaneCoefficientConfig{}
	// invalid angle threshold
	cfg.AngleThreshDegs = -10.
	err := cfg.CheckValid()
	test.That(t, err.Error(), test.ShouldContainSubstring, "angle_threshold_degs must be in degrees, between 0 and 180")
	// invalid distance threshold
	cfg.AngleThreshDegs = 3.
	cfg.DistanceThresh = -2.
	err = cfg.CheckValid()
	test.That(t, err.Error(), test.ShouldContainSubstring, "distance_threshold cannot be less than 0")
	// valid
	cfg.DistanceThresh = 0.04
	err = cfg.CheckValid()
	test.That(t, err, test.ShouldBeNil)

	cfg.DepthDependent = true
	c, err := cfg.NewComparator()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, c.AngularThreshold(), test.ShouldAlmostEqual, utils.DegToRad(3))
	test.That(t, c.DistanceThreshold(), test.ShouldEqual, 0.04)
}

func TestEuclideanClusterConfig(t *testing.T) {
	cfg := EuclideanClusterConfig{}
	cfg.DistanceThresh = -1.
	err := cfg.CheckValid()
	test.That(t, err.Error(), test.ShouldContainSubstring, "distance_threshold cannot be less than 0")
	cfg.DistanceThresh = 0.01
	err = cfg.CheckValid()
	test.That(t, err, test.ShouldBeNil)

	am := utils.AttributeMap{
		"distance_threshold": 0.01,
		"depth_dependent":    true,
		"exclude_labels":     []interface{}{1, 4},
	}
	cfg = EuclideanClusterConfig{}
	test.That(t, cfg.ConvertAttributes(am), test.ShouldBeNil)
	test.That(t, cfg.DistanceThresh, test.ShouldEqual, 0.01)
	test.That(t, cfg.DepthDependent, test.ShouldBeTrue)
	test.That(t, cfg.ExcludeLabels, test.ShouldResemble, []int{1, 4})

	c, err := cfg.NewComparator()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, c.DistanceThreshold(), test.ShouldEqual, 0.01)
	test.That(t, c.ExcludeLabels(), test.ShouldResemble, map[int]bool{1: true, 4: true})
}
