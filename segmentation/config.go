package segmentation

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"

	"go.viam.com/planeseg/utils"
)

// RGBPlaneConfig drives an RGBPlaneComparator from service-style attributes.
// Values are given untransformed: the angle in degrees, the distance in
// meters, the color distance in RGB space.
type RGBPlaneConfig struct {
	AngleThreshDegs float64 `json:"angle_threshold_degs"`
	DistanceThresh  float64 `json:"distance_threshold"`
	ColorThresh     float64 `json:"color_threshold"`
}

// CheckValid checks that the config values are within bounds. It is the
// cold-path home of the range validation Compare refuses to do.
func (cfg *RGBPlaneConfig) CheckValid() error {
	if cfg.AngleThreshDegs < 0 || cfg.AngleThreshDegs > 180 {
		return errors.New("angle_threshold_degs must be in degrees, between 0 and 180")
	}
	if cfg.DistanceThresh < 0 {
		return errors.New("distance_threshold cannot be less than 0")
	}
	if cfg.ColorThresh < 0 {
		return errors.New("color_threshold cannot be less than 0")
	}
	return nil
}

// ConvertAttributes changes the AttributeMap input into an RGBPlaneConfig.
func (cfg *RGBPlaneConfig) ConvertAttributes(am utils.AttributeMap) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "json", Result: cfg})
	if err != nil {
		return err
	}
	return decoder.Decode(am)
}

// NewComparator returns an RGBPlaneComparator with the config's thresholds
// applied.
func (cfg *RGBPlaneConfig) NewComparator() (*RGBPlaneComparator, error) {
	if err := cfg.CheckValid(); err != nil {
		return nil, err
	}
	c := NewRGBPlaneComparator()
	c.SetAngularThreshold(utils.DegToRad(cfg.AngleThreshDegs))
	c.SetDistanceThreshold(cfg.DistanceThresh)
	c.SetColorThreshold(cfg.ColorThresh)
	return c, nil
}

// PlaneCoefficientConfig drives a PlaneCoefficientComparator from
// service-style attributes.
type PlaneCoefficientConfig struct {
	AngleThreshDegs float64 `json:"angle_threshold_degs"`
	DistanceThresh  float64 `json:"distance_threshold"`
	DepthDependent  bool    `json:"depth_dependent"`
}

// CheckValid checks that the config values are within bounds.
func (cfg *PlaneCoefficientConfig) CheckValid() error {
	if cfg.AngleThreshDegs < 0 || cfg.AngleThreshDegs > 180 {
		return errors.New("angle_threshold_degs must be in degrees, between 0 and 180")
	}
	if cfg.DistanceThresh < 0 {
		return errors.New("distance_threshold cannot be less than 0")
	}
	return nil
}

// ConvertAttributes changes the AttributeMap input into a
// PlaneCoefficientConfig.
func (cfg *PlaneCoefficientConfig) ConvertAttributes(am utils.AttributeMap) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "json", Result: cfg})
	if err != nil {
		return err
	}
	return decoder.Decode(am)
}

// NewComparator returns a PlaneCoefficientComparator with the config's
// thresholds applied.
func (cfg *PlaneCoefficientConfig) NewComparator() (*PlaneCoefficientComparator, error) {
	if err := cfg.CheckValid(); err != nil {
		return nil, err
	}
	c := NewPlaneCoefficientComparator()
	c.SetAngularThreshold(utils.DegToRad(cfg.AngleThreshDegs))
	c.SetDistanceThreshold(cfg.DistanceThresh, cfg.DepthDependent)
	return c, nil
}

// EuclideanClusterConfig drives a EuclideanClusterComparator from
// service-style attributes.
type EuclideanClusterConfig struct {
	DistanceThresh float64 `json:"distance_threshold"`
	DepthDependent bool    `json:"depth_dependent"`
	ExcludeLabels  []int   `json:"exclude_labels"`
}

// CheckValid checks that the config values are within bounds.
func (cfg *EuclideanClusterConfig) CheckValid() error {
	if cfg.DistanceThresh < 0 {
		return errors.New("distance_threshold cannot be less than 0")
	}
	return nil
}

// ConvertAttributes changes the AttributeMap input into a
// EuclideanClusterConfig.
func (cfg *EuclideanClusterConfig) ConvertAttributes(am utils.AttributeMap) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "json", Result: cfg})
	if err != nil {
		return err
	}
	return decoder.Decode(am)
}

// NewComparator returns a EuclideanClusterComparator with the config's
// threshold and exclusion set applied.
func (cfg *EuclideanClusterConfig) NewComparator() (*EuclideanClusterComparator, error) {
	if err := cfg.CheckValid(); err != nil {
		return nil, err
	}
	c := NewEuclideanClusterComparator()
	c.SetDistanceThreshold(cfg.DistanceThresh, cfg.DepthDependent)
	if len(cfg.ExcludeLabels) > 0 {
		excluded := make(map[int]bool, len(cfg.ExcludeLabels))
		for _, label := range cfg.ExcludeLabels {
			excluded[label] = true
		}
		c.SetExcludeLabels(excluded)
	}
	return c, nil
}
