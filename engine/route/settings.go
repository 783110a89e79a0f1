package route

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Settings holds the tuning values of the router and the path refiner.
type Settings struct {
	// world units per voxel
	VoxelSpacing float64 `yaml:"voxel_spacing"`
	// z display offset as a fraction of VoxelSpacing, x and y are always offset by half a voxel
	DisplayOffsetZ float64 `yaml:"display_offset_z"`

	Subdivisions   int     `yaml:"subdivisions"`
	Stretchiness   float64 `yaml:"stretchiness"`
	SpringConstant float64 `yaml:"spring_constant"`
	Damping        float64 `yaml:"damping"`
	TimeStep       float64 `yaml:"time_step"`
	PointMass      float64 `yaml:"point_mass"`
	MaxIterations  int     `yaml:"max_iterations"`
}

func DefaultSettings() Settings {
	return Settings{
		VoxelSpacing:   1.0,
		DisplayOffsetZ: 1.05,
		Subdivisions:   4,
		Stretchiness:   0.1,
		SpringConstant: 10.0,
		Damping:        0.8,
		TimeStep:       0.05,
		PointMass:      1.0,
		MaxIterations:  100,
	}
}

// LoadSettings reads a YAML tuning file. Keys missing from the file keep their default value.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	raw, err := os.ReadFile(path)
	if err != nil {
		return s, errors.Wrapf(err, "reading %s", path)
	}
	if err = yaml.Unmarshal(raw, &s); err != nil {
		return s, errors.Wrapf(err, "%s", path)
	}
	if err = s.Validate(); err != nil {
		return s, errors.Wrapf(err, "%s", path)
	}
	return s, nil
}

// Above this value of k*dt²/m a point in the middle of the string, pulled by two springs,
// overshoots further on every step and the explicit integration blows up.
const maxStepStiffness = 1.0

func (s Settings) Validate() error {
	switch {
	case s.VoxelSpacing <= 0:
		return errors.Errorf("voxel_spacing must be positive, got %v", s.VoxelSpacing)
	case s.Subdivisions < 1:
		return errors.Errorf("subdivisions must be at least 1, got %d", s.Subdivisions)
	case s.Stretchiness < 0:
		return errors.Errorf("stretchiness must not be negative, got %v", s.Stretchiness)
	case s.SpringConstant <= 0:
		return errors.Errorf("spring_constant must be positive, got %v", s.SpringConstant)
	case s.Damping <= 0 || s.Damping > 1:
		return errors.Errorf("damping must be in (0, 1], got %v", s.Damping)
	case s.TimeStep <= 0:
		return errors.Errorf("time_step must be positive, got %v", s.TimeStep)
	case s.PointMass <= 0:
		return errors.Errorf("point_mass must be positive, got %v", s.PointMass)
	case s.MaxIterations < 1:
		return errors.Errorf("max_iterations must be at least 1, got %d", s.MaxIterations)
	case s.SpringConstant*s.TimeStep*s.TimeStep/s.PointMass > maxStepStiffness:
		return errors.Errorf("spring_constant * time_step^2 / point_mass must be at most %v, got %v", maxStepStiffness, s.SpringConstant*s.TimeStep*s.TimeStep/s.PointMass)
	}
	return nil
}
