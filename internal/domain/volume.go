package domain

// VolumeSteps is how many increments span the unit volume range
const VolumeSteps = 20

// Volume is a normalized loudness in [0.0, 1.0]
type Volume float64

// Named volume presets
const (
	VolumeMax     Volume = 1.0
	VolumeMid     Volume = 0.5
	VolumeMin     Volume = 0.01
	VolumeSilent  Volume = 0.0
	VolumeDefault        = VolumeMid
	VolumeStep    Volume = 1.0 / VolumeSteps
)

// Clamp forces v into the unit interval
func (v Volume) Clamp() Volume {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// VolumeFromSteps converts a 0..VolumeSteps step count into a volume
func VolumeFromSteps(steps int) Volume {
	steps = min(max(steps, 0), VolumeSteps)
	return Volume(float64(steps) / VolumeSteps)
}

// Percent returns v as a rounded 0..100 percentage
func (v Volume) Percent() int {
	return int(float64(v.Clamp())*100 + 0.5)
}
