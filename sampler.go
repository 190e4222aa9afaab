package stickfig

import "math/rand/v2"

// AngleRange is a closed interval of angles in radians.
type AngleRange struct {
	Min, Max float64
}

// DefaultRanges returns the per-segment sampling ranges: arms swing up to
// ±0.5 rad, legs up to ±0.3 rad.
func DefaultRanges() [SegmentCount]AngleRange {
	arm := AngleRange{Min: -0.5, Max: 0.5}
	leg := AngleRange{Min: -0.3, Max: 0.3}
	return [SegmentCount]AngleRange{
		LeftUpperArm:  arm,
		LeftLowerArm:  arm,
		RightUpperArm: arm,
		RightLowerArm: arm,
		LeftUpperLeg:  leg,
		LeftLowerLeg:  leg,
		RightUpperLeg: leg,
		RightLowerLeg: leg,
	}
}

// Sampler draws random poses. A Sampler is not safe for concurrent use.
type Sampler struct {
	rng    *rand.Rand
	ranges [SegmentCount]AngleRange
}

// NewSampler returns a sampler seeded with seed. Equal seeds produce equal
// pose sequences.
func NewSampler(seed uint64) *Sampler {
	return &Sampler{
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		ranges: DefaultRanges(),
	}
}

// Sample returns a new AngleSet with every angle drawn uniformly from its range.
func (s *Sampler) Sample() AngleSet {
	var a AngleSet
	for i, r := range s.ranges {
		a[i] = r.Min + s.rng.Float64()*(r.Max-r.Min)
	}
	return a
}
