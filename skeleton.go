package stickfig

import "math"

// Point is a 2D coordinate in canvas space (origin top-left, Y down).
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Joint identifies one of the 15 skeleton joints.
type Joint int

// Joints in the order they are computed and drawn.
const (
	HipCenter Joint = iota
	LeftHip
	RightHip
	Neck
	HeadCenter
	LeftShoulder
	RightShoulder
	LeftElbow
	RightElbow
	LeftWrist
	RightWrist
	LeftKnee
	RightKnee
	LeftAnkle
	RightAnkle

	// JointCount is the number of joints in a JointMap.
	JointCount = iota
)

var jointNames = [JointCount]string{
	HipCenter:     "hip_center",
	LeftHip:       "left_hip",
	RightHip:      "right_hip",
	Neck:          "neck",
	HeadCenter:    "head_center",
	LeftShoulder:  "left_shoulder",
	RightShoulder: "right_shoulder",
	LeftElbow:     "left_elbow",
	RightElbow:    "right_elbow",
	LeftWrist:     "left_wrist",
	RightWrist:    "right_wrist",
	LeftKnee:      "left_knee",
	RightKnee:     "right_knee",
	LeftAnkle:     "left_ankle",
	RightAnkle:    "right_ankle",
}

// String returns the snake_case joint name.
func (j Joint) String() string {
	if j < 0 || j >= JointCount {
		return "unknown"
	}
	return jointNames[j]
}

// Segment identifies one of the 8 colored limb segments. Segments double as
// the keys of an AngleSet and a ColorTable.
type Segment int

// Segments in drawing order.
const (
	LeftUpperArm Segment = iota
	LeftLowerArm
	RightUpperArm
	RightLowerArm
	LeftUpperLeg
	LeftLowerLeg
	RightUpperLeg
	RightLowerLeg

	// SegmentCount is the number of limb segments.
	SegmentCount = iota
)

var segmentNames = [SegmentCount]string{
	LeftUpperArm:  "left_upper_arm",
	LeftLowerArm:  "left_lower_arm",
	RightUpperArm: "right_upper_arm",
	RightLowerArm: "right_lower_arm",
	LeftUpperLeg:  "left_upper_leg",
	LeftLowerLeg:  "left_lower_leg",
	RightUpperLeg: "right_upper_leg",
	RightLowerLeg: "right_lower_leg",
}

var segmentEndpoints = [SegmentCount][2]Joint{
	LeftUpperArm:  {LeftShoulder, LeftElbow},
	LeftLowerArm:  {LeftElbow, LeftWrist},
	RightUpperArm: {RightShoulder, RightElbow},
	RightLowerArm: {RightElbow, RightWrist},
	LeftUpperLeg:  {LeftHip, LeftKnee},
	LeftLowerLeg:  {LeftKnee, LeftAnkle},
	RightUpperLeg: {RightHip, RightKnee},
	RightLowerLeg: {RightKnee, RightAnkle},
}

// String returns the snake_case segment name.
func (s Segment) String() string {
	if s < 0 || s >= SegmentCount {
		return "unknown"
	}
	return segmentNames[s]
}

// Endpoints returns the proximal and distal joints of the segment.
// s must be one of the declared segments; Endpoints panics otherwise.
func (s Segment) Endpoints() (from, to Joint) {
	e := segmentEndpoints[s]
	return e[0], e[1]
}

// Segments returns all limb segments in drawing order.
func Segments() []Segment {
	segs := make([]Segment, SegmentCount)
	for i := range segs {
		segs[i] = Segment(i)
	}
	return segs
}

// LengthConfig holds the body segment lengths in pixels.
// Lengths are expected to be positive but are not validated.
type LengthConfig struct {
	Torso         float64
	UpperArm      float64
	LowerArm      float64
	UpperLeg      float64
	LowerLeg      float64
	HeadRadius    float64
	ShoulderWidth float64
	HipOffset     float64
}

// AngleSet holds one joint angle in radians per segment. Upper-segment
// angles are measured from the downward vertical axis; lower-segment angles
// are relative to their upper segment.
type AngleSet [SegmentCount]float64

// JointMap holds the absolute coordinates of every joint.
type JointMap [JointCount]Point

// Get returns the coordinate of joint j.
func (m JointMap) Get(j Joint) Point {
	return m[j]
}

// Each calls fn for every joint in Joint order.
func (m JointMap) Each(fn func(Joint, Point)) {
	for j, p := range m {
		fn(Joint(j), p)
	}
}

// Midpoint returns the midpoint of segment s.
func (m JointMap) Midpoint(s Segment) Point {
	from, to := s.Endpoints()
	a, b := m[from], m[to]
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// polar returns the vector of the given length at angle a from the
// downward vertical axis.
func polar(length, a float64) Point {
	return Point{X: length * math.Sin(a), Y: length * math.Cos(a)}
}

// Solve computes the joint coordinates of a stick figure whose hip center is
// at root. It is pure and accepts any finite input, including negative
// lengths and angles beyond ±π.
//
// Each lower segment is oriented by the sum of its own angle and its upper
// segment's angle, so a limb bends at the elbow or knee rather than pointing
// independently from the vertical.
func Solve(root Point, lengths LengthConfig, angles AngleSet) JointMap {
	var m JointMap

	m[HipCenter] = root
	m[LeftHip] = Point{X: root.X - lengths.HipOffset, Y: root.Y}
	m[RightHip] = Point{X: root.X + lengths.HipOffset, Y: root.Y}

	neckY := root.Y - lengths.Torso
	m[Neck] = Point{X: root.X, Y: neckY}
	m[HeadCenter] = Point{X: root.X, Y: neckY - lengths.HeadRadius}

	m[LeftShoulder] = Point{X: root.X - lengths.ShoulderWidth, Y: neckY}
	m[RightShoulder] = Point{X: root.X + lengths.ShoulderWidth, Y: neckY}

	limb := func(upper, lower Segment, upperLen, lowerLen float64) {
		base, mid := upper.Endpoints()
		_, tip := lower.Endpoints()
		m[mid] = m[base].Add(polar(upperLen, angles[upper]))
		m[tip] = m[mid].Add(polar(lowerLen, angles[upper]+angles[lower]))
	}
	limb(LeftUpperArm, LeftLowerArm, lengths.UpperArm, lengths.LowerArm)
	limb(RightUpperArm, RightLowerArm, lengths.UpperArm, lengths.LowerArm)
	limb(LeftUpperLeg, LeftLowerLeg, lengths.UpperLeg, lengths.LowerLeg)
	limb(RightUpperLeg, RightLowerLeg, lengths.UpperLeg, lengths.LowerLeg)

	return m
}
