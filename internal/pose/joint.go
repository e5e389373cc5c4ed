package pose

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

// JointID names an angle between three landmarks.
type JointID string

const (
	JointLeftElbow     JointID = "left_elbow"
	JointRightElbow    JointID = "right_elbow"
	JointLeftShoulder  JointID = "left_shoulder"
	JointRightShoulder JointID = "right_shoulder"
	JointLeftHip       JointID = "left_hip"
	JointRightHip      JointID = "right_hip"
	JointLeftKnee      JointID = "left_knee"
	JointRightKnee     JointID = "right_knee"
	JointLeftAnkle     JointID = "left_ankle"
	JointRightAnkle    JointID = "right_ankle"
)

func (j JointID) String() string {
	return string(j)
}

// Spoken returns the joint name the way it should be read out loud,
// e.g. "right knee".
func (j JointID) Spoken() string {
	return strings.ReplaceAll(string(j), "_", " ")
}

func (j JointID) IsValid() bool {
	_, ok := joints[j]
	return ok
}

// Joint is an angle measured at vertex B between the rays B->A and B->C.
type Joint struct {
	ID JointID       `json:"id"`
	A  LandmarkIndex `json:"a"`
	B  LandmarkIndex `json:"b"`
	C  LandmarkIndex `json:"c"`
}

var joints = map[JointID]Joint{
	JointLeftElbow:     {JointLeftElbow, LandmarkLeftShoulder, LandmarkLeftElbow, LandmarkLeftWrist},
	JointRightElbow:    {JointRightElbow, LandmarkRightShoulder, LandmarkRightElbow, LandmarkRightWrist},
	JointLeftShoulder:  {JointLeftShoulder, LandmarkLeftElbow, LandmarkLeftShoulder, LandmarkLeftHip},
	JointRightShoulder: {JointRightShoulder, LandmarkRightElbow, LandmarkRightShoulder, LandmarkRightHip},
	JointLeftHip:       {JointLeftHip, LandmarkLeftShoulder, LandmarkLeftHip, LandmarkLeftKnee},
	JointRightHip:      {JointRightHip, LandmarkRightShoulder, LandmarkRightHip, LandmarkRightKnee},
	JointLeftKnee:      {JointLeftKnee, LandmarkLeftHip, LandmarkLeftKnee, LandmarkLeftAnkle},
	JointRightKnee:     {JointRightKnee, LandmarkRightHip, LandmarkRightKnee, LandmarkRightAnkle},
	JointLeftAnkle:     {JointLeftAnkle, LandmarkLeftKnee, LandmarkLeftAnkle, LandmarkLeftFootIndex},
	JointRightAnkle:    {JointRightAnkle, LandmarkRightKnee, LandmarkRightAnkle, LandmarkRightFootIndex},
}

// LookupJoint returns the landmark triple for a joint.
func LookupJoint(id JointID) (Joint, bool) {
	j, ok := joints[id]
	return j, ok
}

// Angle computes the joint angle on a landmark set.
func (j Joint) Angle(set LandmarkSet) (float64, error) {
	return JointAngle(set.At(j.A), set.At(j.B), set.At(j.C))
}

// JointAngle returns the angle at b between the rays b->a and b->c, in
// degrees within [0, 180]. A zero-length ray has no direction, so the
// angle is undefined and ErrDegenerateJoint is returned. The result is
// never NaN.
func JointAngle(a, b, c Landmark) (float64, error) {
	ba, ok := unitRay(b.vec(), a.vec())
	if !ok {
		return 0, ErrDegenerateJoint
	}
	bc, ok := unitRay(b.vec(), c.vec())
	if !ok {
		return 0, ErrDegenerateJoint
	}

	rad := math.Atan2(math.Abs(r2.Cross(ba, bc)), r2.Dot(ba, bc))
	deg := rad * 180 / math.Pi
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0, ErrDegenerateJoint
	}
	return deg, nil
}

// unitRay returns the direction from -> to with length 1.
func unitRay(from, to r2.Vec) (r2.Vec, bool) {
	ray := r2.Sub(to, from)
	norm := r2.Norm(ray)
	if norm == 0 || math.IsInf(norm, 0) || math.IsNaN(norm) {
		return r2.Vec{}, false
	}
	unit := r2.Vec{X: ray.X / norm, Y: ray.Y / norm}
	if math.IsNaN(unit.X) || math.IsNaN(unit.Y) {
		return r2.Vec{}, false
	}
	return unit, true
}
