package pose

import "strconv"

// LandmarkIndex identifies an anatomical point in a LandmarkSet.
// The numbering follows the BlazePose 33 keypoint topology.
type LandmarkIndex int

const (
	LandmarkNose LandmarkIndex = iota
	LandmarkLeftEyeInner
	LandmarkLeftEye
	LandmarkLeftEyeOuter
	LandmarkRightEyeInner
	LandmarkRightEye
	LandmarkRightEyeOuter
	LandmarkLeftEar
	LandmarkRightEar
	LandmarkMouthLeft
	LandmarkMouthRight
	LandmarkLeftShoulder
	LandmarkRightShoulder
	LandmarkLeftElbow
	LandmarkRightElbow
	LandmarkLeftWrist
	LandmarkRightWrist
	LandmarkLeftPinky
	LandmarkRightPinky
	LandmarkLeftIndex
	LandmarkRightIndex
	LandmarkLeftThumb
	LandmarkRightThumb
	LandmarkLeftHip
	LandmarkRightHip
	LandmarkLeftKnee
	LandmarkRightKnee
	LandmarkLeftAnkle
	LandmarkRightAnkle
	LandmarkLeftHeel
	LandmarkRightHeel
	LandmarkLeftFootIndex
	LandmarkRightFootIndex
)

var landmarkNames = [SkeletonSize]string{
	"nose",
	"left_eye_inner",
	"left_eye",
	"left_eye_outer",
	"right_eye_inner",
	"right_eye",
	"right_eye_outer",
	"left_ear",
	"right_ear",
	"mouth_left",
	"mouth_right",
	"left_shoulder",
	"right_shoulder",
	"left_elbow",
	"right_elbow",
	"left_wrist",
	"right_wrist",
	"left_pinky",
	"right_pinky",
	"left_index",
	"right_index",
	"left_thumb",
	"right_thumb",
	"left_hip",
	"right_hip",
	"left_knee",
	"right_knee",
	"left_ankle",
	"right_ankle",
	"left_heel",
	"right_heel",
	"left_foot_index",
	"right_foot_index",
}

func (i LandmarkIndex) IsValid() bool {
	return i >= 0 && int(i) < SkeletonSize
}

func (i LandmarkIndex) String() string {
	if !i.IsValid() {
		return "landmark(" + strconv.Itoa(int(i)) + ")"
	}
	return landmarkNames[i]
}
