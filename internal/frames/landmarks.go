package frames

// BodyLandmark indexes the 33-point body pose layout shared by .btr and
// _body.btr2d files.
type BodyLandmark int

const (
	BodyNose BodyLandmark = iota
	BodyLeftEyeInner
	BodyLeftEye
	BodyLeftEyeOuter
	BodyRightEyeInner
	BodyRightEye
	BodyRightEyeOuter
	BodyLeftEar
	BodyRightEar
	BodyMouthLeft
	BodyMouthRight
	BodyLeftShoulder
	BodyRightShoulder
	BodyLeftElbow
	BodyRightElbow
	BodyLeftWrist
	BodyRightWrist
	BodyLeftPinky
	BodyRightPinky
	BodyLeftIndex
	BodyRightIndex
	BodyLeftThumb
	BodyRightThumb
	BodyLeftHip
	BodyRightHip
	BodyLeftKnee
	BodyRightKnee
	BodyLeftAnkle
	BodyRightAnkle
	BodyLeftHeel
	BodyRightHeel
	BodyLeftFootIndex
	BodyRightFootIndex
)

// BodyLandmarkNames lists the body landmarks in file order.
var BodyLandmarkNames = [BodyLandmarkCount]string{
	"Nose", "LeftEyeInner", "LeftEye", "LeftEyeOuter",
	"RightEyeInner", "RightEye", "RightEyeOuter",
	"LeftEar", "RightEar", "MouthLeft", "MouthRight",
	"LeftShoulder", "RightShoulder", "LeftElbow", "RightElbow",
	"LeftWrist", "RightWrist", "LeftPinky", "RightPinky",
	"LeftIndex", "RightIndex", "LeftThumb", "RightThumb",
	"LeftHip", "RightHip", "LeftKnee", "RightKnee",
	"LeftAnkle", "RightAnkle", "LeftHeel", "RightHeel",
	"LeftFootIndex", "RightFootIndex",
}

func (l BodyLandmark) String() string {
	if l < 0 || int(l) >= BodyLandmarkCount {
		return "Unknown"
	}
	return BodyLandmarkNames[l]
}

// HandLandmark indexes the 21-point hand layout of the _leftHand and
// _rightHand .btr2d files.
type HandLandmark int

const (
	HandWrist HandLandmark = iota
	HandThumbCMC
	HandThumbMCP
	HandThumbIP
	HandThumbTip
	HandIndexMCP
	HandIndexPIP
	HandIndexDIP
	HandIndexTip
	HandMiddleMCP
	HandMiddlePIP
	HandMiddleDIP
	HandMiddleTip
	HandRingMCP
	HandRingPIP
	HandRingDIP
	HandRingTip
	HandPinkyMCP
	HandPinkyPIP
	HandPinkyDIP
	HandPinkyTip
)

// HandLandmarkNames lists the hand landmarks in file order.
var HandLandmarkNames = [HandLandmarkCount]string{
	"Wrist",
	"Thumb_CMC", "Thumb_MCP", "Thumb_IP", "Thumb_Tip",
	"Index_MCP", "Index_PIP", "Index_DIP", "Index_Tip",
	"Middle_MCP", "Middle_PIP", "Middle_DIP", "Middle_Tip",
	"Ring_MCP", "Ring_PIP", "Ring_DIP", "Ring_Tip",
	"Pinky_MCP", "Pinky_PIP", "Pinky_DIP", "Pinky_Tip",
}

func (l HandLandmark) String() string {
	if l < 0 || int(l) >= HandLandmarkCount {
		return "Unknown"
	}
	return HandLandmarkNames[l]
}
