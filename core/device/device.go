// Package device holds the value types the engine reports for touches,
// motion sensors, location and text composition.
package device

import "github.com/go-gl/mathgl/mgl64"

type TouchPhase int

const (
	TouchBegan TouchPhase = iota
	TouchMoved
	TouchStationary
	TouchEnded
	TouchCanceled
)

func (p TouchPhase) String() string {
	switch p {
	case TouchBegan:
		return "Began"
	case TouchMoved:
		return "Moved"
	case TouchStationary:
		return "Stationary"
	case TouchEnded:
		return "Ended"
	case TouchCanceled:
		return "Canceled"
	default:
		return "Unknown"
	}
}

type TouchType int

const (
	TouchDirect TouchType = iota
	TouchIndirect
	TouchStylus
)

// Touch is the state of one finger for the current tick. Positions are in
// screen pixels with the origin at the top left.
type Touch struct {
	FingerID                int
	Position                mgl64.Vec2
	RawPosition             mgl64.Vec2
	DeltaPosition           mgl64.Vec2
	DeltaTime               float64
	TapCount                int
	Phase                   TouchPhase
	Type                    TouchType
	Pressure                float64
	MaximumPossiblePressure float64
}

// AccelerationEvent is one accelerometer sample, in g.
type AccelerationEvent struct {
	Acceleration mgl64.Vec3
	DeltaTime    float64
}

type DeviceOrientation int

const (
	OrientationUnknown DeviceOrientation = iota
	OrientationPortrait
	OrientationPortraitUpsideDown
	OrientationLandscapeLeft
	OrientationLandscapeRight
	OrientationFaceUp
	OrientationFaceDown
)

func (o DeviceOrientation) String() string {
	switch o {
	case OrientationPortrait:
		return "Portrait"
	case OrientationPortraitUpsideDown:
		return "PortraitUpsideDown"
	case OrientationLandscapeLeft:
		return "LandscapeLeft"
	case OrientationLandscapeRight:
		return "LandscapeRight"
	case OrientationFaceUp:
		return "FaceUp"
	case OrientationFaceDown:
		return "FaceDown"
	default:
		return "Unknown"
	}
}

// IMECompositionMode controls whether an IME composition session is open.
type IMECompositionMode int

const (
	IMEAuto IMECompositionMode = iota
	IMEOn
	IMEOff
)

func (m IMECompositionMode) String() string {
	switch m {
	case IMEAuto:
		return "Auto"
	case IMEOn:
		return "On"
	case IMEOff:
		return "Off"
	default:
		return "Unknown"
	}
}

type LocationServiceStatus int

const (
	LocationStopped LocationServiceStatus = iota
	LocationInitializing
	LocationRunning
	LocationFailed
)

type LocationInfo struct {
	Latitude           float64
	Longitude          float64
	Altitude           float64
	HorizontalAccuracy float64
	VerticalAccuracy   float64
	Timestamp          float64
}

// LocationService is the handle for the device location provider.
type LocationService struct {
	IsEnabledByUser bool
	Status          LocationServiceStatus
	LastData        LocationInfo
}

// Start asks the provider for updates. Without user permission the service
// fails immediately.
func (s *LocationService) Start(desiredAccuracyInMeters, updateDistanceInMeters float64) {
	if !s.IsEnabledByUser {
		s.Status = LocationFailed
		return
	}
	s.Status = LocationRunning
}

func (s *LocationService) Stop() { s.Status = LocationStopped }

type Compass struct {
	Enabled         bool
	MagneticHeading float64
	TrueHeading     float64
	HeadingAccuracy float64
	RawVector       mgl64.Vec3
	Timestamp       float64
}

type Gyroscope struct {
	Enabled              bool
	Attitude             mgl64.Quat
	RotationRate         mgl64.Vec3
	RotationRateUnbiased mgl64.Vec3
	Gravity              mgl64.Vec3
	UserAcceleration     mgl64.Vec3
	UpdateInterval       float64
}
