package game

const (
	// DefaultBallRadius is the radius of a standard 1 1/16" ball in table units.
	DefaultBallRadius = float32(25)
	// DefaultBallMass is the mass of a standard ball.
	DefaultBallMass = float32(1)

	// DefaultGravityY and DefaultGravityZ are the playfield-relative gravity in table units per ms², slope
	// already applied.
	DefaultGravityY = float32(0.0009)
	DefaultGravityZ = float32(-0.0017)

	// ContactTolerance is the distance under which a ball is considered to be touching a collider.
	ContactTolerance = float32(0.01)
	// RestingSpeed is the approaching speed under which a contact only cancels the approach, without bounce or
	// friction. It lies above the speed gravity adds to a ball resting on the playfield in one tick.
	RestingSpeed = float32(0.05)
	// MaxSubSteps bounds the number of collision sub-steps within a single tick.
	MaxSubSteps = 64

	DefaultElasticity = float32(0.3)
	DefaultFriction   = float32(0.3)

	// DropTargetLimit is the distance a drop target travels below the playfield when it falls.
	DropTargetLimit = float32(52)
	// SkirtTilt is the tilt in degrees applied to a bumper skirt on hit.
	SkirtTilt = float32(3)
	// SkirtDuration is how long, in ms, a bumper skirt stays tilted after a hit.
	SkirtDuration = uint32(160)
	// KickerMeshSegments is the number of vertices in a kicker's derived hole mesh.
	KickerMeshSegments = 16
)
