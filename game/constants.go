package game

const (
	// TicksPerSecond is the fixed simulation rate; one tick is 50ms.
	TicksPerSecond = float32(20.0)

	NormalGravity       = float32(0.08)
	VerticalDrag        = float32(0.98)
	AirFriction         = float32(0.91)
	DefaultSlipperiness = float32(0.6)

	JumpMotion      = float32(0.42)
	SprintJumpBoost = float32(0.2)

	WalkSpeed        = float32(0.1)
	SprintMultiplier = float32(1.3)
	AirAcceleration  = float32(0.02)
	SneakMultiplier  = float32(0.3)

	// (DefaultSlipperiness * AirFriction)^3; on default ground the move-relative
	// scalar works out to exactly WalkSpeed.
	GroundAccelerationBase = float32(0.16277136)

	WaterGravity       = float32(0.02)
	WaterDrag          = float32(0.8)
	WaterSurfaceAssist = float32(0.3)
	SwimUpAcceleration = float32(0.04)
	WaterMoveSpeed     = float32(0.02)

	FlyVerticalAccelMultiplier = float32(3.0)
	FlyHorizontalDamping       = float32(0.91)
	FlyVerticalDamping         = float32(0.6)
	FlySprintMultiplier        = float32(2.0)
	DefaultFlySpeed            = float32(0.05)

	PlayerHalfWidth = float32(0.3)
	PlayerHeight    = float32(1.8)
	StepHeight      = float32(0.6)

	// Offsets along the vertical player profile sampled for liquid checks.
	LiquidProbeFeet = float32(0.2)
	LiquidProbeMid  = float32(0.9)
	LiquidProbeHead = float32(1.4)
)
