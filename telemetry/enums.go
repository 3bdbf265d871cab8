package telemetry

// BatteryStatus describes the charge cycle state of one battery.
type BatteryStatus int32

// Battery statuses.
const (
	BatteryStatusUnknown BatteryStatus = iota
	BatteryStatusMissing
	BatteryStatusCharging
	BatteryStatusDischarging
	BatteryStatusBooting
)

// WiFiMode describes how the robot's Wi-Fi radio is operating.
type WiFiMode int32

// Wi-Fi modes.
const (
	WiFiModeUnknown WiFiMode = iota
	WiFiModeAccessPoint
	WiFiModeClient
)

// ContactState describes whether a foot is touching the ground.
type ContactState int32

// Foot contact states.
const (
	ContactUnknown ContactState = iota
	ContactMade
	ContactLost
)

// EStopType describes what kind of endpoint an emergency stop is.
type EStopType int32

// E-stop endpoint types.
const (
	EStopTypeUnknown EStopType = iota
	EStopTypeHardware
	EStopTypeSoftware
)

// EStopCondition describes whether an emergency stop is asserted.
type EStopCondition int32

// E-stop conditions.
const (
	EStopConditionUnknown EStopCondition = iota
	EStopConditionEStopped
	EStopConditionNotEStopped
)

// MotorPowerState describes the motor power rail.
type MotorPowerState int32

// Motor power states.
const (
	MotorPowerStateUnknown MotorPowerState = iota
	MotorPowerStateOff
	MotorPowerStateOn
	MotorPowerStatePoweringOn
	MotorPowerStatePoweringOff
	MotorPowerStateError
)

// ShorePowerState describes whether the robot is drawing shore power.
type ShorePowerState int32

// Shore power states.
const (
	ShorePowerStateUnknown ShorePowerState = iota
	ShorePowerStateOn
	ShorePowerStateOff
)

// FaultSeverity describes how severe a system fault is.
type FaultSeverity int32

// System fault severities.
const (
	FaultSeverityUnknown FaultSeverity = iota
	FaultSeverityInfo
	FaultSeverityWarn
	FaultSeverityCritical
)

// StowState describes whether the arm is stowed.
type StowState int32

// Arm stow states.
const (
	StowStateUnknown StowState = iota
	StowStateStowed
	StowStateDeployed
)

// CarryState describes whether a held item may be carried while moving.
type CarryState int32

// Gripper carry states.
const (
	CarryStateUnknown CarryState = iota
	CarryStateNotCarriable
	CarryStateCarriable
	CarryStateCarriableAndStowable
)

// BehaviorFaultCause describes why a behavior fault was raised.
type BehaviorFaultCause int32

// Behavior fault causes.
const (
	BehaviorFaultCauseUnknown BehaviorFaultCause = iota
	BehaviorFaultCauseFall
	BehaviorFaultCauseHardware
	BehaviorFaultCauseLeaseTimeout
)

// BehaviorFaultStatus describes whether a behavior fault can be cleared.
type BehaviorFaultStatus int32

// Behavior fault statuses.
const (
	BehaviorFaultStatusUnknown BehaviorFaultStatus = iota
	BehaviorFaultStatusClearable
	BehaviorFaultStatusUnclearable
)
