package state

import (
	"time"

	"github.com/strideworks/quadstate/telemetry"
)

// batteryStates maps each raw battery reading into a normalized record. A nil
// result means the battery substructure was absent from the snapshot.
func batteryStates(snap *telemetry.Snapshot, skew time.Duration) []BatteryState {
	if snap.Batteries == nil {
		return nil
	}
	out := make([]BatteryState, 0, len(snap.Batteries))
	for _, battery := range snap.Batteries {
		out = append(out, BatteryState{
			Timestamp:        CorrectTimestamp(battery.Timestamp, skew),
			Identifier:       battery.Identifier,
			ChargePercentage: battery.ChargePercentage,
			EstimatedRuntime: battery.EstimatedRuntime.AsDuration(),
			Current:          battery.Current,
			Voltage:          battery.Voltage,
			Temperatures:     append([]float64(nil), battery.Temperatures...),
			Status:           battery.Status,
		})
	}
	return out
}

// wifiState scans the comms substructure for Wi-Fi channels. When multiple
// channels report Wi-Fi the last one wins. A nil result means no Wi-Fi state
// was reported.
func wifiState(snap *telemetry.Snapshot) *WiFiState {
	var out *WiFiState
	for _, comms := range snap.Comms {
		if comms.WiFi == nil {
			continue
		}
		out = &WiFiState{
			CurrentMode: comms.WiFi.CurrentMode,
			ESSID:       comms.WiFi.ESSID,
		}
	}
	return out
}

// footStates maps each raw foot reading into a normalized record. Feet carry
// no timestamp of their own.
func footStates(snap *telemetry.Snapshot) []FootState {
	if snap.Feet == nil {
		return nil
	}
	out := make([]FootState, 0, len(snap.Feet))
	for _, foot := range snap.Feet {
		out = append(out, FootState{
			PositionRTBody: foot.PositionRTBody,
			Contact:        foot.Contact,
		})
	}
	return out
}

// estopStates maps each raw e-stop reading into a normalized record.
func estopStates(snap *telemetry.Snapshot, skew time.Duration) []EStopState {
	if snap.EStops == nil {
		return nil
	}
	out := make([]EStopState, 0, len(snap.EStops))
	for _, estop := range snap.EStops {
		out = append(out, EStopState{
			Timestamp:        CorrectTimestamp(estop.Timestamp, skew),
			Name:             estop.Name,
			Type:             estop.Type,
			State:            estop.State,
			StateDescription: estop.StateDescription,
		})
	}
	return out
}

// powerState normalizes the power substructure when present.
func powerState(snap *telemetry.Snapshot, skew time.Duration) *PowerState {
	power := snap.Power
	if power == nil {
		return nil
	}
	return &PowerState{
		Timestamp:                  CorrectTimestamp(power.Timestamp, skew),
		MotorPowerState:            power.MotorPowerState,
		ShorePowerState:            power.ShorePowerState,
		LocomotionChargePercentage: power.LocomotionChargePercentage,
		LocomotionEstimatedRuntime: power.LocomotionEstimatedRuntime.AsDuration(),
	}
}

// systemFaultState normalizes active and historical system faults when the
// substructure is present.
func systemFaultState(snap *telemetry.Snapshot, skew time.Duration) *SystemFaultState {
	faultState := snap.SystemFaults
	if faultState == nil {
		return nil
	}
	normalize := func(faults []telemetry.SystemFault) []SystemFault {
		out := make([]SystemFault, 0, len(faults))
		for _, fault := range faults {
			out = append(out, SystemFault{
				Timestamp:    CorrectTimestamp(fault.OnsetTimestamp, skew),
				Name:         fault.Name,
				Duration:     fault.Duration.AsDuration(),
				Code:         fault.Code,
				UID:          fault.UID,
				ErrorMessage: fault.ErrorMessage,
				Attributes:   append([]string(nil), fault.Attributes...),
				Severity:     fault.Severity,
			})
		}
		return out
	}
	return &SystemFaultState{
		Faults:           normalize(faultState.Faults),
		HistoricalFaults: normalize(faultState.HistoricalFaults),
	}
}

// behaviorFaultState normalizes behavior faults when the substructure is
// present.
func behaviorFaultState(snap *telemetry.Snapshot, skew time.Duration) *BehaviorFaultState {
	faultState := snap.BehaviorFaults
	if faultState == nil {
		return nil
	}
	out := &BehaviorFaultState{Faults: make([]BehaviorFault, 0, len(faultState.Faults))}
	for _, fault := range faultState.Faults {
		out.Faults = append(out.Faults, BehaviorFault{
			Timestamp: CorrectTimestamp(fault.OnsetTimestamp, skew),
			ID:        fault.BehaviorFaultID,
			Cause:     fault.Cause,
			Status:    fault.Status,
		})
	}
	return out
}
