package state

import (
	"math"
	"time"

	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// These are physical timestamps, so skew arithmetic saturates at the
// representable range instead of wrapping.
var (
	timeMax = time.Unix(math.MaxInt64/int64(time.Second), 0).UTC()
	timeMin = time.Unix(math.MinInt64/int64(time.Second), 0).UTC()
)

// CorrectTimestamp converts a robot-clock instant into the consumer clock by
// adding the estimated skew. A nil raw timestamp is treated as the zero wire
// value (the Unix epoch). Skew is constant for one translation call, but each
// substructure carries its own raw instant, so this is applied per
// substructure rather than once per snapshot.
func CorrectTimestamp(raw *timestamppb.Timestamp, skew time.Duration) time.Time {
	t := raw.AsTime()
	corrected := t.Add(skew)
	if skew > 0 && (corrected.Before(t) || corrected.After(timeMax)) {
		return timeMax
	}
	if skew < 0 && (corrected.After(t) || corrected.Before(timeMin)) {
		return timeMin
	}
	return corrected
}

// SkewFromProto converts a wire-format clock skew into a duration.
func SkewFromProto(skew *durationpb.Duration) time.Duration {
	return skew.AsDuration()
}
