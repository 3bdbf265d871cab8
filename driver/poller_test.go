package driver

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.viam.com/test"

	"github.com/strideworks/quadstate/driver/fake"
	"github.com/strideworks/quadstate/state"
	"github.com/strideworks/quadstate/telemetry"
)

type failingSource struct{}

func (failingSource) Snapshot(ctx context.Context) (*telemetry.Snapshot, error) {
	return nil, errors.New("transport closed")
}

type failingTimeSync struct{}

func (failingTimeSync) ClockSkew(ctx context.Context) (time.Duration, error) {
	return 0, errors.New("no sync established")
}

type channelPublisher struct {
	states chan *state.RobotState
}

func (p *channelPublisher) PublishRobotState(ctx context.Context, robotState *state.RobotState) error {
	p.states <- robotState
	return nil
}

func TestNewPollerValidation(t *testing.T) {
	logger := golog.NewTestLogger(t)

	_, err := NewPoller(Config{TimeSync: &fake.TimeSync{}, Publisher: &fake.Publisher{}}, logger)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = NewPoller(Config{Source: fake.NewSource(), Publisher: &fake.Publisher{}}, logger)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = NewPoller(Config{Source: fake.NewSource(), TimeSync: &fake.TimeSync{}}, logger)
	test.That(t, err, test.ShouldNotBeNil)

	poller, err := NewPoller(Config{
		Source:    fake.NewSource(),
		TimeSync:  &fake.TimeSync{},
		Publisher: &fake.Publisher{},
	}, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, poller.Close(), test.ShouldBeNil)
}

func TestPollerFrameQualification(t *testing.T) {
	logger := golog.NewTestLogger(t)

	poller, err := NewPoller(Config{
		Source:             fake.NewSource(),
		TimeSync:           &fake.TimeSync{},
		Publisher:          &fake.Publisher{},
		RobotName:          "opal",
		InverseTargetFrame: "body",
	}, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, poller.opts.FramePrefix, test.ShouldEqual, "opal/")
	test.That(t, poller.opts.InverseTargetFrame, test.ShouldEqual, "opal/body")

	// A target that already carries a namespace is taken verbatim.
	poller, err = NewPoller(Config{
		Source:             fake.NewSource(),
		TimeSync:           &fake.TimeSync{},
		Publisher:          &fake.Publisher{},
		RobotName:          "opal",
		InverseTargetFrame: "other/body",
	}, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, poller.opts.InverseTargetFrame, test.ShouldEqual, "other/body")
}

func TestPollerPublishesOnTick(t *testing.T) {
	logger := golog.NewTestLogger(t)
	mockClock := clock.NewMock()
	publisher := &channelPublisher{states: make(chan *state.RobotState, 1)}

	poller, err := NewPoller(Config{
		Source:    fake.NewSource(),
		TimeSync:  &fake.TimeSync{Skew: 2 * time.Second},
		Publisher: publisher,
		RobotName: "opal",
		Clock:     mockClock,
	}, logger)
	test.That(t, err, test.ShouldBeNil)

	poller.Start(context.Background())
	mockClock.Add(defaultPollPeriod)

	var robotState *state.RobotState
	select {
	case robotState = <-publisher.states:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a published state")
	}

	test.That(t, robotState.Joints, test.ShouldNotBeNil)
	test.That(t, len(robotState.Joints.Names), test.ShouldEqual, 12)
	test.That(t, robotState.Joints.Names[0], test.ShouldEqual, "opal/front_left_hip_x")
	test.That(t, robotState.WiFi, test.ShouldNotBeNil)
	test.That(t, robotState.Odometry, test.ShouldNotBeNil)
	test.That(t, robotState.Odometry.FrameID, test.ShouldEqual, "opal/odom")

	test.That(t, poller.Close(), test.ShouldBeNil)
}

func TestPollOnceUpstreamFailures(t *testing.T) {
	logger := golog.NewTestLogger(t)

	poller, err := NewPoller(Config{
		Source:    failingSource{},
		TimeSync:  &fake.TimeSync{},
		Publisher: &fake.Publisher{},
	}, logger)
	test.That(t, err, test.ShouldBeNil)
	err = poller.pollOnce(context.Background())
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "failed to get robot state")

	poller, err = NewPoller(Config{
		Source:    fake.NewSource(),
		TimeSync:  failingTimeSync{},
		Publisher: &fake.Publisher{},
	}, logger)
	test.That(t, err, test.ShouldBeNil)
	err = poller.pollOnce(context.Background())
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "failed to get latest clock skew")
}

func TestPollOncePublishes(t *testing.T) {
	logger := golog.NewTestLogger(t)
	publisher := &fake.Publisher{}

	poller, err := NewPoller(Config{
		Source:    fake.NewSource(),
		TimeSync:  &fake.TimeSync{Skew: time.Second},
		Publisher: publisher,
	}, logger)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, poller.pollOnce(context.Background()), test.ShouldBeNil)
	robotState := publisher.Last()
	test.That(t, robotState, test.ShouldNotBeNil)
	test.That(t, len(robotState.Batteries), test.ShouldEqual, 1)
	test.That(t, robotState.Batteries[0].Identifier, test.ShouldEqual, "bat0")
	test.That(t, robotState.EndEffectorForce, test.ShouldNotBeNil)
}
