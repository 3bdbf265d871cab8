// Package main contains a command to watch a robot's normalized state,
// polling the fake snapshot source and logging each translated aggregate.
package main

import (
	"context"
	"time"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.viam.com/utils"

	"github.com/strideworks/quadstate/driver"
	"github.com/strideworks/quadstate/driver/fake"
	"github.com/strideworks/quadstate/state"
)

var logger = golog.NewDevelopmentLogger("statewatcher")

func main() {
	utils.ContextualMain(mainWithArgs, logger)
}

// Arguments for the command.
type Arguments struct {
	RobotName     string        `flag:"robot-name,default=,usage=namespace for frames and joint names"`
	InverseTarget string        `flag:"inverse-target,default=body,usage=frame to re-parent in the emitted transform tree"`
	OdometryFrame string        `flag:"odometry-frame,default=odom,usage=world anchor for odometry (odom or vision)"`
	PollPeriod    time.Duration `flag:"poll-period,default=1s,usage=how often to fetch and translate"`
	Skew          time.Duration `flag:"skew,default=2s,usage=simulated robot clock skew"`
}

func mainWithArgs(ctx context.Context, args []string, logger golog.Logger) error {
	var argsParsed Arguments
	if err := utils.ParseFlags(args, &argsParsed); err != nil {
		return err
	}

	odometryFrame := state.OdometryFrame(argsParsed.OdometryFrame)
	if odometryFrame != state.OdometryFrameOdom && odometryFrame != state.OdometryFrameVision {
		return errors.Errorf("unsupported odometry frame %q", argsParsed.OdometryFrame)
	}

	poller, err := driver.NewPoller(driver.Config{
		Source:             fake.NewSource(),
		TimeSync:           &fake.TimeSync{Skew: argsParsed.Skew},
		Publisher:          &logPublisher{logger},
		RobotName:          argsParsed.RobotName,
		InverseTargetFrame: argsParsed.InverseTarget,
		OdometryFrame:      odometryFrame,
		PollPeriod:         argsParsed.PollPeriod,
	}, logger)
	if err != nil {
		return err
	}
	defer func() {
		utils.UncheckedError(poller.Close())
	}()

	poller.Start(ctx)
	<-ctx.Done()
	return nil
}

type logPublisher struct {
	logger golog.Logger
}

func (p *logPublisher) PublishRobotState(ctx context.Context, robotState *state.RobotState) error {
	jointCount := 0
	if robotState.Joints != nil {
		jointCount = len(robotState.Joints.Names)
	}
	p.logger.Infow("robot state",
		"batteries", len(robotState.Batteries),
		"joint_count", jointCount,
		"transform_count", len(robotState.Transforms),
	)
	if robotState.Odometry != nil {
		p.logger.Infow("odometry",
			"frame", robotState.Odometry.FrameID,
			"position", robotState.Odometry.Pose.Position,
		)
	}
	return nil
}
