package actor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/acasal/smartthings2mqtt/internal/core/domain"
	"github.com/acasal/smartthings2mqtt/internal/util/actorutil"
	"github.com/acasal/smartthings2mqtt/pkg/smartthings"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/reugn/go-quartz/logger"
	"go.uber.org/zap"
)

const (
	SMARTTHINGS_ACTOR_ID = "smartthings"

	devicesRequestTimeout = 30 * time.Second
	refreshRequestTimeout = 30 * time.Second
	commandRequestTimeout = 10 * time.Second
)

// SmartThingsActor owns the cloud client. Every request runs as a background
// task with timeout and recover; while one is in flight the actor stacks a
// waiting state and stashes everything else.
type SmartThingsActor struct {
	behavior actor.Behavior
	stash    *actorutil.Stash
	client   smartthings.Client
	logger   *zap.Logger
}

type backgroundTaskResult struct {
	message any
	replyTo *actor.PID
}

func NewSmartThingsActor(client smartthings.Client, logger *zap.Logger) *SmartThingsActor {
	act := &SmartThingsActor{
		client:   client,
		behavior: actor.NewBehavior(),
		stash:    &actorutil.Stash{},
		logger:   actorutil.ActorLogger("smartthings", logger),
	}
	act.behavior.Become(act.DefaultReceive)
	return act
}

func (state *SmartThingsActor) Receive(context actor.Context) {
	state.behavior.Receive(context)
}

func (state *SmartThingsActor) DefaultReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.ActorHealthRequest:
		state.logger.Debug("smartthings@default: ActorHealthRequest")
		ctx.Respond(domain.ActorHealthResponse{
			Id:      SMARTTHINGS_ACTOR_ID,
			Healthy: true,
			State:   "idle",
		})
	case domain.GetDevicesRequest:
		state.logger.Debug("smartthings@default: GetDevicesRequest")
		sender := actorutil.ForRequest(msg).ReplyTo(ctx)

		actorutil.MapBackgroundTask(actorutil.NewBackgroundTask(ctx, state.getDevices),
			mapTaskResult[domain.GetDevicesResponse](sender)).Recover(func(err error) backgroundTaskResult {
			return backgroundTaskResult{
				message: domain.GetDevicesResponse{
					ActorResponseMixIn: domain.ActorResponseMixIn{
						ResponseError: err,
					},
				},
				replyTo: sender,
			}
		}).WithTimeout(devicesRequestTimeout).PipeTo(ctx.Self())
		state.behavior.BecomeStacked(state.WaitingCloud)
	case domain.RefreshStatusesRequest:
		state.logger.Debug("smartthings@default: RefreshStatusesRequest")
		sender := actorutil.ForRequest(msg).ReplyTo(ctx)
		deviceIDs := msg.DeviceIDs

		actorutil.MapBackgroundTask(actorutil.NewBackgroundTask(ctx, func() (*domain.RefreshStatusesResponse, error) {
			return state.refreshStatuses(deviceIDs)
		}),
			mapTaskResult[domain.RefreshStatusesResponse](sender)).Recover(func(err error) backgroundTaskResult {
			return backgroundTaskResult{
				message: domain.RefreshStatusesResponse{
					ActorResponseMixIn: domain.ActorResponseMixIn{
						ResponseError: err,
					},
				},
				replyTo: sender,
			}
		}).WithTimeout(refreshRequestTimeout).PipeTo(ctx.Self())
		state.behavior.BecomeStacked(state.WaitingCloud)
	case domain.ExecuteDeviceCommandRequest:
		state.logger.Debug("smartthings@default: ExecuteDeviceCommandRequest",
			zap.String("device", msg.Command.DeviceID),
			zap.String("capability", string(msg.Command.Capability)),
			zap.String("command", string(msg.Command.Command)))
		sender := actorutil.ForRequest(msg).ReplyTo(ctx)
		command := msg.Command

		actorutil.MapBackgroundTask(actorutil.NewBackgroundTask(ctx, func() (*domain.ExecuteDeviceCommandResponse, error) {
			return state.executeCommand(command)
		}),
			mapTaskResult[domain.ExecuteDeviceCommandResponse](sender)).Recover(func(err error) backgroundTaskResult {
			return backgroundTaskResult{
				message: domain.ExecuteDeviceCommandResponse{
					ActorResponseMixIn: domain.ActorResponseMixIn{
						ResponseError: err,
					},
				},
				replyTo: sender,
			}
		}).WithTimeout(commandRequestTimeout).PipeTo(ctx.Self())
		state.behavior.BecomeStacked(state.WaitingCloud)
	default:
		state.logger.Debug("smartthings@default default recv", zap.String("type", fmt.Sprintf("%T", msg)))
	}
}

func (state *SmartThingsActor) WaitingCloud(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case backgroundTaskResult:
		state.logger.Debug("smartthings@waitingCloud backgroundTaskResult", zap.String("type", fmt.Sprintf("%T", msg.message)))
		ctx.Send(msg.replyTo, msg.message)
		state.behavior.UnbecomeStacked()
		state.stash.UnstashAll(ctx)
	default:
		state.logger.Debug("smartthings@waitingCloud stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

// getDevices lists the fleet and pairs every record with a status snapshot.
func (a *SmartThingsActor) getDevices() (*domain.GetDevicesResponse, error) {
	bctx := context.Background()
	infos, err := a.client.Devices(bctx)
	if err != nil {
		logger.Error(err)
		return nil, err
	}
	devices := make([]*smartthings.FullDevice, 0, len(infos))
	for _, info := range infos {
		status, err := a.client.DeviceStatus(bctx, info.DeviceID)
		if err != nil {
			logger.Error(err)
			return nil, err
		}
		devices = append(devices, &smartthings.FullDevice{Info: info, Status: status})
	}
	return &domain.GetDevicesResponse{Devices: devices}, nil
}

func (a *SmartThingsActor) refreshStatuses(deviceIDs []string) (*domain.RefreshStatusesResponse, error) {
	bctx := context.Background()
	statuses := make(map[string]smartthings.DeviceStatus, len(deviceIDs))
	for _, id := range deviceIDs {
		status, err := a.client.DeviceStatus(bctx, id)
		if err != nil {
			logger.Error(err)
			return nil, err
		}
		statuses[id] = status
	}
	return &domain.RefreshStatusesResponse{Statuses: statuses}, nil
}

// executeCommand sends one command. Vendor rejections are summarized in the
// response; they never come back as an error and are never retried.
func (a *SmartThingsActor) executeCommand(cmd smartthings.DeviceCommand) (*domain.ExecuteDeviceCommandResponse, error) {
	err := a.client.ExecuteCommand(context.Background(), cmd)
	if err != nil {
		var cmdErr *smartthings.CommandError
		if errors.As(err, &cmdErr) {
			return &domain.ExecuteDeviceCommandResponse{Rejected: cmdErr.Summary()}, nil
		}
		logger.Error(err)
		return nil, err
	}
	return &domain.ExecuteDeviceCommandResponse{}, nil
}

func mapTaskResult[T any](sender *actor.PID) func(t *T) *backgroundTaskResult {
	return func(t *T) *backgroundTaskResult {
		return &backgroundTaskResult{
			message: *t,
			replyTo: sender,
		}
	}
}
