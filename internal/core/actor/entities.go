package actor

import (
	"fmt"
	"time"

	"github.com/acasal/smartthings2mqtt/internal/config"
	"github.com/acasal/smartthings2mqtt/internal/core/domain"
	"github.com/acasal/smartthings2mqtt/internal/core/entity"
	"github.com/acasal/smartthings2mqtt/internal/util/actorutil"
	"github.com/acasal/smartthings2mqtt/pkg/smartthings"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/asynkron/protoactor-go/scheduler"
	"go.uber.org/zap"
)

const (
	devicesBootTimeout    = 35 * time.Second
	refreshReplyTimeout   = 35 * time.Second
	commandReplyTimeout   = 15 * time.Second
	commandSettleInterval = 1500 * time.Millisecond
)

// EntitiesActor owns the device snapshots and the entity registry built from
// them. It polls the cloud actor for fresh statuses, applies them to the
// shared snapshots and pushes the resulting entity updates to the MQTT actor.
// Entity commands are routed through the registry and forwarded as vendor
// commands.
type EntitiesActor struct {
	behavior  actor.Behavior
	stash     *actorutil.Stash
	scheduler *scheduler.TimerScheduler

	config           *config.Config
	smartthingsActor *actor.PID
	mqttActor        *actor.PID

	devices  []*smartthings.FullDevice
	byId     map[string]*smartthings.FullDevice
	registry *entity.Registry

	logger *zap.Logger
}

type entitiesTick struct {
}

// refreshDevice re-polls a single device shortly after a command, so the
// authoritative state lands without waiting for the next full tick.
type refreshDevice struct {
	deviceID string
}

func NewEntitiesActor(config *config.Config, smartthingsActor *actor.PID, mqttActor *actor.PID, logger *zap.Logger) *EntitiesActor {
	act := &EntitiesActor{
		config:           config,
		smartthingsActor: smartthingsActor,
		mqttActor:        mqttActor,
		behavior:         actor.NewBehavior(),
		stash:            &actorutil.Stash{},
		logger:           actorutil.ActorLogger(domain.ACTOR_ID_ENTITIES, logger),
	}
	act.behavior.Become(act.StartingReceive)
	return act
}

func (state *EntitiesActor) Receive(context actor.Context) {
	state.behavior.Receive(context)
}

func (state *EntitiesActor) StartingReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Started:
		state.logger.Debug("entities@starting started")

		actorutil.PipeToSelfWithRecover(ctx, ctx.RequestFuture(state.smartthingsActor, domain.GetDevicesRequest{}, devicesBootTimeout), func(err error) any {
			return domain.GetDevicesResponse{
				ActorResponseMixIn: domain.ActorResponseMixIn{
					ResponseError: err,
				},
			}
		})
		state.behavior.Become(state.WaitingDevicesReceive)
	case *actor.Restarting:
	default:
		state.logger.Debug("entities@starting: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *EntitiesActor) WaitingDevicesReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.GetDevicesResponse:
		if msg.HasResponseError() {
			// without the fleet there is nothing to map. Let the supervisor
			// restart us and retry the boot sequence.
			panic(msg.GetResponseError())
		}
		state.logger.Debug("entities@waitingDevices GetDevicesResponse", zap.Int("devices", len(msg.Devices)))

		state.devices = msg.Devices
		state.byId = make(map[string]*smartthings.FullDevice, len(msg.Devices))
		for _, d := range msg.Devices {
			state.byId[d.Info.DeviceID] = d
		}
		bridge := entity.BridgeDevice(state.config.MQTT.BaseTopic)
		state.registry = entity.BuildRegistry(bridge.Id, msg.Devices)
		state.logger.Info("entity registry built",
			zap.Int("devices", len(state.devices)),
			zap.Int("entities", len(state.registry.Entities())))

		state.publishEntityStates(ctx)

		state.scheduler = scheduler.NewTimerScheduler(ctx)
		if state.config.SmartThings.PollIntervalMillis > 0 {
			state.scheduler.RequestOnce(time.Duration(state.config.SmartThings.PollIntervalMillis)*time.Millisecond, ctx.Self(), entitiesTick{})
		}

		state.behavior.Become(state.DefaultReceive)
		state.stash.UnstashAll(ctx)
	default:
		state.logger.Debug("entities@waitingDevices: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *EntitiesActor) DefaultReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.ActorHealthRequest:
		state.logger.Debug("entities@default: ActorHealthRequest")
		ctx.Respond(domain.ActorHealthResponse{
			Id:      domain.ACTOR_ID_ENTITIES,
			Healthy: true,
			State:   "idle",
		})
	case domain.GetDiscoveryRequest:
		state.logger.Debug("entities@default: GetDiscoveryRequest")
		ctx.Respond(domain.GetDiscoveryResponse{
			Discovery: state.registry.Discovery(),
		})
	case entitiesTick:
		state.logger.Debug("entities@default tick")
		state.requestRefresh(ctx, state.deviceIDs())
		// schedule next tick
		state.scheduler.RequestOnce(time.Duration(state.config.SmartThings.PollIntervalMillis)*time.Millisecond, ctx.Self(), entitiesTick{})
		state.behavior.BecomeStacked(state.WaitingRefreshReceive)
	case refreshDevice:
		state.logger.Debug("entities@default refreshDevice", zap.String("device", msg.deviceID))
		state.requestRefresh(ctx, []string{msg.deviceID})
		state.behavior.BecomeStacked(state.WaitingRefreshReceive)
	case domain.ExecuteDeviceCommandResponse:
		if msg.HasResponseError() {
			state.logger.Error("entities@default command failed", zap.Error(msg.GetResponseError()))
		} else if msg.Rejected != "" {
			state.logger.Warn("entities@default command rejected by cloud", zap.String("reason", msg.Rejected))
		}
	case domain.EntityCommandRequest:
		state.handleEntityCommand(ctx, msg)
	default:
		state.logger.Debug("entities@default: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *EntitiesActor) WaitingRefreshReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.RefreshStatusesResponse:
		if msg.HasResponseError() {
			state.logger.Error("entities@waitingRefresh RefreshStatusesResponse error", zap.Error(msg.GetResponseError()))
			state.behavior.UnbecomeStacked()
			state.stash.UnstashAll(ctx)
			return
		}
		state.logger.Debug("entities@waitingRefresh RefreshStatusesResponse", zap.Int("statuses", len(msg.Statuses)))
		for id, status := range msg.Statuses {
			if device, ok := state.byId[id]; ok {
				device.Status = status
			}
		}
		state.publishEntityStates(ctx)
		state.behavior.UnbecomeStacked()
		state.stash.UnstashAll(ctx)
	default:
		state.logger.Debug("entities@waitingRefresh: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *EntitiesActor) requestRefresh(ctx actor.Context, deviceIDs []string) {
	actorutil.PipeToSelfWithRecover(ctx, ctx.RequestFuture(state.smartthingsActor, domain.RefreshStatusesRequest{DeviceIDs: deviceIDs}, refreshReplyTimeout), func(err error) any {
		return domain.RefreshStatusesResponse{
			ActorResponseMixIn: domain.ActorResponseMixIn{
				ResponseError: err,
			},
		}
	})
}

func (state *EntitiesActor) handleEntityCommand(ctx actor.Context, req domain.EntityCommandRequest) {
	commands := state.registry.Commands(req)
	if len(commands) == 0 {
		state.logger.Debug("entities@default command dropped",
			zap.String("entity", req.TargetEntityId()),
			zap.String("type", fmt.Sprintf("%T", req)))
		return
	}
	for _, cmd := range commands {
		state.logger.Debug("entities@default command",
			zap.String("device", cmd.DeviceID),
			zap.String("capability", string(cmd.Capability)),
			zap.String("command", string(cmd.Command)))
		actorutil.PipeToSelfWithRecover(ctx, ctx.RequestFuture(state.smartthingsActor, domain.ExecuteDeviceCommandRequest{Command: *cmd}, commandReplyTimeout), func(err error) any {
			return domain.ExecuteDeviceCommandResponse{
				ActorResponseMixIn: domain.ActorResponseMixIn{
					ResponseError: err,
				},
			}
		})
	}
	state.scheduler.RequestOnce(commandSettleInterval, ctx.Self(), refreshDevice{deviceID: commands[0].DeviceID})
}

func (state *EntitiesActor) publishEntityStates(ctx actor.Context) {
	for _, e := range state.registry.Entities() {
		ev := e.UpdateEvent()
		if ev == nil {
			continue
		}
		ctx.Send(state.mqttActor, domain.PublishEntityUpdateRequest{Event: ev})
	}
}

func (state *EntitiesActor) deviceIDs() []string {
	ids := make([]string, 0, len(state.devices))
	for _, d := range state.devices {
		ids = append(ids, d.Info.DeviceID)
	}
	return ids
}
