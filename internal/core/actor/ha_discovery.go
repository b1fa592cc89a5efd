package actor

import (
	"errors"
	"fmt"
	"time"

	"github.com/acasal/smartthings2mqtt/internal/config"
	"github.com/acasal/smartthings2mqtt/internal/core/domain"
	"github.com/acasal/smartthings2mqtt/internal/core/entity"
	"github.com/acasal/smartthings2mqtt/internal/util/actorutil"

	"github.com/asynkron/protoactor-go/actor"
	"go.uber.org/zap"
)

const (
	HADISCOVERY_ACTOR_ID = "hadiscovery"
)

// HADiscoveryActor waits until the entities and MQTT actors are healthy,
// asks the entities actor for the registry description and publishes it as
// Home Assistant discovery config, bridge device included. One shot.
type HADiscoveryActor struct {
	config               *config.Config
	behavior             actor.Behavior
	stash                *actorutil.Stash
	entitiesActor        *actor.PID
	mqttActor            *actor.PID
	entitiesActorHealthy bool
	mqttActorHealthy     bool
	healthyRecv          int

	logger *zap.Logger
}

func NewHADiscoveryActor(config *config.Config, entitiesActor *actor.PID, mqttActor *actor.PID, logger *zap.Logger) *HADiscoveryActor {
	act := &HADiscoveryActor{
		config:        config,
		entitiesActor: entitiesActor,
		mqttActor:     mqttActor,
		behavior:      actor.NewBehavior(),
		stash:         &actorutil.Stash{},
		logger:        actorutil.ActorLogger(domain.ACTOR_ID_HA_DISCOVERY, logger),
	}
	act.behavior.Become(act.StartingReceive)
	return act
}

func (state *HADiscoveryActor) Receive(context actor.Context) {
	state.behavior.Receive(context)
}

func (state *HADiscoveryActor) StartingReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Started:
		state.logger.Debug("hadiscovery@starting started")

		// Check Entities and MQTT actor healthy. The entities actor boots by
		// fetching the whole fleet, so the deadline is generous.
		state.healthyRecv = 0
		state.entitiesActorHealthy = false
		state.mqttActorHealthy = false
		// Entities Actor Request
		actorutil.PipeToSelfWithRecover(ctx, ctx.RequestFuture(state.entitiesActor, domain.ActorHealthRequest{}, 60*time.Second), func(err error) any {
			return domain.ActorHealthResponse{
				Id:      domain.ACTOR_ID_ENTITIES,
				Healthy: false,
			}
		})
		// MQTT Actor Request
		actorutil.PipeToSelfWithRecover(ctx, ctx.RequestFuture(state.mqttActor, domain.ActorHealthRequest{}, 60*time.Second), func(err error) any {
			return domain.ActorHealthResponse{
				Id:      domain.ACTOR_ID_MQTT,
				Healthy: false,
			}
		})
		state.behavior.Become(state.WaitingHealthyReceive)
	case *actor.Restarting:
	default:
		state.logger.Debug("hadiscovery@starting: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *HADiscoveryActor) WaitingHealthyReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.ActorHealthResponse:
		state.logger.Debug("hadiscovery@healthcheck ActorHealthResponse", zap.String("sender", msg.Id), zap.Bool("healthy", msg.Healthy))
		state.healthyRecv++
		if msg.Healthy {
			switch msg.Id {
			case domain.ACTOR_ID_ENTITIES:
				state.entitiesActorHealthy = true
			case domain.ACTOR_ID_MQTT:
				state.mqttActorHealthy = true
			}
		}
		if state.healthyRecv == 2 {

			if state.entitiesActorHealthy && state.mqttActorHealthy {
				// Ask Entities for the registry description
				actorutil.PipeToSelfWithRecover(ctx, ctx.RequestFuture(state.entitiesActor, domain.GetDiscoveryRequest{}, 10*time.Second), func(err error) any {
					return domain.GetDiscoveryResponse{
						ActorResponseMixIn: domain.ActorResponseMixIn{
							ResponseError: err,
						},
					}
				})
				state.behavior.Become(state.WaitingDiscoveryReceive)
				state.stash.UnstashAll(ctx)
			} else {
				panic(errors.New("MQTT Actor or Entities Actor are not healthy"))
			}
		}
	default:
		state.logger.Debug("hadiscovery@healthcheck: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *HADiscoveryActor) Done(ctx actor.Context) {

}

func (state *HADiscoveryActor) WaitingDiscoveryReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.GetDiscoveryResponse:
		if msg.HasResponseError() {
			panic(msg.GetResponseError())
		}
		state.logger.Debug("hadiscovery@discovery: GetDiscoveryResponse")

		discovery := msg.Discovery

		bridgeDevice := entity.BridgeDevice(state.config.MQTT.BaseTopic)
		discovery.BinarySensors = append(discovery.BinarySensors, entity.BridgeConnectivitySensor(bridgeDevice))

		ctx.Send(state.mqttActor, discovery)
		state.behavior.Become(state.Done)

	default:
		state.logger.Debug("hadiscovery@discovery: default recv", zap.String("type", fmt.Sprintf("%T", msg)))
	}
}
