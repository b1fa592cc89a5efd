package actor

import (
	"strings"
	"testing"
	"time"

	adactor "github.com/acasal/smartthings2mqtt/internal/adapter/actor"
	"github.com/acasal/smartthings2mqtt/internal/core/domain"
	"github.com/acasal/smartthings2mqtt/internal/core/entity"
	"github.com/acasal/smartthings2mqtt/internal/util"
	"github.com/acasal/smartthings2mqtt/internal/util/actorutil"
	"github.com/acasal/smartthings2mqtt/pkg/smartthings"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func spawnEntitiesTree(t *testing.T, client *smartthings.TestClient) (*actor.ActorSystem, *actor.PID) {
	cfg := util.LoadTestConfig()
	logger := zap.Must(zap.NewDevelopment())

	as := actorutil.NewActorSystemWithZapLogger(logger)
	context := as.Root

	stProps := actor.PropsFromProducer(func() actor.Actor { return adactor.NewSmartThingsActor(client, logger) })
	stPID := context.Spawn(stProps)

	mqttProps := actor.PropsFromProducer(func() actor.Actor { return adactor.NewTestMQTTActor(&cfg, logger) })
	mqttPID := context.Spawn(mqttProps)

	entProps := actor.PropsFromProducer(func() actor.Actor { return NewEntitiesActor(&cfg, stPID, mqttPID, logger) })
	entPID := context.Spawn(entProps)

	return as, entPID
}

func TestEntitiesActorHealthAndDiscovery(t *testing.T) {

	assert := assert.New(t)

	client := smartthings.NewTestClient()
	as, pid := spawnEntitiesTree(t, client)
	defer as.Shutdown()
	context := as.Root

	time.Sleep(2 * time.Second)

	res, err := context.RequestFuture(pid, domain.ActorHealthRequest{}, 5*time.Second).Result()
	if err != nil {
		t.Error(err)
		return
	}
	health := res.(domain.ActorHealthResponse)
	assert.True(health.Healthy)
	assert.Equal(domain.ACTOR_ID_ENTITIES, health.Id)

	res, err = context.RequestFuture(pid, domain.GetDiscoveryRequest{}, 5*time.Second).Result()
	if err != nil {
		t.Error(err)
		return
	}
	disc := res.(domain.GetDiscoveryResponse)
	assert.False(disc.HasResponseError())
	assert.Len(disc.Discovery.Lights, 2, "lights")
	assert.Len(disc.Discovery.Fans, 1, "fans")
	assert.Len(disc.Discovery.Switches, 3, "switches")
	assert.Len(disc.Discovery.Buttons, 1, "buttons")
	assert.NotEmpty(disc.Discovery.Sensors)

	context.Stop(pid)
}

func TestEntitiesActorRoutesCommand(t *testing.T) {

	assert := assert.New(t)

	client := smartthings.NewTestClient()
	as, pid := spawnEntitiesTree(t, client)
	defer as.Shutdown()
	context := as.Root

	time.Sleep(2 * time.Second)

	// find the fridge power cool switch id the same way the registry maps it
	registry := entity.BuildRegistry("bridge", []*smartthings.FullDevice{{
		Info:   smartthings.TestFridgeDevice(),
		Status: smartthings.TestFridgeStatus(),
	}})
	var targetId string
	for _, sw := range registry.Switches {
		if strings.HasSuffix(sw.UniqueId(), "_power_cool") {
			targetId = sw.UniqueId()
		}
	}
	assert.NotEmpty(targetId, "power cool switch id")

	context.Send(pid, &domain.SwitchSetRequest{
		EntityCommandRequestMixIn: domain.EntityCommandRequestMixIn{EntityId: targetId},
		On:                        true,
	})

	time.Sleep(1 * time.Second)

	executed := client.ExecutedCommands()
	if assert.Len(executed, 1, "executed commands") {
		assert.Equal("fridge-1", executed[0].DeviceID)
		assert.Equal(smartthings.CapabilityPowerCool, executed[0].Capability)
		assert.Equal(smartthings.CommandActivate, executed[0].Command)
	}

	context.Stop(pid)
}

func TestEntitiesActorDropsCommandForUnknownEntity(t *testing.T) {

	assert := assert.New(t)

	client := smartthings.NewTestClient()
	as, pid := spawnEntitiesTree(t, client)
	defer as.Shutdown()
	context := as.Root

	time.Sleep(2 * time.Second)

	context.Send(pid, &domain.SwitchSetRequest{
		EntityCommandRequestMixIn: domain.EntityCommandRequestMixIn{EntityId: "nope"},
		On:                        true,
	})

	time.Sleep(1 * time.Second)

	assert.Empty(client.ExecutedCommands())

	context.Stop(pid)
}
