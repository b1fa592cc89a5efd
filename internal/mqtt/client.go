package mqtt

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"time"

	"github.com/acasal/smartthings2mqtt/internal/config"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const (
	MQTT_PAYLOAD_ONLINE  = "online"
	MQTT_PAYLOAD_OFFLINE = "offline"
	MQTT_PAYLOAD_ON      = "on"
	MQTT_PAYLOAD_OFF     = "off"
	MQTT_PAYLOAD_PRESS   = "press"
)

func OptsFromConfig(cfg *config.Config) *mqtt.ClientOptions {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s:%d", cfg.MQTT.Host, cfg.MQTT.Port))
	opts.SetClientID(fmt.Sprintf("st2mqtt_%d", rand.Intn(1000)))
	if cfg.MQTT.Username != "" && cfg.MQTT.Password != "" {
		opts.SetUsername(cfg.MQTT.Username)
		opts.SetPassword(cfg.MQTT.Password)
	}
	opts.WillEnabled = true
	opts.WillPayload = []byte(MQTT_PAYLOAD_OFFLINE)
	opts.WillRetained = true
	opts.WillTopic = bridgeStateTopic(cfg.MQTT.BaseTopic)
	opts.WillQos = 0

	return opts
}

func CreateMQTTClient(cfg *config.Config, opts *mqtt.ClientOptions, onConnectHandler func(client mqtt.Client),
	onConnectionLostHandler func(mqtt.Client, error)) *MQTTClient {
	if onConnectHandler != nil {
		opts.OnConnect = onConnectHandler
	}
	if onConnectionLostHandler != nil {
		opts.OnConnectionLost = onConnectionLostHandler
	}
	return &MQTTClient{
		client:                   mqtt.NewClient(opts),
		cfg:                      cfg.MQTT,
		switchCommandRegexp:      commandExtractor(cfg.MQTT.BaseTopic, "switch", "command"),
		lightCommandRegexp:       commandExtractor(cfg.MQTT.BaseTopic, "light", "set"),
		fanCommandRegexp:         commandExtractor(cfg.MQTT.BaseTopic, "fan", "command"),
		fanPercentageRegexp:      commandExtractor(cfg.MQTT.BaseTopic, "fan", "percentage"),
		fanPresetRegexp:          commandExtractor(cfg.MQTT.BaseTopic, "fan", "preset"),
		inputNumberCommandRegexp: commandExtractor(cfg.MQTT.BaseTopic, "number", "set"),
		buttonCommandRegexp:      commandExtractor(cfg.MQTT.BaseTopic, "button", "command"),
	}
}

type MQTTClient struct {
	client                   mqtt.Client
	cfg                      config.MQTTConfig
	switchCommandRegexp      *regexp.Regexp
	lightCommandRegexp       *regexp.Regexp
	fanCommandRegexp         *regexp.Regexp
	fanPercentageRegexp      *regexp.Regexp
	fanPresetRegexp          *regexp.Regexp
	inputNumberCommandRegexp *regexp.Regexp
	buttonCommandRegexp      *regexp.Regexp
}

// ParsedMQTTCommand is a command topic match: which entity, which kind of
// command, and the raw payload.
type ParsedMQTTCommand struct {
	EntityId string
	Command  string
	Payload  string
}

const (
	COMMAND_SWITCH         = "switch"
	COMMAND_LIGHT          = "light"
	COMMAND_FAN_STATE      = "fan_state"
	COMMAND_FAN_PERCENTAGE = "fan_percentage"
	COMMAND_FAN_PRESET     = "fan_preset"
	COMMAND_NUMBER         = "number"
	COMMAND_BUTTON         = "button"
)

func (c *MQTTClient) baseTopic() string {
	return c.cfg.BaseTopic
}

func (c *MQTTClient) BridgeStateTopic() string {
	return bridgeStateTopic(c.baseTopic())
}

func (c *MQTTClient) StateTopic(platform, entityId string) string {
	return fmt.Sprintf("%s/%s/%s/state", c.baseTopic(), platform, entityId)
}

func (c *MQTTClient) SensorStateTopic(entityId string) string {
	return c.StateTopic("sensor", entityId)
}

func (c *MQTTClient) BinarySensorStateTopic(entityId string) string {
	return c.StateTopic("binary_sensor", entityId)
}

func (c *MQTTClient) SwitchStateTopic(entityId string) string {
	return c.StateTopic("switch", entityId)
}

func (c *MQTTClient) SwitchCommandTopic(entityId string) string {
	return fmt.Sprintf("%s/switch/%s/command", c.baseTopic(), entityId)
}

func (c *MQTTClient) LightStateTopic(entityId string) string {
	return c.StateTopic("light", entityId)
}

func (c *MQTTClient) LightCommandTopic(entityId string) string {
	return fmt.Sprintf("%s/light/%s/set", c.baseTopic(), entityId)
}

func (c *MQTTClient) FanStateTopic(entityId string) string {
	return c.StateTopic("fan", entityId)
}

func (c *MQTTClient) FanCommandTopic(entityId string) string {
	return fmt.Sprintf("%s/fan/%s/command", c.baseTopic(), entityId)
}

func (c *MQTTClient) FanPercentageStateTopic(entityId string) string {
	return fmt.Sprintf("%s/fan/%s/percentage_state", c.baseTopic(), entityId)
}

func (c *MQTTClient) FanPercentageCommandTopic(entityId string) string {
	return fmt.Sprintf("%s/fan/%s/percentage", c.baseTopic(), entityId)
}

func (c *MQTTClient) FanPresetStateTopic(entityId string) string {
	return fmt.Sprintf("%s/fan/%s/preset_state", c.baseTopic(), entityId)
}

func (c *MQTTClient) FanPresetCommandTopic(entityId string) string {
	return fmt.Sprintf("%s/fan/%s/preset", c.baseTopic(), entityId)
}

func (c *MQTTClient) InputNumberStateTopic(entityId string) string {
	return c.StateTopic("number", entityId)
}

func (c *MQTTClient) InputNumberCommandTopic(entityId string) string {
	return fmt.Sprintf("%s/number/%s/set", c.baseTopic(), entityId)
}

func (c *MQTTClient) ButtonCommandTopic(entityId string) string {
	return fmt.Sprintf("%s/button/%s/command", c.baseTopic(), entityId)
}

// ParseMQTTCommand matches a message against every command topic shape and
// returns the first hit.
func (c *MQTTClient) ParseMQTTCommand(msg mqtt.Message) (*ParsedMQTTCommand, error) {
	topic := msg.Topic()
	payload := string(msg.Payload())
	for _, m := range []struct {
		re      *regexp.Regexp
		command string
	}{
		{c.switchCommandRegexp, COMMAND_SWITCH},
		{c.lightCommandRegexp, COMMAND_LIGHT},
		{c.fanPercentageRegexp, COMMAND_FAN_PERCENTAGE},
		{c.fanPresetRegexp, COMMAND_FAN_PRESET},
		{c.fanCommandRegexp, COMMAND_FAN_STATE},
		{c.inputNumberCommandRegexp, COMMAND_NUMBER},
		{c.buttonCommandRegexp, COMMAND_BUTTON},
	} {
		matches := m.re.FindAllStringSubmatch(topic, 1)
		if len(matches) == 0 || len(matches[0]) != 2 {
			continue
		}
		if m.command == COMMAND_NUMBER {
			if _, err := strconv.ParseFloat(payload, 64); err != nil {
				return nil, err
			}
		}
		if m.command == COMMAND_FAN_PERCENTAGE {
			if _, err := strconv.Atoi(payload); err != nil {
				return nil, err
			}
		}
		return &ParsedMQTTCommand{
			EntityId: matches[0][1],
			Command:  m.command,
			Payload:  payload,
		}, nil
	}
	return nil, errors.New("invalid command")
}

func (c *MQTTClient) Publish(topic string, payload any, qos byte, retain bool, continuation func(error), timeout time.Duration) {
	token := c.client.Publish(topic, qos, retain, payload)
	go func() {
		didTO := token.WaitTimeout(timeout)
		if !didTO {
			continuation(errors.New("MQTT publish timed out"))
		} else {
			continuation(token.Error())
		}
	}()
}

func (c *MQTTClient) Subscribe(topic string, qos byte, handler mqtt.MessageHandler, continuation func(error), timeout time.Duration) {
	token := c.client.Subscribe(topic, qos, handler)
	go func() {
		didTO := token.WaitTimeout(timeout)
		if !didTO {
			continuation(errors.New("MQTT subscribe timed out"))
		} else {
			continuation(token.Error())
		}
	}()
}

func (c *MQTTClient) SubscribeToCommandTopic(handler mqtt.MessageHandler, continuation func(error), timeout time.Duration) {
	c.Subscribe(c.commandTopic(), 1, handler, continuation, timeout)
}

func (c *MQTTClient) Unsubscribe(topic string, continuation func(error), timeout time.Duration) {
	token := c.client.Unsubscribe(topic)
	go func() {
		didTO := token.WaitTimeout(timeout)
		if !didTO {
			continuation(errors.New("MQTT unsubscribe timed out"))
		} else {
			continuation(token.Error())
		}
	}()
}

func (c *MQTTClient) Connect(continuation func(error), timeout time.Duration) {
	token := c.client.Connect()
	go func() {
		didTO := token.WaitTimeout(timeout)
		if !didTO {
			continuation(errors.New("MQTT connect timed out"))
		} else {
			continuation(token.Error())
		}
	}()
}

func (c *MQTTClient) Disconnect(timeout time.Duration) {
	c.client.Disconnect(uint(timeout.Milliseconds()))
}

func (c *MQTTClient) commandTopic() string {
	return fmt.Sprintf("%s/#", c.baseTopic())
}

func commandExtractor(baseTopic, platform, action string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf("%s/%s/([a-zA-Z0-9_]+)/%s$", baseTopic, platform, action))
}

func bridgeStateTopic(baseTopic string) string {
	return fmt.Sprintf("%s/bridge/state", baseTopic)
}
