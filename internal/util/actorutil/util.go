package actorutil

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/acasal/smartthings2mqtt/internal/core/domain"
	"github.com/acasal/smartthings2mqtt/internal/mqtt"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/lmittmann/tint"
	"go.uber.org/zap"
)

func PipeToSelfWithRecover(ctx actor.Context, future *actor.Future, mapFn func(error) any) {
	ctx.ReenterAfter(future, func(msg any, err error) {
		if err != nil {
			ctx.Send(ctx.Self(), mapFn(err))
			return
		}
		ctx.Send(ctx.Self(), msg)
	})
}

func NewActorSystemWithZapLogger(logger *zap.Logger) *actor.ActorSystem {
	stdOutLogger := zap.NewStdLog(logger)

	var slogLevel slog.Level = slog.LevelInfo

	switch logger.Level() {
	case zap.DebugLevel:
		slogLevel = slog.LevelDebug
	case zap.InfoLevel:
		slogLevel = slog.LevelInfo
	case zap.WarnLevel:
		slogLevel = slog.LevelWarn
	case zap.ErrorLevel:
		slogLevel = slog.LevelError
	case zap.PanicLevel:
		slogLevel = slog.LevelError
	}

	return actor.NewActorSystem(actor.WithLoggerFactory(func(system *actor.ActorSystem) *slog.Logger {

		// create a new logger
		return slog.New(tint.NewHandler(stdOutLogger.Writer(), &tint.Options{
			Level:      slogLevel,
			TimeFormat: time.DateTime,
		}))
	}))
}

func ActorLogger(actorName string, logger *zap.Logger) *zap.Logger {
	return logger.With(zap.String("actor", actorName))
}

// ParsedMQTTCommandToCommand translates a matched MQTT command topic into an
// entity command request. Unknown or malformed commands yield nil.
func ParsedMQTTCommandToCommand(cmd mqtt.ParsedMQTTCommand) (domain.EntityCommandRequest, error) {
	mixin := domain.EntityCommandRequestMixIn{EntityId: cmd.EntityId}
	switch cmd.Command {
	case mqtt.COMMAND_SWITCH:
		return &domain.SwitchSetRequest{
			EntityCommandRequestMixIn: mixin,
			On:                        cmd.Payload == mqtt.MQTT_PAYLOAD_ON,
		}, nil
	case mqtt.COMMAND_LIGHT:
		payload, err := mqtt.ParseLightPayload([]byte(cmd.Payload))
		if err != nil {
			return nil, err
		}
		req := &domain.LightSetRequest{EntityCommandRequestMixIn: mixin}
		switch payload.State {
		case "ON":
			on := true
			req.On = &on
		case "OFF":
			off := false
			req.On = &off
		}
		req.Brightness = payload.Brightness
		if payload.Color != nil {
			h := payload.Color.H
			s := payload.Color.S
			req.Hue = &h
			req.Saturation = &s
		}
		if payload.ColorTemp != nil {
			kelvin := mqtt.MiredsToKelvin(*payload.ColorTemp)
			req.ColorTempKelvin = &kelvin
		}
		return req, nil
	case mqtt.COMMAND_FAN_STATE:
		return &domain.FanSetStateRequest{
			EntityCommandRequestMixIn: mixin,
			On:                        cmd.Payload == mqtt.MQTT_PAYLOAD_ON,
		}, nil
	case mqtt.COMMAND_FAN_PERCENTAGE:
		pct, err := strconv.Atoi(cmd.Payload)
		if err != nil {
			return nil, err
		}
		return &domain.FanSetPercentageRequest{
			EntityCommandRequestMixIn: mixin,
			Percentage:                pct,
		}, nil
	case mqtt.COMMAND_FAN_PRESET:
		return &domain.FanSetPresetModeRequest{
			EntityCommandRequestMixIn: mixin,
			PresetMode:                cmd.Payload,
		}, nil
	case mqtt.COMMAND_NUMBER:
		value, err := strconv.ParseFloat(cmd.Payload, 64)
		if err != nil {
			return nil, err
		}
		return &domain.NumberSetRequest{
			EntityCommandRequestMixIn: mixin,
			Value:                     value,
		}, nil
	case mqtt.COMMAND_BUTTON:
		if cmd.Payload != mqtt.MQTT_PAYLOAD_PRESS {
			return nil, nil
		}
		return &domain.ButtonPressRequest{EntityCommandRequestMixIn: mixin}, nil
	}
	return nil, nil
}
