package mqtt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwitchCommandParse(t *testing.T) {

	assert := assert.New(t)

	baseTopic := "loremTopic"
	topic := "loremTopic/switch/my_entity/command"
	r := commandExtractor(baseTopic, "switch", "command")
	matches := r.FindAllStringSubmatch(topic, 1)

	assert.Equal(matches[0][1], "my_entity", "entity extract")
}

func TestSwitchCommandParseFail(t *testing.T) {

	assert := assert.New(t)

	baseTopic := "loremTopic"
	topic := "loremTopic/switch/my_entity/state"
	r := commandExtractor(baseTopic, "switch", "command")
	matches := r.FindAllStringSubmatch(topic, 1)

	assert.Equal(len(matches), 0, "no matches")
}

func TestLightCommandParse(t *testing.T) {

	assert := assert.New(t)

	baseTopic := "loremTopic"
	topic := "loremTopic/light/abcd1234_light/set"
	r := commandExtractor(baseTopic, "light", "set")
	matches := r.FindAllStringSubmatch(topic, 1)

	assert.Equal(matches[0][1], "abcd1234_light", "entity extract")
}

func TestFanPercentageCommandParse(t *testing.T) {

	assert := assert.New(t)

	baseTopic := "loremTopic"
	r := commandExtractor(baseTopic, "fan", "percentage")

	matches := r.FindAllStringSubmatch("loremTopic/fan/hood_fan/percentage", 1)
	assert.Equal(matches[0][1], "hood_fan", "entity extract")

	// percentage_state must not match the command extractor
	matches = r.FindAllStringSubmatch("loremTopic/fan/hood_fan/percentage_state", 1)
	assert.Equal(len(matches), 0, "no matches")
}

func TestInputNumberCommandParse(t *testing.T) {

	assert := assert.New(t)

	baseTopic := "loremTopic"
	topic := "loremTopic/number/number_name/set"
	r := commandExtractor(baseTopic, "number", "set")
	matches := r.FindAllStringSubmatch(topic, 1)

	assert.Equal(matches[0][1], "number_name", "number_id extract")
}

func TestButtonCommandParse(t *testing.T) {

	assert := assert.New(t)

	baseTopic := "loremTopic"
	topic := "loremTopic/button/reset_water_filter/command"
	r := commandExtractor(baseTopic, "button", "command")
	matches := r.FindAllStringSubmatch(topic, 1)

	assert.Equal(matches[0][1], "reset_water_filter", "entity extract")
}

func TestLightPayloadRoundTrip(t *testing.T) {

	assert := assert.New(t)

	b := 128
	ct := 333
	p := &LightPayload{State: "ON", Brightness: &b, ColorTemp: &ct}
	enc, err := p.Encode()
	assert.NoError(err)

	parsed, err := ParseLightPayload([]byte(enc))
	assert.NoError(err)
	assert.Equal("ON", parsed.State)
	assert.Equal(128, *parsed.Brightness)
	assert.Equal(333, *parsed.ColorTemp)
}

func TestMiredsKelvin(t *testing.T) {

	assert := assert.New(t)

	assert.Equal(500, KelvinToMireds(2000))
	assert.Equal(111, KelvinToMireds(9000))
	assert.Equal(3003, MiredsToKelvin(333))
}
