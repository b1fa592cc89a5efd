package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentageRangedRoundTrip(t *testing.T) {
	r := SpeedRange{Low: 1, High: 3}
	for step := r.Low; step <= r.High; step++ {
		pct := RangedValueToPercentage(r, step)
		assert.Equal(t, step, PercentageToRangedValue(r, pct), "step %d", step)
	}
	assert.Equal(t, 33, RangedValueToPercentage(r, 1))
	assert.Equal(t, 66, RangedValueToPercentage(r, 2))
	assert.Equal(t, 100, RangedValueToPercentage(r, 3))
	// any non-zero percentage lands on at least the bottom step
	assert.Equal(t, 1, PercentageToRangedValue(r, 1))
	assert.Equal(t, 3, PercentageToRangedValue(r, 100))
}

func TestHoodRangeRoundTrip(t *testing.T) {
	r := SpeedRange{Low: 1, High: 4}
	for step := r.Low; step <= r.High; step++ {
		pct := RangedValueToPercentage(r, step)
		assert.Equal(t, step, PercentageToRangedValue(r, pct))
	}
}

func TestOrderedListPercentage(t *testing.T) {
	speeds := []string{"low", "medium", "high", "max"}
	for _, s := range speeds {
		pct, err := OrderedListItemToPercentage(speeds, s)
		assert.NoError(t, err)
		assert.Equal(t, s, PercentageToOrderedListItem(speeds, pct))
	}
	pct, err := OrderedListItemToPercentage(speeds, "max")
	assert.NoError(t, err)
	assert.Equal(t, 100, pct)
	_, err = OrderedListItemToPercentage(speeds, "turbo")
	assert.Error(t, err)
}

func TestBrightnessLevel(t *testing.T) {
	assert.Equal(t, 0, BrightnessToLevel(0))
	assert.Equal(t, 100, BrightnessToLevel(255))
	// non-zero brightness never rounds down to vendor 0
	assert.Equal(t, 1, BrightnessToLevel(1))
	assert.Equal(t, 255, LevelToBrightness(100))
	assert.Equal(t, 0, LevelToBrightness(0))
	assert.Equal(t, 128, LevelToBrightness(50))
}

func TestNamedLampLevels(t *testing.T) {
	levels := []string{"off", "low", "high"}
	assert.Equal(t, "off", BrightnessToNamedLevel(levels, 0))
	assert.Equal(t, "high", BrightnessToNamedLevel(levels, 255))
	mid := BrightnessToNamedLevel(levels, 128)
	assert.NotEqual(t, "off", mid)

	assert.Equal(t, 0, NamedLevelToBrightness(levels, "off"))
	assert.Equal(t, 255, NamedLevelToBrightness(levels, "high"))
	assert.Equal(t, 128, NamedLevelToBrightness(levels, "low"))
}

func TestHueConversion(t *testing.T) {
	assert.Equal(t, float64(360), VendorHueToHost(100))
	assert.Equal(t, float64(0), VendorHueToHost(0))
	assert.Equal(t, float64(360), VendorHueToHost(140)) // clamped
	assert.Equal(t, float64(100), HostHueToVendor(360))
	assert.Equal(t, float64(0), HostHueToVendor(-5)) // clamped
	assert.Equal(t, float64(50), HostHueToVendor(180))
}

func TestClamps(t *testing.T) {
	assert.Equal(t, float64(100), ClampSaturation(130))
	assert.Equal(t, float64(0), ClampSaturation(-1))
	assert.Equal(t, 1, ClampKelvin(0))
	assert.Equal(t, 30000, ClampKelvin(40000))
	assert.Equal(t, 2700, ClampKelvin(2700))
}
