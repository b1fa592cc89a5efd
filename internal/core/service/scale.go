package service

import (
	"fmt"
	"math"
)

// SpeedRange is an inclusive integer range of discrete speed steps. The off
// state is not part of the range: percentage 0 always maps to the dedicated
// off value, never the bottom step.
type SpeedRange struct {
	Low  int
	High int
}

func (r SpeedRange) states() int {
	return r.High - r.Low + 1
}

// PercentageToRangedValue maps a 1..100 percentage onto the range, rounding
// up so any non-zero percentage lands on at least the lowest step.
func PercentageToRangedValue(r SpeedRange, percentage int) int {
	v := float64(r.states())*float64(percentage)/100 + float64(r.Low) - 1
	return int(math.Ceil(v))
}

// RangedValueToPercentage maps a step back to a percentage with integer
// scaling, the inverse of PercentageToRangedValue.
func RangedValueToPercentage(r SpeedRange, value int) int {
	return (value - (r.Low - 1)) * 100 / r.states()
}

// OrderedListItemToPercentage maps a named item of an ordered list (lowest
// first) to the upper bound of its equal-width percentage bucket.
func OrderedListItemToPercentage(list []string, item string) (int, error) {
	for i, e := range list {
		if e == item {
			return (i + 1) * 100 / len(list), nil
		}
	}
	return 0, fmt.Errorf("item %q not in list", item)
}

// PercentageToOrderedListItem maps a 1..100 percentage to the named item
// whose bucket contains it.
func PercentageToOrderedListItem(list []string, percentage int) string {
	for i, e := range list {
		if percentage <= (i+1)*100/len(list) {
			return e
		}
	}
	return list[len(list)-1]
}

// BrightnessToLevel converts host brightness 0..255 to a vendor dimmer level
// 0..100. A non-zero brightness never rounds down to level 0.
func BrightnessToLevel(brightness int) int {
	level := int(math.Round(float64(brightness) / 255 * 100))
	if level == 0 && brightness > 0 {
		level = 1
	}
	return level
}

// LevelToBrightness converts a vendor dimmer level 0..100 to host brightness
// 0..255.
func LevelToBrightness(level int) int {
	return int(math.Round(float64(level) / 100 * 255))
}

// BrightnessToNamedLevel maps host brightness onto a discrete named level
// list whose first entry may be a dedicated off value. Brightness 0 maps to
// off when the list has one; non-zero brightness is bucketed over the
// remaining levels with step = 255 / count.
func BrightnessToNamedLevel(levels []string, brightness int) string {
	if len(levels) == 0 {
		return ""
	}
	hasOff := levels[0] == "off"
	active := levels
	if hasOff {
		active = levels[1:]
	}
	if brightness <= 0 {
		if hasOff {
			return "off"
		}
		return active[0]
	}
	if len(active) == 0 {
		return levels[0]
	}
	step := 255 / float64(len(active))
	idx := int(math.Ceil(float64(brightness)/step)) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(active) {
		idx = len(active) - 1
	}
	return active[idx]
}

// NamedLevelToBrightness is the inverse of BrightnessToNamedLevel: off (or
// an unknown level) reads as 0, active levels read as the upper bound of
// their bucket.
func NamedLevelToBrightness(levels []string, level string) int {
	if len(levels) == 0 || level == "off" {
		return 0
	}
	active := levels
	if levels[0] == "off" {
		active = levels[1:]
	}
	for i, e := range active {
		if e == level {
			return int(math.Round(255 * float64(i+1) / float64(len(active))))
		}
	}
	return 0
}

// VendorHueToHost rescales vendor hue 0..100 to host degrees 0..360,
// clamping out-of-range inputs.
func VendorHueToHost(hue float64) float64 {
	return clamp(hue, 0, 100) * 360 / 100
}

// HostHueToVendor rescales host degrees 0..360 to vendor hue 0..100,
// clamping out-of-range inputs.
func HostHueToVendor(hue float64) float64 {
	return clamp(hue, 0, 360) * 100 / 360
}

// ClampSaturation bounds a saturation value to the vendor's 0..100 scale.
func ClampSaturation(sat float64) float64 {
	return clamp(sat, 0, 100)
}

// ClampKelvin bounds a color temperature to the vendor's accepted range.
func ClampKelvin(kelvin int) int {
	if kelvin < 1 {
		return 1
	}
	if kelvin > 30000 {
		return 30000
	}
	return kelvin
}

func clamp(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
