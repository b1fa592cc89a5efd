package mqtt

import "encoding/json"

// LightPayload is the HA MQTT JSON-schema light payload, used both for
// state publications and for parsing set commands. Color temperature is in
// mireds on the wire.
type LightPayload struct {
	State      string          `json:"state,omitempty"`
	Brightness *int            `json:"brightness,omitempty"`
	Color      *LightHSPayload `json:"color,omitempty"`
	ColorTemp  *int            `json:"color_temp,omitempty"`
	ColorMode  string          `json:"color_mode,omitempty"`
}

type LightHSPayload struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
}

func ParseLightPayload(data []byte) (*LightPayload, error) {
	var p LightPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *LightPayload) Encode() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// KelvinToMireds converts a color temperature for the wire format.
func KelvinToMireds(kelvin int) int {
	if kelvin <= 0 {
		return 0
	}
	return 1000000 / kelvin
}

// MiredsToKelvin is the inverse of KelvinToMireds.
func MiredsToKelvin(mireds int) int {
	if mireds <= 0 {
		return 0
	}
	return 1000000 / mireds
}
