package domain

type Device struct {
	Id           string
	Name         string
	Version      string
	Model        string
	Manufacturer string
	ViaDevice    string
}

type GenericSensor struct {
	Device            Device
	Id                string
	SensorType        string
	Name              string
	UniqueId          string
	UnitOfMeasurement string
	StateClass        string // measurement, total, total_increasing
	DeviceClass       string // temperature, power, energy, enum, ...
	EntityCategory    string // diagnostic, config, nil
	EnabledByDefault  *bool
	Options           []string // enum sensors only
	Icon              string
}

type GenericBinarySensor struct {
	Device         Device
	Id             string
	Name           string
	UniqueId       string
	DeviceClass    string
	EntityCategory string
	Icon           string
}

type GenericSwitch struct {
	Device   Device
	Id       string
	Name     string
	UniqueId string
	Icon     string
}

type GenericLight struct {
	Device             Device
	Id                 string
	Name               string
	UniqueId           string
	Brightness         bool
	ColorModes         []string // hs, color_temp
	MinColorTempKelvin int
	MaxColorTempKelvin int
}

type GenericFan struct {
	Device      Device
	Id          string
	Name        string
	UniqueId    string
	SpeedCount  int
	PresetModes []string
}

type GenericInputNumber struct {
	Device       Device
	Id           string
	Name         string
	UniqueId     string
	Icon         string
	Max          float64
	Min          float64
	Step         float64
	Mode         string
	InitialValue float64
}

type GenericButton struct {
	Device      Device
	Id          string
	Name        string
	UniqueId    string
	DeviceClass string
	Icon        string
}
