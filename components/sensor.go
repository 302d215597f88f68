package components

import (
	"github.com/automoto/hookshot/sensor"
	"github.com/yohamta/donburi"
)

type SensorData struct {
	*sensor.Sensor
	LastDelta sensor.Delta
}

var Sensor = donburi.NewComponentType[SensorData]()
