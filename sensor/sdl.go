// SPDX-License-Identifier: GPL-2.0-or-later

package sensor

import (
	"time"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

// sampleInterval is the sensor event rate requested from the device.
const sampleInterval = 20 * time.Millisecond

// OpenSDL acquires a rotation sensor through SDL. SDL only exposes
// raw inertial sensors, so this always yields the gyroscope
// integration path; absolute rotation vector sources come from
// platform specific OpenFuncs.
func OpenSDL() (Source, error) {
	if err := sdl.InitSubSystem(sdl.INIT_SENSOR); err != nil {
		return nil, errors.Wrap(err, "init sensor subsystem")
	}
	n := sdl.NumSensors()
	for i := 0; i < n; i++ {
		if sdl.SensorGetDeviceType(i) != sdl.SENSOR_GYRO {
			continue
		}
		s := sdl.SensorOpen(i)
		if s == nil {
			continue
		}
		return &sdlSource{s: s}, nil
	}
	return nil, errors.New("no gyroscope device")
}

type sdlSource struct {
	s    *sdl.Sensor
	next time.Time
}

func (s *sdlSource) Kind() Kind {
	return KindGyroscope
}

func (s *sdlSource) Poll(timeout time.Duration) (Sample, bool) {
	wait := sampleInterval
	if timeout < wait {
		wait = timeout
	}
	if !s.next.IsZero() {
		if d := time.Until(s.next); d > 0 {
			time.Sleep(d)
		}
	}
	s.next = time.Now().Add(wait)

	sdl.SensorUpdate()
	var data [3]float32
	if err := s.s.GetData(data[:]); err != nil {
		return Sample{}, false
	}
	return Sample{
		Data:      [4]float32{data[0], data[1], data[2], 0},
		Timestamp: time.Now(),
	}, true
}

func (s *sdlSource) Close() {
	s.s.Close()
	sdl.QuitSubSystem(sdl.INIT_SENSOR)
}
