// SPDX-License-Identifier: GPL-2.0-or-later

// package config loads the optional vrplay.toml configuration file.
package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	// Window
	Width      int32
	Height     int32
	Fullscreen bool
	Borderless bool

	// Video decode
	FFmpeg string // decoder binary, looked up on PATH when relative

	// Sensor. Remap maps raw sensor quaternion components to display
	// pitch/yaw/roll; a calibration constant tied to how the sensor is
	// mounted relative to the screen, not a universal transform.
	SensorRemap []string

	// Lens defaults, adjustable at runtime from the dock.
	LensRadius       float64
	LensCenterOffset float64
	ContentScale     float64
	IPD              float64

	// Fixed size of the offscreen UI overlay texture.
	UISize int32
}

// Load reads vrplay.toml from the usual locations. A missing file is
// not an error; defaults apply.
func Load(configFile string) *Config {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("vrplay")
		viper.SetConfigType("toml")
		viper.AddConfigPath("$HOME/.config/vrplay")
		viper.AddConfigPath(".")
	}

	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 720)
	viper.SetDefault("window.fullscreen", false)
	viper.SetDefault("window.borderless", false)
	viper.SetDefault("video.ffmpeg", "ffmpeg")
	viper.SetDefault("sensor.remap", []string{"-y", "x", "z", "w"})
	viper.SetDefault("lens.radius", 1.0)
	viper.SetDefault("lens.center_offset", 0.0)
	viper.SetDefault("lens.content_scale", 1.0)
	viper.SetDefault("lens.ipd", 0.065)
	viper.SetDefault("ui.texture_size", 1024)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("config: %v", err)
		}
	}

	return &Config{
		Width:            viper.GetInt32("window.width"),
		Height:           viper.GetInt32("window.height"),
		Fullscreen:       viper.GetBool("window.fullscreen"),
		Borderless:       viper.GetBool("window.borderless"),
		FFmpeg:           viper.GetString("video.ffmpeg"),
		SensorRemap:      viper.GetStringSlice("sensor.remap"),
		LensRadius:       viper.GetFloat64("lens.radius"),
		LensCenterOffset: viper.GetFloat64("lens.center_offset"),
		ContentScale:     viper.GetFloat64("lens.content_scale"),
		IPD:              viper.GetFloat64("lens.ipd"),
		UISize:           viper.GetInt32("ui.texture_size"),
	}
}
