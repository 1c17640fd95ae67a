// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"flag"
	"log"

	"vrplay/app"

	"github.com/gopxl/mainthread/v2"
)

func main() {
	flag.Parse()
	// SDL and OpenGL calls must stay on the OS thread that runs main.
	mainthread.Run(func() {
		if err := app.Main(); err != nil {
			log.Fatalf("vrplay: %v", err)
		}
	})
}
