// Command blankwindow opens the simulation window without running a simulation.
package main

import (
	"log"

	"github.com/sheikhrachel/go-predprey/render"
	"github.com/sheikhrachel/go-predprey/utils"
)

func main() {
	config := utils.BlankWindowConfig()
	if err := config.Validate(); err != nil {
		log.Fatal(err)
	}

	if err := render.Run(config, render.NewBlank(config)); err != nil {
		log.Fatal(err)
	}
}
