package main

import (
	"github.com/reelrank/core/internal/app"
	"github.com/reelrank/core/internal/config"
)

func main() {
	app.Go(config.Load())
}
