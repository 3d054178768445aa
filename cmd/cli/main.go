package main

import (
	"log"
	"os"

	"github.com/researchhub/hubcli/internal/buildinfo"
	"github.com/researchhub/hubcli/internal/cli"
	"github.com/researchhub/hubcli/internal/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run()
}
