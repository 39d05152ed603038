package main

import (
	"context"
	"log"
	"os"

	"github.com/ARPaule28/fynd-app/internal/buildinfo"
	"github.com/ARPaule28/fynd-app/internal/client/cli"
	"github.com/ARPaule28/fynd-app/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
