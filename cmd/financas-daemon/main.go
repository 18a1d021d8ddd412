package main

import (
	"fmt"
	"os"

	"github.com/fabioramos-02/prisma-database/config"
	"github.com/fabioramos-02/prisma-database/workers/daemons"
)

func CreateWorker(id string) daemons.Worker {
	switch id {
	case "cron_job":
		return daemons.NewCronJob()
	default:
		return nil
	}
}

func main() {
	if err := config.InitializeConfig(); err != nil {
		fmt.Println(err.Error())
		return
	}

	ARVG := os.Args[1:]

	for _, id := range ARVG {
		fmt.Println("Start financas-daemon: " + id)
		worker := CreateWorker(id)

		if worker == nil {
			config.Logger.Fatalf("unknown worker: %s", id)
		}

		worker.Start()
	}
}
