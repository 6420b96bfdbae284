package main

import (
	"log"

	"kpiforecast/cmd"
)

func main() {
	apiHandler, config, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	err = apiHandler.StartApi(config.Port)
	if err != nil {
		log.Fatal(err)
	}
}
