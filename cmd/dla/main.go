package main

import (
	"flag"
	"log"

	"github.com/jo56/dla-simulation/internal/app"
	"github.com/jo56/dla-simulation/internal/config"
)

func main() {
	fl := app.NewFlags(config.Default())
	fl.Bind(flag.CommandLine)
	flag.Parse()

	cfg := config.Default()
	if fl.ConfigPath != "" {
		loaded, err := config.Load(fl.ConfigPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}
	fl.Apply(&cfg, flag.CommandLine)

	a, err := app.New(cfg)
	if err != nil {
		log.Fatalf("starting terminal: %v", err)
	}
	if err := a.Run(); err != nil {
		log.Fatal(err)
	}
}
