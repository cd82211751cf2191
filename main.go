package main

import (
	"fmt"
	"log"
	"os"

	"httpfromtcp/internal/bootstrap"
	"httpfromtcp/internal/config"
	"httpfromtcp/internal/version"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		log.Println(version.GetVersion())
		os.Exit(0)
	}

	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	log.Printf("Starting %s", version.GetVersion())

	conf, err := config.MustLoad()
	if err != nil {
		log.Fatalf("Failed to load configuration: %s", err)
	}

	fmt.Println(version.Banner(conf.Address()))

	if err = bootstrap.New(conf).Run(); err != nil {
		log.Fatalf("Application error: %s", err)
	}
}
