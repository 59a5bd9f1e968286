package main

import (
	"log"
	"os"

	"github.com/cardlect/cardlect/core/identity"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up the seed-backed identity provider
	ids, err := identity.Seed()
	errAndDie(err)

	// start CLI
	cli := commandLine{
		provider: identity.NewSeedProvider(ids...),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
