package main

import (
	"log"
	"os"

	"github.com/dtnitsch/wordfreq/internal/wordfreq"
)

func main() {
	if err := wordfreq.NewApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
