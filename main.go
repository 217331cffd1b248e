package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ryokan_check/cli"
	"ryokan_check/logging"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	logFile, err := logging.Setup("ryokan-check.log")
	if err != nil {
		log.Printf("Warning: could not set up file logging: %v", err)
	} else {
		defer logFile.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("Interrupt received, finishing up...")
		cancel()
	}()

	if err := cli.Execute(ctx); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}
