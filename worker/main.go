package main

import (
	"flag"
	"log"
	"net"
	"os"

	"github.com/bscheibe/Parallel-game-of-life/gol"
)

func main() {
	port := flag.String("port", getenvDefault("WORKER_PORT", "8030"), "Port to listen on")
	flag.Parse()

	listener, err := net.Listen("tcp", ":"+*port)
	if err != nil {
		log.Fatalf("Failed to listen on port %v: %v", *port, err)
	}

	if err := gol.ServeWorker(listener); err != nil {
		log.Fatal(err)
	}
	log.Print("Worker shut down")
}

func getenvDefault(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
