package main

import (
	"log"
	"net"
	"os"

	"github.com/joho/godotenv"

	"github.com/kenfang/zero2prod/internal/httpapi"
)

func main() {
	_ = godotenv.Load()

	addr := getenv("ZERO2PROD_HTTP_ADDR", "127.0.0.1:8000")

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("bind %s: %v", addr, err)
	}

	srv, err := httpapi.Run(listener)
	if err != nil {
		log.Fatalf("start server: %v", err)
	}
	log.Printf("zero2prod listening on %s", srv.Addr())

	if err := srv.Wait(); err != nil {
		log.Fatalf("http server error: %v", err)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
