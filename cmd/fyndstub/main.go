package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/ARPaule28/fynd-app/internal/buildinfo"
	"github.com/ARPaule28/fynd-app/internal/logging"
	"github.com/ARPaule28/fynd-app/internal/stub"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	addr := flag.String("a", "127.0.0.1:8080", "address and port to listen on")
	uploads := flag.String("u", "uploads", "directory for uploaded media")
	flag.Parse()

	secret := os.Getenv("FYND_STUB_SECRET")
	if secret == "" {
		secret = "dev-secret"
	}

	logger := logging.NewDefault()

	srv, err := stub.NewServer([]byte(secret), 24*time.Hour, *uploads, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	log.Printf("stub backend listening on %s", *addr)
	if err := http.ListenAndServe(*addr, srv.Router()); err != nil {
		log.Fatalf("%v", err)
	}
}
