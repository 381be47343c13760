package utils

import (
	"net"
	"net/http"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	// LocalhostAddr contains the default interface address
	LocalhostAddr = "0.0.0.0"

	readHeaderTimeout = 10 * time.Second
)

// StartServer serves routes under prefixPath on listenAddr:port and blocks
// until the server stops.
func StartServer(serviceName, listenAddr string, port int, prefixPath string, routes []Route) error {
	if listenAddr == "" {
		listenAddr = LocalhostAddr
	}

	listenAddrPort := net.JoinHostPort(listenAddr, strconv.Itoa(port))

	server := &http.Server{
		Addr:              listenAddrPort,
		Handler:           NewRouter(prefixPath, routes),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	log.Infof("%s server listening at %s...", serviceName, listenAddrPort)

	return server.ListenAndServe()
}
