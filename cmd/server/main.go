package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/bit-orbit/oauth/auth/statestore"
	"github.com/bit-orbit/oauth/clients"
	"github.com/bit-orbit/oauth/internal/config"
	"github.com/bit-orbit/oauth/server"
	"github.com/bit-orbit/oauth/sessions"
	"github.com/common-nighthawk/go-figure"
)

func main() {
	for {
		if err := run(); err != nil {
			log.Fatalf("Error running server: %s\n", err)
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Printf("Server stopped\n")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("config.New: %w", err)
	}
	displayAppname(cfg.GetAppName())

	sessionRepo, closeSessions, err := newSessionRepo(cfg)
	if err != nil {
		return err
	}
	defer closeSessions()

	srv, err := server.New(cfg, sessionRepo, statestore.NewInMemoryRepo(statestore.DefaultTTL), clients.NewGitHub())
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}

	httpServer := &http.Server{Addr: cfg.GetPort(), Handler: srv}
	go listenAndServe(httpServer)
	waitForStopSignal()
	returnError = shutdown(httpServer)
	return returnError
}

// newSessionRepo picks the durable SQLite store when a database path is
// configured, and the in-memory store otherwise.
func newSessionRepo(cfg config.Config) (sessions.Repo, func(), error) {
	if path := cfg.GetSessionsDB(); path != "" {
		repo, err := sessions.OpenSQLiteRepo(path)
		if err != nil {
			return nil, nil, fmt.Errorf("sessions.OpenSQLiteRepo: %w", err)
		}
		return repo, func() { _ = repo.Close() }, nil
	}
	return sessions.NewInMemoryRepo(), func() {}, nil
}

func listenAndServe(server *http.Server) error {
	log.Printf("Server listening on %s\n", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
