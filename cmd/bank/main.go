package main

import (
	"bank-lab/console"
	"bank-lab/services"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

const shutdownGrace = 500 * time.Millisecond

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires configuration, the audit sink and the bank session, then hands
// the terminal to the menu until the user quits or a signal arrives.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	defaults, err := config.AccountDefaults()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	// 2. Audit trail
	auditSink, closeSink, err := openAuditSink(config, log)
	if err != nil {
		return err
	}
	defer closeSink()

	// 3. Session
	svc := services.NewBankService(log, auditSink, defaults, nil)
	menu := console.NewMenu(svc, os.Stdin, os.Stdout, log, config.Colours)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The menu blocks on stdin, so it runs aside and the signal wins the race.
	errChan := make(chan error, 1)
	go func() {
		errChan <- menu.Run(ctx)
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutting down...")
		// The deferred closeSink must not close Badger under an operation that
		// is still writing its audit entry. A menu parked on stdin never
		// returns, hence the bound.
		select {
		case <-errChan:
		case <-time.After(shutdownGrace):
		}
		return nil
	case err := <-errChan:
		return err
	}
}
