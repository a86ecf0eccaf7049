package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
	"github.com/stemsi/classroom-manager/internal/config"
	"github.com/stemsi/classroom-manager/internal/handler"
	"github.com/stemsi/classroom-manager/internal/interpreter"
	"github.com/stemsi/classroom-manager/internal/logger"
	"github.com/stemsi/classroom-manager/internal/router"
	"github.com/stemsi/classroom-manager/internal/service"
	"github.com/stemsi/classroom-manager/internal/validator"
	"golang.org/x/term"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	// Logs go to stderr; stdout carries command replies only.
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	// ─── Initialize Registry & Handlers ────────────────────────────────
	registry := service.NewRegistry(log)
	handlers := &router.Handlers{
		Classroom:  handler.NewClassroomHandler(registry),
		Assignment: handler.NewAssignmentHandler(registry),
	}
	r := router.SetupRouter(handlers, log)

	// ─── Run Session ───────────────────────────────────────────────────
	interactive := cfg.IsInteractive(term.IsTerminal(int(os.Stdin.Fd())))
	it := interpreter.New(r, os.Stdout, log, interpreter.Options{
		Interactive: interactive,
		Prompt:      cfg.Prompt,
	})

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := it.Run(ctx, os.Stdin); err != nil {
		if ctx.Err() != nil {
			log.Info().Msg("Interrupted, shutting down")
			return
		}
		log.Error().Stack().Err(err).Msg("Session aborted")
		stop()
		os.Exit(1)
	}
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
}
