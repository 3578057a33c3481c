package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"gotaskboard/internal/board/adapters/rest"
	appServices "gotaskboard/internal/board/app/services"
	"gotaskboard/internal/board/cli"
	"gotaskboard/internal/board/config"
	"gotaskboard/pkg/logger"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "BOARD_LOGGER_MODE"
	EnvLoggerLevel = "BOARD_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrRunCommand           = "command failed"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		client := rest.NewClient(rest.Options{
			Timeout:    cfg.API.Timeout,
			MaxRetries: cfg.API.MaxRetries,
			Backoff:    cfg.API.Backoff,
		})
		board := appServices.NewBoardService(client, &cfg.API)

		rootCmd := cli.NewRootCommand(&cli.Deps{
			Board:  board,
			Config: cfg,
		})

		if err := rootCmd.ExecuteContext(logger.NewContext(ctx, log)); err != nil {
			log.Debug(ctx, ErrRunCommand, zap.Error(err))
			fmt.Fprintln(os.Stderr, err)
			exitCode = 1
			return
		}
	}()

	os.Exit(exitCode)
}
