// Command proofpad is a terminal chat client for a functional analysis
// proof tutor.
//
// Usage:
//
//	DEEPSEEK_API_KEY=sk-... proofpad [flags]
//	GEMINI_API_KEY=gk-...   proofpad [flags]
//
// Flags:
//
//	-provider string  Provider: deepseek, gemini (auto-detected from env vars if omitted)
//	-model string     Model label: deepseek-v3.2, gpt-5, gemini (default: provider default)
//	-base-url string  Override the DeepSeek-compatible endpoint
//	-config string    Path to config file (default: ~/.proofpad/config.yaml)
//	-api-key string   API key (overrides provider's env var)
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"proofpad"
	bt "proofpad/bubbletea"
	"proofpad/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "proofpad: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		providerFlag = flag.String("provider", "", "Provider: deepseek, gemini (auto-detected from env vars if omitted)")
		modelFlag    = flag.String("model", "", "Model label (provider-specific)")
		baseURLFlag  = flag.String("base-url", "", "Override the DeepSeek-compatible endpoint")
		configFlag   = flag.String("config", config.DefaultPath(), "Path to config file")
		apiKey       = flag.String("api-key", "", "API key (overrides provider's env var)")
	)
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}

	// Flags override file values.
	if *providerFlag != "" {
		cfg.Provider = *providerFlag
	}
	if *modelFlag != "" {
		cfg.Model = *modelFlag
	}
	if *baseURLFlag != "" {
		cfg.BaseURL = *baseURLFlag
	}

	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// The TUI owns the terminal, so logs go to a rotating file.
	logger, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logger.Sync()

	// Resolve provider. Env vars are read here and passed as values.
	answerer, err := resolveProvider(ctx, cfg.Provider, *apiKey, cfg.BaseURL,
		os.Getenv("DEEPSEEK_API_KEY"), os.Getenv("GEMINI_API_KEY"))
	if err != nil {
		return err
	}

	answerFn := func(ctx context.Context, req proofpad.AnswerRequest) (proofpad.AnswerResponse, error) {
		start := time.Now()
		logger.Info("answer request",
			zap.String("model", req.Model),
			zap.Int("messages", len(req.Messages)),
			zap.Bool("latex", req.LaTeX != ""),
		)
		resp, err := answerer.Answer(ctx, req)
		if err != nil {
			logger.Error("answer failed",
				zap.Duration("elapsed", time.Since(start)),
				zap.Error(err),
			)
			return resp, err
		}
		logger.Info("answer received",
			zap.Duration("elapsed", time.Since(start)),
			zap.Int("content_len", len(resp.RawContent)),
		)
		return resp, nil
	}

	engine := proofpad.NewEngine()
	theme := proofpad.DefaultTheme()
	tuiConfig := bt.Config{
		ModelName:    cfg.Model,
		TickInterval: time.Duration(cfg.TickIntervalMS) * time.Millisecond,
	}
	tuiModel := bt.New(answerFn, engine, theme, tuiConfig)

	if err := bt.Run(ctx, tuiModel); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	return nil
}

// newLogger builds a zap logger writing to a rotating file. path empty
// uses ~/.proofpad/proofpad.log.
func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		path = filepath.Join(home, ".proofpad", "proofpad.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("log dir: %w", err)
	}

	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
	})
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		sink,
		zap.InfoLevel,
	)
	return zap.New(core), nil
}
