package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"hospitalfood/internal/client/api"
	"hospitalfood/internal/client/config"
	"hospitalfood/internal/client/lifecycle"
	"hospitalfood/internal/client/tui"
	"hospitalfood/internal/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the dashboard YAML config")
	initConfig := flag.Bool("init", false, "write an example config to -config and exit")
	flag.Parse()

	if *initConfig {
		if err := writeExample(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", *configPath)
		return
	}

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if !cfg.HasCredentials() {
		return fmt.Errorf("no credentials: set email and password in %s or %s and %s",
			configPath, config.EnvEmail, config.EnvPassword)
	}

	// the terminal belongs to the dashboard, so logs go to a file
	l, err := logger.New(logger.Options{
		Level:       cfg.LogLevel,
		Encoding:    "json",
		OutputPaths: []string{cfg.LogFile},
	})
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	session := api.NewSession("")
	client, err := api.New(cfg.API.BaseURL, session,
		api.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}),
		api.WithLogger(l),
	)
	if err != nil {
		return err
	}

	ctx := context.Background()
	login, err := client.Login(ctx, cfg.Email, cfg.Password)
	if err != nil {
		return fmt.Errorf("sign in as %s: %w", cfg.Email, err)
	}
	session.Set(login.Token)
	l.Info("signed in", zap.String("staff_id", login.User.ID.String()), zap.Stringer("role", login.User.Role))

	mode := tui.ModeFor(login.Role)
	if cfg.Mode != "" {
		if mode, err = tui.ParseMode(cfg.Mode); err != nil {
			return err
		}
	}

	board := &tui.NoticeBoard{}
	coord := lifecycle.New(client, board, l)
	return tui.Run(tui.New(coord, board, mode))
}

func writeExample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(config.Example), 0o600)
}
