package main

import (
	"context"
	"fmt"

	"homeinsight-catalog/internal/media"
	"homeinsight-catalog/internal/search"
	"homeinsight-catalog/internal/tui"
	"homeinsight-catalog/pkg/logger"

	tea "github.com/charmbracelet/bubbletea"
)

func runBrowser(ctx context.Context, e *env, opts *rootOptions) error {
	credential := e.session.Token
	if opts.anonymous {
		credential = func() string { return "" }
	}

	changes, onChange := tui.ChangeSignal()
	coordinator := search.NewCoordinator(search.Options{
		Source:     e.client,
		Credential: credential,
		Debounce:   e.cfg.Client.Debounce,
		OnChange:   onChange,
	})
	defer coordinator.Close()

	model := tui.New(tui.Options{
		Controller:    coordinator,
		Changes:       changes,
		Resolver:      media.NewResolver(e.cfg.Media.BaseURL),
		Authenticated: credential() != "",
	})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %v", err)
	}
	logger.GlobalLogger.Println("Catalog browser exited")
	return nil
}
