package commands

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/DrSkyle/graphpad/pkg/editor"
	"github.com/DrSkyle/graphpad/pkg/telemetry"
	"github.com/DrSkyle/graphpad/pkg/tui"
	"github.com/DrSkyle/graphpad/pkg/version"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the graph editor (default)",
	RunE:  runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logFile, err := telemetry.OpenLogFile(cfg.Log)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := telemetry.NewLogger(logFile, cfg.Log)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(ctx, version.AppName, version.Current, cfg.Telemetry.Endpoint)
		if err != nil {
			logger.Warn("Telemetry disabled", "error", err)
		} else {
			defer func() {
				sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(sctx); err != nil {
					logger.Warn("Telemetry shutdown failed", "error", err)
				}
			}()
		}
	}

	session := editor.NewSession(ctx, editor.WithLogger(logger))
	logger.Info("Editor starting", "version", version.Current, "log_file", telemetry.LogPath(cfg.Log))

	p := tea.NewProgram(tui.NewModel(session, cfg, logger), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("editor exited: %w", err)
	}

	f := session.Frame()
	logger.Info("Editor closed", "nodes", len(f.Nodes), "edges", len(f.Edges))
	return nil
}
