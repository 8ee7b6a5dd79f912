// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package daemons

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/codetrail-dev/codetrail/shared"
	"go.uber.org/fx"
)

const defaultSyncInterval = 6 * time.Hour

type DaemonRunner struct {
	ruleRepositoryRepository shared.RuleRepositoryRepository
	ruleService              shared.RuleService
	projectRepository        shared.ProjectRepository
	projectService           shared.ProjectService

	cancel context.CancelFunc
}

func NewDaemonRunner(
	ruleRepositoryRepository shared.RuleRepositoryRepository,
	ruleService shared.RuleService,
	projectRepository shared.ProjectRepository,
	projectService shared.ProjectService,
) *DaemonRunner {
	return &DaemonRunner{
		ruleRepositoryRepository: ruleRepositoryRepository,
		ruleService:              ruleService,
		projectRepository:        projectRepository,
		projectService:           projectService,
	}
}

func (runner *DaemonRunner) runDaemons(ctx context.Context) {
	slog.Info("starting background jobs", "time", time.Now())

	if err := SyncRuleRepositories(ctx, runner.ruleRepositoryRepository, runner.ruleService); err != nil {
		slog.Error("rule repository sync daemon failed", "err", err)
	}
	if err := RecalculateRiskMetrics(runner.projectRepository, runner.projectService); err != nil {
		slog.Error("risk recalculation daemon failed", "err", err)
	}
}

// Start loops the background jobs every RULES_SYNC_INTERVAL (default 6h)
// until the fx app stops.
func (runner *DaemonRunner) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	runner.cancel = cancel

	go func() {
		ticker := time.NewTicker(syncInterval())
		defer ticker.Stop()

		runner.runDaemons(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runner.runDaemons(ctx)
			}
		}
	}()
}

func (runner *DaemonRunner) Stop() {
	if runner.cancel != nil {
		runner.cancel()
	}
}

func syncInterval() time.Duration {
	raw := os.Getenv("RULES_SYNC_INTERVAL")
	if raw == "" {
		return defaultSyncInterval
	}
	interval, err := time.ParseDuration(raw)
	if err != nil {
		slog.Error("invalid RULES_SYNC_INTERVAL, using default", "value", raw, "default", defaultSyncInterval)
		return defaultSyncInterval
	}
	return interval
}

var Module = fx.Options(
	fx.Provide(NewDaemonRunner),
	fx.Invoke(func(lc fx.Lifecycle, runner *DaemonRunner) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				runner.Start()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				runner.Stop()
				return nil
			},
		})
	}),
)
