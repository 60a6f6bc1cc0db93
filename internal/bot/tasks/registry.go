package tasks

import (
	"context"

	"github.com/edgard/savdobot/internal/config"
	"github.com/edgard/savdobot/internal/moderation"
)

// ScheduledTaskFunc defines the standard signature for all scheduled tasks.
// The context provided by the scheduler should be respected for cancellation.
type ScheduledTaskFunc func(ctx context.Context) error

// RegisterAllTasks returns every task keyed by the name used in the
// scheduler section of the config. Working-hours tasks are only registered
// when working hours are enabled.
func RegisterAllTasks(deps TaskDeps) map[string]ScheduledTaskFunc {
	tasks := make(map[string]ScheduledTaskFunc)

	tasks[config.TaskSQLMaintenance] = newSQLMaintenanceTask(deps)
	tasks[config.TaskSpamReportCleanup] = newSpamReportCleanupTask(deps)

	if deps.Hours != nil {
		tasks[config.TaskHoursOpen] = newHoursOpenTask(deps)
		tasks[config.TaskHoursClose] = newHoursCloseTask(deps)
	}

	deps.Logger.Info("Initialized scheduled tasks", "count", len(tasks))
	return tasks
}

// ResolveSchedules returns a copy of cfg in which the working-hours tasks
// take their cron specs from hours. Without hours they are disabled.
func ResolveSchedules(cfg config.SchedulerConfig, hours *moderation.WorkingHours) config.SchedulerConfig {
	resolved := config.SchedulerConfig{Tasks: make(map[string]config.TaskConfig, len(cfg.Tasks))}
	for name, task := range cfg.Tasks {
		resolved.Tasks[name] = task
	}

	for name, spec := range map[string]func() string{
		config.TaskHoursOpen:  func() string { return hours.OpenCron() },
		config.TaskHoursClose: func() string { return hours.CloseCron() },
	} {
		task, ok := resolved.Tasks[name]
		if !ok {
			continue
		}
		if hours == nil {
			task.Enabled = false
		} else {
			task.Schedule = spec()
		}
		resolved.Tasks[name] = task
	}
	return resolved
}
