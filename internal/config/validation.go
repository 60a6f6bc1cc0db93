package config

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/edgard/savdobot/internal/errors"
)

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return clockPattern.MatchString(fl.Field().String())
	})
	return v
}

// Validate checks struct tags and the rules that span several fields.
func (c *Config) Validate() error {
	if err := newValidator().Struct(c); err != nil {
		return apperrors.NewConfigError("invalid configuration", err)
	}

	if c.WorkingHours.Enabled && c.WorkingHours.Open == c.WorkingHours.Close {
		return apperrors.NewConfigError("working_hours.open and working_hours.close must differ", nil)
	}

	for name, task := range c.Scheduler.Tasks {
		if name == TaskHoursOpen || name == TaskHoursClose {
			continue
		}
		if task.Enabled && task.Schedule == "" {
			return apperrors.NewConfigError(fmt.Sprintf("scheduler task %s is enabled without a schedule", name), nil)
		}
	}

	return nil
}
