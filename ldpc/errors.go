package ldpc

import (
	"errors"
	"fmt"

	"github.com/dnbaker/distance/internal/baseblock"
)

// ErrInvalidConfiguration is matched (via errors.Is) by every configuration error.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ConfigError describes a rejected Config.
//
// It matches ErrInvalidConfiguration. The underlying error (if any) can be accessed
// via errors.Unwrap.
type ConfigError struct {
	RowLen     int
	OnesPerRow int
	Height     int
	Reason     string
	cause      error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s (rowlen=%d, ones_per_row=%d, height=%d)",
		ErrInvalidConfiguration, e.Reason, e.RowLen, e.OnesPerRow, e.Height)
}

// Unwrap returns the sentinel and the underlying cause.
func (e *ConfigError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrInvalidConfiguration}
	}
	return []error{ErrInvalidConfiguration, e.cause}
}

func newConfigError(cfg Config, reason string) *ConfigError {
	return &ConfigError{
		RowLen:     cfg.RowLen,
		OnesPerRow: cfg.OnesPerRow,
		Height:     cfg.Height,
		Reason:     reason,
	}
}

// translateError maps errors from internal packages onto the public taxonomy.
func translateError(cfg Config, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, baseblock.ErrNotDivisible):
		e := newConfigError(cfg, reasonNotDivisible)
		e.cause = err
		return e
	case errors.Is(err, baseblock.ErrInvalidShape):
		e := newConfigError(cfg, reasonNonPositive)
		e.cause = err
		return e
	}

	return err
}
