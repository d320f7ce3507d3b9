// Package logging adapts go.uber.org/zap's SugaredLogger to core.Logger,
// keeping the estimator and renderer packages decoupled from a concrete
// logging library (spec.md AMBIENT STACK, and the same seam the teacher
// draws around its own pkg/core/interfaces.go Logger contract).
package logging

import (
	"go.uber.org/zap"

	"github.com/nragsdale/voltrace/pkg/core"
)

// Zap wraps a *zap.SugaredLogger as a core.Logger.
type Zap struct {
	sugar *zap.SugaredLogger
}

// NewProduction builds a Zap logger suitable for CLI use: zap's
// development config, i.e. human-readable console output at Debug and
// above.
func NewProduction() (*Zap, error) {
	cfg := zap.NewDevelopmentConfig()
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Zap{sugar: l.Sugar()}, nil
}

// Nop returns a Logger that discards everything, the default for tests.
func Nop() *Zap {
	return &Zap{sugar: zap.NewNop().Sugar()}
}

func (z *Zap) Debugf(format string, args ...interface{}) { z.sugar.Debugf(format, args...) }
func (z *Zap) Warnf(format string, args ...interface{})  { z.sugar.Warnf(format, args...) }
func (z *Zap) Errorf(format string, args ...interface{}) { z.sugar.Errorf(format, args...) }

var _ core.Logger = (*Zap)(nil)
