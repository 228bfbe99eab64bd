package diagnostic

import (
	"go.uber.org/zap"

	"bridgegen/types"
)

// Skip is one declaration dropped on an ignorable conversion failure.
type Skip struct {
	// Namespace locates the dropped declaration.
	Namespace types.Namespace
	// Name is the declaration's identifier, best effort.
	Name string
	// Reason is the conversion failure that caused the drop.
	Reason error
}

// Reporter collects skipped declarations for one compiler invocation.
type Reporter struct {
	log   *zap.Logger
	skips []Skip
}

// NewReporter creates a Reporter logging through log. A nil logger is
// replaced with a nop logger, keeping the library silent unless the
// embedding driver injects one.
func NewReporter(log *zap.Logger) *Reporter {
	if log == nil {
		log = zap.NewNop()
	}

	return &Reporter{log: log}
}

// Skip records one dropped declaration.
func (r *Reporter) Skip(ns types.Namespace, name string, reason error) {
	r.skips = append(r.skips, Skip{Namespace: ns, Name: name, Reason: reason})
	r.log.Debug("skipped declaration",
		zap.String("namespace", ns.String()),
		zap.String("name", name),
		zap.Error(reason))
}

// Skips returns every recorded drop in encounter order.
func (r *Reporter) Skips() []Skip {
	return r.skips
}

// HasSkips reports whether anything was dropped.
func (r *Reporter) HasSkips() bool {
	return len(r.skips) > 0
}
