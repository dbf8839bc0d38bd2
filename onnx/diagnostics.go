package onnx

import (
	"fmt"

	"github.com/gomlx/gomlx/pkg/support/sets"
	"k8s.io/klog/v2"
)

// Diagnostics collects the warnings and errors of one conversion run.
//
// Each distinct message is logged at most once; repeated messages are dropped. A Diagnostics
// is not safe for concurrent use, conversion is single-threaded.
type Diagnostics struct {
	seen     sets.Set[string]
	messages []string
	errors   int

	// Quiet disables logging through klog. Messages are still recorded.
	Quiet bool
}

// NewDiagnostics returns an empty Diagnostics.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{seen: sets.Make[string]()}
}

// record returns false if msg was already emitted.
func (d *Diagnostics) record(msg string) bool {
	if d.seen == nil {
		d.seen = sets.Make[string]()
	}
	if d.seen.Has(msg) {
		return false
	}
	d.seen.Insert(msg)
	d.messages = append(d.messages, msg)
	return true
}

// Warnf emits a warning, unless the same message was already emitted during this run.
func (d *Diagnostics) Warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if d.record(msg) && !d.Quiet {
		klog.Warning(msg)
	}
}

// Errorf reports a recoverable item error. Like warnings, each distinct message is emitted once,
// but every call is counted.
func (d *Diagnostics) Errorf(format string, args ...any) {
	d.errors++
	msg := fmt.Sprintf(format, args...)
	if d.record(msg) && !d.Quiet {
		klog.Error(msg)
	}
}

// Messages returns the distinct messages emitted so far, in order.
func (d *Diagnostics) Messages() []string {
	return d.messages
}

// ErrorCount returns the number of Errorf calls.
func (d *Diagnostics) ErrorCount() int {
	return d.errors
}
