// Package telemetry reports scaffold runs to New Relic. It is switched on by setting
// NEW_RELIC_LICENSE_KEY; without a license key every method is a no-op.
package telemetry

import (
	"fmt"
	"os"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
)

const (
	// LicenseEnv names the environment variable holding the license key.
	LicenseEnv = "NEW_RELIC_LICENSE_KEY"

	// GenerationEvent is the custom event type recorded once per generated module.
	GenerationEvent = "PycraftGeneration"
)

// Recorder owns the agent application. A nil Recorder, or one created without a
// license key, records nothing.
type Recorder struct {
	app *newrelic.Application
}

// New starts the agent for appName when a license key is present. Extra config
// options are applied after the name and license.
func New(appName string, opts ...newrelic.ConfigOption) (*Recorder, error) {
	license := os.Getenv(LicenseEnv)
	if license == "" {
		return &Recorder{}, nil
	}

	config := []newrelic.ConfigOption{
		newrelic.ConfigAppName(appName),
		newrelic.ConfigLicense(license),
	}
	app, err := newrelic.NewApplication(append(config, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to start telemetry: %w", err)
	}
	return &Recorder{app: app}, nil
}

// Enabled reports whether runs are being recorded.
func (r *Recorder) Enabled() bool {
	return r != nil && r.app != nil
}

// StartRun opens a transaction covering one command invocation.
func (r *Recorder) StartRun(name string) *Run {
	if !r.Enabled() {
		return &Run{}
	}
	return &Run{txn: r.app.StartTransaction(name)}
}

// RecordGeneration records a custom event describing a generated module.
func (r *Recorder) RecordGeneration(attributes map[string]any) {
	if !r.Enabled() {
		return
	}
	r.app.RecordCustomEvent(GenerationEvent, attributes)
}

// Shutdown flushes pending data, waiting at most timeout.
func (r *Recorder) Shutdown(timeout time.Duration) {
	if !r.Enabled() {
		return
	}
	r.app.Shutdown(timeout)
}

// Run is a single recorded invocation.
type Run struct {
	txn *newrelic.Transaction
}

// Segment starts a timed segment and returns the function that ends it.
//
//	defer run.Segment("render")()
func (r *Run) Segment(name string) func() {
	if r == nil || r.txn == nil {
		return func() {}
	}
	return r.txn.StartSegment(name).End
}

// Attribute adds a custom attribute to the run.
func (r *Run) Attribute(key string, value any) {
	if r == nil || r.txn == nil {
		return
	}
	r.txn.AddAttribute(key, value)
}

// Fail marks the run as errored.
func (r *Run) Fail(err error) {
	if r == nil || r.txn == nil || err == nil {
		return
	}
	r.txn.NoticeError(err)
}

// End closes the run.
func (r *Run) End() {
	if r == nil || r.txn == nil {
		return
	}
	r.txn.End()
}
