package plugin

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ethanolivertroy/bundle-checker/internal/models"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) add(level string, msg interface{}) {
	l.lines = append(l.lines, level+": "+fmt.Sprint(msg))
}

func (l *recordingLogger) Debug(msg interface{}, _ ...interface{}) { l.add("debug", msg) }
func (l *recordingLogger) Info(msg interface{}, _ ...interface{})  { l.add("info", msg) }
func (l *recordingLogger) Warn(msg interface{}, _ ...interface{})  { l.add("warn", msg) }
func (l *recordingLogger) Error(msg interface{}, _ ...interface{}) { l.add("error", msg) }

func (l *recordingLogger) contains(s string) bool {
	for _, line := range l.lines {
		if strings.Contains(line, s) {
			return true
		}
	}
	return false
}

type fakeHost struct {
	name string
	done DoneFunc
}

func (h *fakeHost) TapDone(name string, fn DoneFunc) {
	h.name = name
	h.done = fn
}

func compilation(resources ...string) Compilation {
	c := Compilation{}
	for _, r := range resources {
		c.Modules = append(c.Modules, Module{Resource: r})
	}
	return c
}

func TestApplyRegistersHook(t *testing.T) {
	host := &fakeHost{}
	New(nil, &recordingLogger{}).Apply(host)
	if host.name != Name || host.done == nil {
		t.Fatalf("expected hook registration, got %+v", host)
	}

	outcome := host.done(compilation("/app/src/index.js"))
	if outcome.Status != models.StatusSuccess {
		t.Fatalf("expected success with default options, got %+v", outcome)
	}
}

func TestProcess(t *testing.T) {
	tests := []struct {
		name       string
		options    map[string]any
		modules    Compilation
		wantStatus models.Status
		wantLog    string
	}{
		{
			name:       "mandatory bundled",
			options:    map[string]any{"mandatoryDependencies": []string{"react"}},
			modules:    compilation("/app/node_modules/react/index.js"),
			wantStatus: models.StatusSuccess,
			wantLog:    "result: SUCCESS",
		},
		{
			name:       "virtual modules are skipped",
			options:    map[string]any{"mandatoryDependencies": []string{"react"}},
			modules:    Compilation{Modules: []Module{{}, {Resource: ""}}},
			wantStatus: models.StatusWarning,
			wantLog:    "warn: Mandatory dependencies not included: react",
		},
		{
			name:       "disallowed bundled with failOnInvalid",
			options:    map[string]any{"disallowedDependencies": []any{"moment"}, "failOnInvalid": true},
			modules:    compilation(`C:\app\node_modules\moment\moment.js`),
			wantStatus: models.StatusFailure,
			wantLog:    "error: Disallowed dependencies included: moment",
		},
		{
			name:       "non-collection option",
			options:    map[string]any{"mandatoryDependencies": "react"},
			modules:    compilation("/app/node_modules/react/index.js"),
			wantStatus: models.StatusFailure,
			wantLog:    "error: Mandatory dependencies should be an array, but are string",
		},
		{
			name:       "overlap fails even when advisory",
			options:    map[string]any{"mandatoryDependencies": []string{"a"}, "disallowedDependencies": []string{"a"}},
			modules:    compilation("/app/node_modules/a/index.js"),
			wantStatus: models.StatusFailure,
			wantLog:    "mandatory and disallowed at the same time: a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &recordingLogger{}
			outcome := New(tt.options, logger).Process(tt.modules)
			if outcome.Status != tt.wantStatus {
				t.Fatalf("status = %v, want %v", outcome.Status, tt.wantStatus)
			}
			if !logger.contains(tt.wantLog) {
				t.Fatalf("expected %q in log:\n%s", tt.wantLog, strings.Join(logger.lines, "\n"))
			}
		})
	}
}
