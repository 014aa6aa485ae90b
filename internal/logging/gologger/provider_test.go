package gologger

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-portfolio/internal/logging"
)

func TestNewProviderHandsOutModuleLoggers(t *testing.T) {
	p, err := NewProvider(Config{Level: "debug", Format: "console", Focus: []string{"content"}})
	if err != nil {
		t.Fatalf("NewProvider returned error: %v", err)
	}
	if logger := p.GetLogger("portfolio.content"); logger == nil {
		t.Fatal("expected logger, got nil")
	}
}

func TestNewProviderRejectsUnknownFormat(t *testing.T) {
	if _, err := NewProvider(Config{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNilProviderFallsBackToNoOp(t *testing.T) {
	var p *Provider
	p.GetLogger("portfolio").Info("dropped")
}

func TestFocusModulesExpandsShortNames(t *testing.T) {
	got := FocusModules([]string{" content ", "portfolio.watch", "", "Content", "portfolio"})
	want := []string{"portfolio.content", "portfolio.watch", "portfolio"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("focus mismatch (-want +got):\n%s", diff)
	}
}

func TestFatalDoesNotExit(t *testing.T) {
	stub := &stubLogger{}
	wrap(stub).Fatal("content.read_failed", "content_type", "blog")

	if diff := cmp.Diff([]string{"error"}, stub.calls); diff != "" {
		t.Fatalf("calls mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{"content_type", "blog", "fatal", true}, stub.args[0]); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestWithFieldsClonesInput(t *testing.T) {
	stub := &stubLogger{}
	fields := map[string]any{"content_type": "blog"}
	wrap(stub).(*adapter).WithFields(fields)

	fields["content_type"] = "talks"
	if len(stub.fields) != 1 || stub.fields[0]["content_type"] != "blog" {
		t.Fatalf("expected fields to be cloned, got %#v", stub.fields)
	}
}

func TestWithContextCopiesContextFields(t *testing.T) {
	stub := &stubLogger{}
	ctx := logging.ContextWithFields(context.Background(), map[string]any{"slug": "hello"})

	wrap(stub).WithContext(ctx).Info("content.loaded")

	if len(stub.contexts) != 1 || stub.contexts[0] != ctx {
		t.Fatalf("expected context propagation, got %#v", stub.contexts)
	}
	if len(stub.fields) != 1 || stub.fields[0]["slug"] != "hello" {
		t.Fatalf("expected context fields, got %#v", stub.fields)
	}
	if diff := cmp.Diff([]string{"info"}, stub.calls); diff != "" {
		t.Fatalf("calls mismatch (-want +got):\n%s", diff)
	}
}

type stubLogger struct {
	calls    []string
	args     [][]any
	fields   []map[string]any
	contexts []context.Context
}

var _ glog.Logger = (*stubLogger)(nil)
var _ glog.FieldsLogger = (*stubLogger)(nil)

func (s *stubLogger) record(level string, args []any) {
	s.calls = append(s.calls, level)
	s.args = append(s.args, args)
}

func (s *stubLogger) Trace(_ string, args ...any) { s.record("trace", args) }
func (s *stubLogger) Debug(_ string, args ...any) { s.record("debug", args) }
func (s *stubLogger) Info(_ string, args ...any)  { s.record("info", args) }
func (s *stubLogger) Warn(_ string, args ...any)  { s.record("warn", args) }
func (s *stubLogger) Error(_ string, args ...any) { s.record("error", args) }
func (s *stubLogger) Fatal(_ string, args ...any) { s.record("fatal", args) }

func (s *stubLogger) WithContext(ctx context.Context) glog.Logger {
	s.contexts = append(s.contexts, ctx)
	return s
}

func (s *stubLogger) WithFields(fields map[string]any) glog.Logger {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	s.fields = append(s.fields, copied)
	return s
}
