package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

type recordingLogger struct {
	fields   []map[string]any
	contexts []context.Context
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	r.fields = append(r.fields, copied)
	return r
}

func (r *recordingLogger) WithContext(ctx context.Context) interfaces.Logger {
	r.contexts = append(r.contexts, ctx)
	return r
}

type stubProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (s *stubProvider) GetLogger(name string) interfaces.Logger {
	s.requested = append(s.requested, name)
	return s.logger
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "portfolio.test")
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger fallback, got %T", logger)
	}
	logger = logger.WithContext(context.Background())
	logger.Debug("noop")
}

func TestModuleLoggerUsesProviderAndAnnotatesFields(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = ModuleLogger(provider, contentModule)

	if len(provider.requested) != 1 || provider.requested[0] != contentModule {
		t.Fatalf("expected module %s, got %v", contentModule, provider.requested)
	}
	if len(rec.fields) != 1 {
		t.Fatalf("expected module fields to be applied once, got %d", len(rec.fields))
	}
	if got := rec.fields[0]["module"]; got != contentModule {
		t.Fatalf("expected module field %s, got %v", contentModule, got)
	}
}

func TestModuleLoggerDefaultsToRootModule(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = ModuleLogger(provider, "")

	if len(provider.requested) != 1 || provider.requested[0] != rootModule {
		t.Fatalf("expected default module %s, got %v", rootModule, provider.requested)
	}
}

func TestNamedModuleLoggers(t *testing.T) {
	cases := map[string]func(interfaces.LoggerProvider) interfaces.Logger{
		contentModule: ContentLogger,
		themesModule:  ThemesLogger,
		watchModule:   WatchLogger,
		cacheModule:   CacheLogger,
		cliModule:     CLILogger,
	}
	for module, build := range cases {
		provider := &stubProvider{logger: &recordingLogger{}}
		_ = build(provider)
		if len(provider.requested) == 0 || provider.requested[0] != module {
			t.Fatalf("expected %s request, got %v", module, provider.requested)
		}
	}
}

func TestWithContentContextSkipsEmptyValues(t *testing.T) {
	rec := &recordingLogger{}

	WithContentContext(rec, "blog", " ", "hello-world")

	if len(rec.fields) != 1 {
		t.Fatalf("expected one WithFields call, got %d", len(rec.fields))
	}
	fields := rec.fields[0]
	if fields[fieldContentType] != "blog" {
		t.Fatalf("expected content type blog, got %v", fields[fieldContentType])
	}
	if _, ok := fields[fieldContentPath]; ok {
		t.Fatalf("expected empty path to be skipped: %v", fields)
	}
	if fields[fieldContentSlug] != "hello-world" {
		t.Fatalf("expected slug hello-world, got %v", fields[fieldContentSlug])
	}
}

func TestWithOperationSkipsBlankNames(t *testing.T) {
	rec := &recordingLogger{}

	WithOperation(rec, "  ")
	if len(rec.fields) != 0 {
		t.Fatalf("expected blank operation to be skipped, got %v", rec.fields)
	}

	WithOperation(rec, "posts")
	if len(rec.fields) != 1 || rec.fields[0][fieldOperation] != "posts" {
		t.Fatalf("expected operation field, got %v", rec.fields)
	}
}

func TestContextFieldsAreMerged(t *testing.T) {
	ctx := ContextWithFields(context.Background(), map[string]any{"build_id": "b1"})
	ctx = ContextWithFields(ctx, map[string]any{"content_type": "blog"})

	fields := ContextFields(ctx)
	if fields["build_id"] != "b1" || fields["content_type"] != "blog" {
		t.Fatalf("expected merged fields, got %v", fields)
	}

	fields["build_id"] = "mutated"
	if ContextFields(ctx)["build_id"] != "b1" {
		t.Fatalf("expected ContextFields to return a copy")
	}
}
