package du

import (
	"context"
	"testing"

	"github.com/FedericoCeratto/debian-slimmer/pkg/errors"
)

// stubMeasurer returns canned sizes per path and records calls.
type stubMeasurer struct {
	sizes map[string]int64
	fail  map[string]bool
	calls []string
}

func (m *stubMeasurer) Usage(ctx context.Context, path string) (int64, error) {
	m.calls = append(m.calls, path)
	if m.fail[path] {
		return 0, errors.New(errors.ErrCodeDUFailed, "stub failure for %s", path)
	}
	return m.sizes[path], nil
}

func TestVarSubtree(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/var/lib/mysql", true},
		{"/var/cache/apt", true},
		{"/var/log/nginx", true},
		{"/var/lib/mysql/data", false}, // too deep - parent already counted
		{"/var/spool/cron", false},     // not an accounted subtree
		{"/var/lib", false},            // the subtree root itself
		{"/usr/lib/foo", false},
		{"/var", false},
		{"relative/var/lib", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := varSubtree(tt.path)
			if ok != tt.want {
				t.Fatalf("varSubtree(%q) ok = %v, want %v", tt.path, ok, tt.want)
			}
			if ok && got != tt.path {
				t.Errorf("varSubtree(%q) = %q", tt.path, got)
			}
		})
	}
}

func TestExtra(t *testing.T) {
	m := &stubMeasurer{sizes: map[string]int64{
		"/var/lib/mysql": 1000,
		"/var/log/mysql": 200,
	}}
	v := &VarExplorer{Measure: m}

	files := []string{
		"/usr/bin/mysqld",
		"/var/lib/mysql",
		"/var/log/mysql",
		"/etc/mysql/my.cnf",
	}
	got := v.Extra(context.Background(), files)
	if got != 1200 {
		t.Errorf("Extra = %d, want 1200", got)
	}
	if len(m.calls) != 2 {
		t.Errorf("measured %d paths, want 2: %v", len(m.calls), m.calls)
	}
}

func TestExtraFailureContributesZero(t *testing.T) {
	m := &stubMeasurer{
		sizes: map[string]int64{"/var/lib/b": 500},
		fail:  map[string]bool{"/var/cache/a": true},
	}
	var logged int
	v := &VarExplorer{
		Measure: m,
		Log:     func(format string, args ...any) { logged++ },
	}

	got := v.Extra(context.Background(), []string{"/var/cache/a", "/var/lib/b"})
	if got != 500 {
		t.Errorf("Extra = %d, want 500 (failure contributes zero)", got)
	}
	if logged != 1 {
		t.Errorf("logged %d failures, want 1", logged)
	}
}
