package main

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/golang-migrate/migrate/v4"
)

type fakeMigrator struct {
	calls   []string
	forced  int
	upErr   error
	version uint
	closed  bool
}

func (f *fakeMigrator) Up() error {
	f.calls = append(f.calls, "up")
	return f.upErr
}

func (f *fakeMigrator) Down() error {
	f.calls = append(f.calls, "down")
	return nil
}

func (f *fakeMigrator) Force(version int) error {
	f.calls = append(f.calls, "force")
	f.forced = version
	return nil
}

func (f *fakeMigrator) Version() (uint, bool, error) {
	if f.version == 0 {
		return 0, false, migrate.ErrNilVersion
	}
	return f.version, false, nil
}

func (f *fakeMigrator) Close() (error, error) {
	f.closed = true
	return nil, nil
}

func TestRun_DefaultsToUp(t *testing.T) {
	m := &fakeMigrator{}
	if err := run(m, nil); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if len(m.calls) != 1 || m.calls[0] != "up" {
		t.Fatalf("calls = %v, want [up]", m.calls)
	}
}

func TestRun_NoChangeIsSuccess(t *testing.T) {
	m := &fakeMigrator{upErr: migrate.ErrNoChange}
	if err := run(m, []string{"up"}); err != nil {
		t.Fatalf("run error: %v", err)
	}
}

func TestRun_PropagatesFailure(t *testing.T) {
	boom := errors.New("boom")
	m := &fakeMigrator{upErr: boom}
	if err := run(m, []string{"up"}); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

func TestRun_Force(t *testing.T) {
	m := &fakeMigrator{}
	if err := run(m, []string{"force", "2"}); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if m.forced != 2 {
		t.Fatalf("forced = %d, want 2", m.forced)
	}
	if err := run(m, []string{"force"}); err == nil {
		t.Fatalf("expected error without version")
	}
	if err := run(m, []string{"force", "x"}); err == nil {
		t.Fatalf("expected error for invalid version")
	}
}

func TestRun_Down(t *testing.T) {
	m := &fakeMigrator{}
	if err := run(m, []string{"down"}); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if len(m.calls) != 1 || m.calls[0] != "down" {
		t.Fatalf("calls = %v, want [down]", m.calls)
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	if err := run(&fakeMigrator{}, []string{"sideways"}); err == nil {
		t.Fatalf("expected error for unknown command")
	}
}

func TestExecute_ClosesMigrator(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	ok := &fakeMigrator{version: 2}
	if code := execute(log, ok, []string{"up"}); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !ok.closed {
		t.Fatalf("migrator not closed after success")
	}

	failed := &fakeMigrator{upErr: errors.New("boom")}
	if code := execute(log, failed, []string{"up"}); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !failed.closed {
		t.Fatalf("migrator not closed after failure")
	}

	unknown := &fakeMigrator{}
	if code := execute(log, unknown, []string{"sideways"}); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !unknown.closed {
		t.Fatalf("migrator not closed after usage error")
	}
}
