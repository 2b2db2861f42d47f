package component

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type recorder struct {
	started []string
	stopped []string
}

func (r *recorder) component(name string, startErr, stopErr error) Func {
	return Func{
		ID: name,
		StartFn: func(context.Context) error {
			r.started = append(r.started, name)
			return startErr
		},
		StopFn: func(context.Context) error {
			r.stopped = append(r.stopped, name)
			return stopErr
		},
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := NewRegistry(nil)
	if err := r.Register(Func{ID: "a"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := r.Register(Func{ID: "a"}); err == nil {
		t.Error("expected error for duplicate registration")
	}
	if got := r.Get("a"); got == nil || got.Name() != "a" {
		t.Errorf("expected to get component a, got %v", got)
	}
	if r.Get("missing") != nil {
		t.Error("expected nil for unknown component")
	}
}

func TestStartStopOrder(t *testing.T) {
	rec := &recorder{}
	r := NewRegistry(nil)
	for _, name := range []string{"telemetry", "reloader", "extra"} {
		if err := r.Register(rec.component(name, nil, nil)); err != nil {
			t.Fatal(err)
		}
	}

	if err := r.StartAll(context.Background()); err != nil {
		t.Fatalf("StartAll failed: %v", err)
	}
	if err := r.StopAll(context.Background()); err != nil {
		t.Fatalf("StopAll failed: %v", err)
	}

	if want := []string{"telemetry", "reloader", "extra"}; !reflect.DeepEqual(rec.started, want) {
		t.Errorf("start order = %v, want %v", rec.started, want)
	}
	if want := []string{"extra", "reloader", "telemetry"}; !reflect.DeepEqual(rec.stopped, want) {
		t.Errorf("stop order = %v, want %v", rec.stopped, want)
	}
	if want := []string{"telemetry", "reloader", "extra"}; !reflect.DeepEqual(r.Names(), want) {
		t.Errorf("names = %v, want %v", r.Names(), want)
	}
}

func TestStartAllSkipsStarted(t *testing.T) {
	rec := &recorder{}
	r := NewRegistry(nil)
	_ = r.Register(rec.component("first", nil, nil))
	if err := r.StartAll(context.Background()); err != nil {
		t.Fatal(err)
	}
	_ = r.Register(rec.component("second", nil, nil))
	if err := r.StartAll(context.Background()); err != nil {
		t.Fatal(err)
	}
	if want := []string{"first", "second"}; !reflect.DeepEqual(rec.started, want) {
		t.Errorf("start order = %v, want %v", rec.started, want)
	}
}

func TestStartFailureStopsOnlyStarted(t *testing.T) {
	rec := &recorder{}
	boom := errors.New("boom")
	r := NewRegistry(nil)
	_ = r.Register(rec.component("ok", nil, nil))
	_ = r.Register(rec.component("bad", boom, nil))
	_ = r.Register(rec.component("never", nil, nil))

	err := r.StartAll(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if err := r.StopAll(context.Background()); err != nil {
		t.Fatalf("StopAll failed: %v", err)
	}
	if want := []string{"ok"}; !reflect.DeepEqual(rec.stopped, want) {
		t.Errorf("stopped = %v, want %v", rec.stopped, want)
	}
}

func TestStopAllJoinsErrors(t *testing.T) {
	rec := &recorder{}
	e1, e2 := errors.New("e1"), errors.New("e2")
	r := NewRegistry(nil)
	_ = r.Register(rec.component("a", nil, e1))
	_ = r.Register(rec.component("b", nil, e2))
	_ = r.StartAll(context.Background())

	err := r.StopAll(context.Background())
	if !errors.Is(err, e1) || !errors.Is(err, e2) {
		t.Errorf("expected joined errors, got %v", err)
	}
	if err := r.StopAll(context.Background()); err != nil {
		t.Errorf("second StopAll should be a no-op, got %v", err)
	}
}

func TestFuncNilHooks(t *testing.T) {
	f := Func{ID: "noop"}
	if err := f.Start(context.Background()); err != nil {
		t.Error(err)
	}
	if err := f.Stop(context.Background()); err != nil {
		t.Error(err)
	}
}
