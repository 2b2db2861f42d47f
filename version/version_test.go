package version

import (
	"strings"
	"testing"
)

func restore() func() {
	v, c, b := Version, GitCommit, BuildTime
	return func() { Version, GitCommit, BuildTime = v, c, b }
}

func TestGetUsesLinkerValues(t *testing.T) {
	defer restore()()
	Version = "1.2.3"
	GitCommit = "abc1234"
	BuildTime = "2026-01-01T00:00:00Z"

	info := Get()
	if info.Version != "1.2.3" {
		t.Errorf("expected 1.2.3, got %q", info.Version)
	}
	if info.GitCommit != "abc1234" {
		t.Errorf("expected abc1234, got %q", info.GitCommit)
	}
	if info.BuildTime != "2026-01-01T00:00:00Z" {
		t.Errorf("unexpected build time %q", info.BuildTime)
	}
}

func TestIsRelease(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want bool
	}{
		{"dev", Info{Version: "dev"}, false},
		{"tagged", Info{Version: "1.0.0"}, true},
		{"dirty tree", Info{Version: "1.0.0", Dirty: true}, false},
		{"dirty suffix", Info{Version: "1.0.0-dirty"}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.info.IsRelease(); got != tc.want {
				t.Errorf("IsRelease() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	s := Info{Version: "1.0.0", GitCommit: "abc1234", GoVersion: "go1.26", Dirty: true}.String()
	if s != "1.0.0 (abc1234-dirty, go1.26)" {
		t.Errorf("unexpected %q", s)
	}
	if !strings.Contains(Info{Version: "dev"}.String(), "unknown") {
		t.Error("expected unknown commit placeholder")
	}
}

func TestShortCommit(t *testing.T) {
	if shortCommit("0123456789abcdef") != "0123456" {
		t.Error("expected 7-char commit")
	}
	if shortCommit("abc") != "abc" {
		t.Error("expected short commit unchanged")
	}
}
