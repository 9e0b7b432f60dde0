package main

import (
	"runtime"
	"testing"
)

func TestResolveWorkers(t *testing.T) {
	t.Parallel()

	auto := max(1, min(runtime.GOMAXPROCS(0)/2, 8))

	tests := []struct {
		name       string
		flagWorker int
		envWorker  int
		want       int
	}{
		{"flag wins", 3, 6, 3},
		{"env used without flag", 0, 6, 6},
		{"env capped", 0, 100, maxWorkers},
		{"auto", 0, 0, auto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := resolveWorkers(tt.flagWorker, tt.envWorker); got != tt.want {
				t.Errorf("resolveWorkers(%d, %d) = %d, want %d", tt.flagWorker, tt.envWorker, got, tt.want)
			}
		})
	}
}
