package main

import "runtime"

// resolveWorkers picks the render worker count.
// Priority: explicit flag > DEVLOFT_WORKERS > GOMAXPROCS/2 clamped to 1..8.
func resolveWorkers(flagWorkers, envWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}
	if envWorkers > 0 {
		return min(envWorkers, maxWorkers)
	}

	// GOMAXPROCS is already adjusted by automaxprocs for containers
	n := runtime.GOMAXPROCS(0) / 2
	return max(1, min(n, 8))
}
