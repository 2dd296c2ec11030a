package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/pkg/profile"
)

var profileMode = map[string]func(*profile.Profile){
	"block":     profile.BlockProfile,
	"cpu":       profile.CPUProfile,
	"clock":     profile.ClockProfile,
	"goroutine": profile.GoroutineProfile,
	"mem":       profile.MemProfile,
	"allocs":    profile.MemProfileAllocs,
	"heap":      profile.MemProfileHeap,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

// profileModes returns the supported --profile values
func profileModes() []string {
	return slices.Sorted(maps.Keys(profileMode))
}

// startProfile starts profiling in the given mode; an empty mode does nothing
func startProfile(mode, dir string) (stop func(), err error) {
	if mode == "" {
		return func() {}, nil
	}
	fn, ok := profileMode[mode]
	if !ok {
		return nil, fmt.Errorf("unknown profile mode %q", mode)
	}
	p := profile.Start(fn, profile.ProfilePath(dir), profile.Quiet, profile.NoShutdownHook)
	return p.Stop, nil
}
