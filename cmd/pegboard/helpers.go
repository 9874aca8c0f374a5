package main

import (
	"pegboard/internal/library"
)

// resolvePlatforms expands a command's platform argument: empty or "all"
// selects every discovered platform, anything else selects one by key or
// directory name.
func resolvePlatforms(resourceRoot, arg string) ([]library.Platform, error) {
	if arg == "" || arg == "all" {
		return library.Discover(resourceRoot)
	}
	platform, err := library.Find(resourceRoot, arg)
	if err != nil {
		return nil, err
	}
	return []library.Platform{platform}, nil
}

func platformArg(args []string) string {
	if len(args) == 0 {
		return "all"
	}
	return args[0]
}
