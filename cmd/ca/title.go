package main

func windowTitle(simName string) string {
	if simName == "" {
		return "sandcastle"
	}
	return "sandcastle - " + simName
}
