package main

// listener describes an event listener the plugin registers with the host.
type listener struct {
	Name string `json:"name"`
}

func listenerDescriptors() []listener {
	return []listener{{Name: "react"}}
}

// The plugin registers no slash commands and no scheduled jobs.
func commandDescriptors() []any { return []any{} }

func jobDescriptors() []any { return []any{} }
