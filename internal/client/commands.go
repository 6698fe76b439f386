package client

import (
	"fmt"
	"slices"
)

// Command names accepted by the CLI.
const (
	CommandApps    = "apps"
	CommandIDs     = "ids"
	CommandApp     = "app"
	CommandResolve = "resolve"
	CommandGPU     = "gpu"
	CommandSync    = "sync"
	CommandSearch  = "search"
	CommandWatch   = "watch"
	CommandBrowse  = "browse"
	CommandVersion = "version"
)

var commands = []string{
	CommandApps, CommandIDs, CommandApp, CommandResolve, CommandGPU,
	CommandSync, CommandSearch, CommandWatch, CommandBrowse, CommandVersion,
}

// storeCommands read or write the local catalog index.
var storeCommands = []string{CommandSync, CommandSearch, CommandWatch}

// NeedsStore reports whether the command named by args[0] uses the local
// catalog index.
func NeedsStore(args []string) bool {
	return len(args) > 0 && slices.Contains(storeCommands, args[0])
}

// Usage is the one-line synopsis printed for command errors.
func Usage() string {
	return fmt.Sprintf("usage: protontweaks [flags] <command> [argument]\ncommands: %v", commands)
}
