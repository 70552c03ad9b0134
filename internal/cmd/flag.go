package cmd

import "github.com/guttosm/pickship/internal/service"

// Flags holds the values bound to command-line flags.
type Flags struct {
	Capacity  float64
	Output    string
	LogLevel  string
	LogPretty bool

	Port string
}

var flagMap = FlagMap{
	Capacity: FlagSet[float64]{
		Name:  "capacity",
		Usage: "Maximum total weight of a single box.",
		Value: service.DefaultCapacity,
	},
	Output: FlagSet[string]{
		Name:  "output",
		Usage: "Write the pick-ship report to this file instead of stdout.",
		Value: "",
	},
	LogLevel: FlagSet[string]{
		Name:  "log-level",
		Usage: "Log level (debug, info, warn, error).",
		Value: "info",
	},
	LogPretty: FlagSet[bool]{
		Name:  "log-pretty",
		Usage: "Human-readable log output instead of JSON.",
		Value: false,
	},
	Port: FlagSet[string]{
		Name:  "port",
		Usage: "Port the HTTP server listens on.",
		Value: "8080",
	},
}

type FlagSet[T any] struct {
	Name  string
	Usage string
	Value T
}

type FlagMap struct {
	Capacity  FlagSet[float64]
	Output    FlagSet[string]
	LogLevel  FlagSet[string]
	LogPretty FlagSet[bool]
	Port      FlagSet[string]
}
