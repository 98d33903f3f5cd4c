package cli

// Flags holds the global command-line flags for one command tree
// instance. Instances are isolated so tests can run commands in
// parallel without shared state.
type Flags struct {
	ConfigFile string
	OwnerKey   string
	LogLevel   string
	Verbose    int
	JSONOutput bool
}

// defaultOwnerKey is used when no --owner flag is given; single-user
// installs never need to think about owners.
const defaultOwnerKey = "default"

// newDefaultFlags returns the baseline flag values.
func newDefaultFlags() *Flags {
	return &Flags{
		OwnerKey: defaultOwnerKey,
		LogLevel: "info",
	}
}
