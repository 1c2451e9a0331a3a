// Package cli parses command-line arguments into an app.Config and defines
// the ExitError type used to carry exit codes back to main.
package cli
