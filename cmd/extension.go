package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"

	"github.com/etnz/finguide/config"
)

// extensionPrefix prefixes the name of the binaries that extend guide:
// 'guide hello' runs 'guide-hello' when there is no 'hello' subcommand.
const extensionPrefix = "guide-"

// RunExtension runs the guide-<subcommand> binary found in PATH with 'args'.
// The global flags are passed as FINGUIDE_* environment variables.
// It returns false if there is no such binary, and the exit code otherwise.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := extensionPrefix + subcommand
	lp, err := exec.LookPath(name)
	if err != nil {
		log.Printf("no extension %q: %v", name, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(),
		config.EnvCurrency+"="+Currency(),
		config.EnvVerbose+"="+strconv.FormatBool(*Verbose),
	)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return true, exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error running extension %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
