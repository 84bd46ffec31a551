// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// PrinterEnv names the environment variable that overrides the command
// documents are piped into.
const PrinterEnv = "ROUNDROBIN_PRINTER"

// DefaultPrinter is the spooler command used when PrinterEnv is unset.
const DefaultPrinter = "lp"

// PrinterCommand returns the command and arguments used for printing.
func PrinterCommand() (string, []string) {
	fields := strings.Fields(os.Getenv(PrinterEnv))
	if len(fields) == 0 {
		return DefaultPrinter, nil
	}

	return fields[0], fields[1:]
}

// Print sends the given document to the system printer by piping it into
// the printer command's stdin.
func Print(ctx context.Context, document io.Reader) error {
	command, args := PrinterCommand()
	return Execute(ctx, document, "Printer \x1b[31mfailed\x1b[0m to accept the schedule", command, args...)
}

// Execute runs the given command with stdin as its input. The command's
// output is only shown if it fails, or at trace level. If errStr is not
// empty it replaces the command's own error.
func Execute(ctx context.Context, stdin io.Reader, errStr, command string, args ...string) error {
	logrus.Debugf("\x1b[34m%s\x1b[0m %s\n", command, strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Stdin = stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	// Show the commands output if logging level is Trace.
	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	StartSpinner()
	err := cmd.Run()
	PauseSpinner()

	if err != nil {
		// Dump command's stdout and stderr in case of failure.
		if !logrus.IsLevelEnabled(logrus.TraceLevel) {
			fmt.Fprint(os.Stderr, "==== \x1b[31mERROR\x1b[0m ====\n\x1b[31m")
			_, _ = io.Copy(os.Stderr, &stdout)
			_, _ = io.Copy(os.Stderr, &stderr)
			fmt.Fprint(os.Stderr, "\x1b[0m===============\n")
		}

		logrus.WithError(err).WithField("command", command).Debug("command failed")
		if errStr == "" {
			return err
		}
		return errors.New(errStr)
	}

	return nil
}
