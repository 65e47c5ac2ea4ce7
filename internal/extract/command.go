package extract

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// runCommand runs command (a program followed by fixed arguments) with args
// appended and returns its stdout. Stderr is only logged.
func runCommand(ctx context.Context, command string, args ...string) (string, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", fmt.Errorf("empty command")
	}

	cmd := exec.CommandContext(ctx, fields[0], append(fields[1:], args...)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		slog.Warn("External command failed", "command", fields[0], "stderr", stderr.String(), "error", err)
		return "", fmt.Errorf("%s: %w", fields[0], err)
	}
	if stderr.Len() > 0 {
		slog.Debug("External command wrote to stderr", "command", fields[0], "stderr", stderr.String())
	}
	return stdout.String(), nil
}
