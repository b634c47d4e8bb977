package config

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Overridable for testing.
var (
	commandContext = exec.CommandContext
	lookPath       = exec.LookPath
)

// resolveSecret resolves a 1Password secret reference (op://vault/item/field)
// through the op CLI. Values without the op:// prefix are returned unchanged,
// so plain-text credentials keep working.
func resolveSecret(ctx context.Context, value string) (string, error) {
	if !strings.HasPrefix(value, "op://") {
		return value, nil
	}

	if _, err := lookPath("op"); err != nil {
		return "", fmt.Errorf("1Password CLI (op) not found in PATH: %w", err)
	}

	cmd := commandContext(ctx, "op", "read", value)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("reading secret from 1Password: %s", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("reading secret from 1Password: %w", err)
	}

	return strings.TrimSpace(string(output)), nil
}
