package voice

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// EX_NOPERM from sysexits.h: the capture command uses it to signal a
// microphone permission problem, so the UI can say so specifically.
const permissionExitCode = 77

// ExecRecognizer shells out to a user-configured capture command that
// prints the final transcript on stdout and exits. Any local
// speech-to-text tool can be plugged in this way.
type ExecRecognizer struct {
	Command string
}

func (r ExecRecognizer) Listen(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", r.Command)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == permissionExitCode {
			return "", ErrPermissionDenied
		}
		return "", fmt.Errorf("voice capture: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}
