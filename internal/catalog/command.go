package catalog

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
)

// CommandAction returns an Action that cleans by running an external
// command. Freed space is measured as the size delta of the given paths
// before and after the command runs; the reported result carries a single
// summary entry because the command does not enumerate what it removed.
func CommandAction(name, cmdline string, paths []string, kind Kind) Action {
	return func(ctx context.Context) (Result, error) {
		parts, err := shellquote.Split(cmdline)
		if err != nil {
			return Result{}, fmt.Errorf("invalid command: %w", err)
		}
		if len(parts) == 0 {
			return Result{}, ErrNotApplicable
		}

		expanded, err := ExpandPaths(paths)
		if err != nil {
			return Result{}, err
		}

		sizeBefore := SizeOf(expanded)

		cmd := exec.CommandContext(ctx, parts[0], parts[1:]...)
		var stdout, stderr bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr

		if err := cmd.Run(); err != nil {
			output := strings.TrimSpace(stderr.String())
			if output == "" {
				output = strings.TrimSpace(stdout.String())
			}
			if output != "" {
				return Result{}, fmt.Errorf("%s: %s: %w", parts[0], firstLine(output), err)
			}
			return Result{}, fmt.Errorf("%s: %w", parts[0], err)
		}

		sizeAfter := SizeOf(expanded)
		var freed uint64
		if sizeBefore > sizeAfter {
			freed = sizeBefore - sizeAfter
		}

		result := Result{BytesFreed: freed}
		if freed > 0 {
			result.Entries = []Entry{{
				Path: name + " (cleaned files)",
				Size: freed,
				Kind: kind,
			}}
		}
		return result, nil
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// CommandExists reports whether a command is resolvable in PATH.
func CommandExists(command string) bool {
	_, err := exec.LookPath(command)
	return err == nil
}
