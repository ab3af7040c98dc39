// Package formatter pretty-prints generated TypeScript. It prefers the
// prettier binary and falls back to a built-in brace indenter.
package formatter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

var ErrPrettierNotFound = errors.New("prettier not found in PATH")

type Options struct {
	// Prettier is the command to run; "prettier" when empty.
	Prettier string
	// PrettierConfig is passed to prettier as --config when set.
	PrettierConfig string
	// Indent is the unit the fallback indenter uses; two spaces when empty.
	Indent string
}

// Format returns src formatted. It always returns usable text: when
// prettier cannot be used, src is re-indented and the reason is returned
// as err.
func Format(ctx context.Context, src string, opts Options) (string, error) {
	out, err := prettier(ctx, src, opts)
	if err != nil {
		return Reindent(src, opts.Indent), err
	}
	return out, nil
}

func prettier(ctx context.Context, src string, opts Options) (string, error) {
	name := opts.Prettier
	if name == "" {
		name = "prettier"
	}
	bin, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPrettierNotFound, err)
	}

	args := []string{"--parser", "typescript"}
	if opts.PrettierConfig != "" {
		cfg, err := filepath.Abs(opts.PrettierConfig)
		if err != nil {
			return "", fmt.Errorf("resolving prettier config: %w", err)
		}
		args = append(args, "--config", cfg)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = strings.NewReader(src)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running prettier: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// Reindent indents src by brace depth. Braces inside string literals and
// comment lines are not counted.
func Reindent(src, indent string) string {
	if indent == "" {
		indent = "  "
	}

	var sb strings.Builder
	depth := 0
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			sb.WriteString("\n")
			continue
		}

		if isCommentLine(line) {
			sb.WriteString(strings.Repeat(indent, depth))
			if strings.HasPrefix(line, "*") {
				sb.WriteString(" ")
			}
			sb.WriteString(line)
			sb.WriteString("\n")
			continue
		}

		leading, delta := braces(line)
		level := depth - leading
		if level < 0 {
			level = 0
		}
		sb.WriteString(strings.Repeat(indent, level))
		sb.WriteString(line)
		sb.WriteString("\n")

		depth += delta
		if depth < 0 {
			depth = 0
		}
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func isCommentLine(line string) bool {
	return strings.HasPrefix(line, "/*") || strings.HasPrefix(line, "*")
}

// braces returns how many closing braces open the line and the net change
// in depth, skipping quoted text.
func braces(line string) (leading, delta int) {
	var quote byte
	atStart := true
	for i := 0; i < len(line); i++ {
		c := line[i]
		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"', '`':
			quote = c
			atStart = false
		case '{':
			delta++
			atStart = false
		case '}':
			delta--
			if atStart {
				leading++
			}
		case ' ', '\t', ';', ',':
		default:
			atStart = false
		}
	}
	return leading, delta
}
