package ffmpeg

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var commandContext = exec.CommandContext

// defaultFilterScriptLimit is the longest filter expression passed inline on
// the command line; anything longer is spilled to a filter script file.
const defaultFilterScriptLimit = 4096

// Request describes a single transcode: where to read, the filter expression
// shaping the volume envelope, and how to encode the result.
type Request struct {
	InputPath  string
	OutputPath string
	Filter     string
	Codec      string
	Bitrate    string
	Overwrite  bool
	// Duration is the probed track length in seconds; zero means unknown,
	// in which case progress updates carry no percentage.
	Duration float64
}

// Client defines transcoding behaviour.
type Client interface {
	Transcode(ctx context.Context, req Request, progress func(ProgressUpdate)) error
}

// Option configures the CLI client.
type Option func(*CLI)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// WithFilterScriptLimit overrides the inline filter length threshold.
func WithFilterScriptLimit(limit int) Option {
	return func(c *CLI) {
		if limit > 0 {
			c.filterScriptLimit = limit
		}
	}
}

// WithScratchDir overrides where spilled filter scripts are written.
func WithScratchDir(dir string) Option {
	return func(c *CLI) {
		if dir != "" {
			c.scratchDir = dir
		}
	}
}

// CLI wraps the ffmpeg command-line transcoder.
type CLI struct {
	binary            string
	filterScriptLimit int
	scratchDir        string
}

// NewCLI constructs a CLI client using defaults.
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{
		binary:            "ffmpeg",
		filterScriptLimit: defaultFilterScriptLimit,
		scratchDir:        os.TempDir(),
	}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// Transcode launches ffmpeg with the requested filter and streams progress
// updates parsed from its machine-readable progress feed.
func (c *CLI) Transcode(ctx context.Context, req Request, progress func(ProgressUpdate)) error {
	if strings.TrimSpace(req.InputPath) == "" {
		return errors.New("input path required")
	}
	if strings.TrimSpace(req.OutputPath) == "" {
		return errors.New("output path required")
	}
	if strings.TrimSpace(req.Filter) == "" {
		return errors.New("filter expression required")
	}

	args := []string{"-hide_banner", "-nostdin", "-loglevel", "error"}
	if req.Overwrite {
		args = append(args, "-y")
	} else {
		args = append(args, "-n")
	}
	args = append(args, "-i", req.InputPath, "-vn")

	if len(req.Filter) > c.filterScriptLimit {
		scriptPath, cleanup, err := c.writeFilterScript(req.Filter)
		if err != nil {
			return err
		}
		defer cleanup()
		args = append(args, "-filter_script:a", scriptPath)
	} else {
		args = append(args, "-af", req.Filter)
	}

	if codec := strings.TrimSpace(req.Codec); codec != "" {
		args = append(args, "-c:a", codec)
	}
	if bitrate := strings.TrimSpace(req.Bitrate); bitrate != "" {
		args = append(args, "-b:a", bitrate)
	}
	args = append(args, "-progress", "pipe:1", req.OutputPath)

	cmd := commandContext(ctx, c.binary, args...) //nolint:gosec
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start ffmpeg: %w", err)
	}

	parser := newProgressParser(req.Duration)
	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		update, ok := parser.consume(scanner.Text())
		if !ok {
			continue
		}
		if progress != nil {
			progress(update)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read ffmpeg output: %w", err)
	}

	if err := cmd.Wait(); err != nil {
		if detail := strings.TrimSpace(stderr.String()); detail != "" {
			return fmt.Errorf("ffmpeg transcode failed: %w: %s", err, lastLine(detail))
		}
		return fmt.Errorf("ffmpeg transcode failed: %w", err)
	}
	return nil
}

// writeFilterScript persists an oversized filter expression to a scratch file
// so the command line stays within argv limits.
func (c *CLI) writeFilterScript(filter string) (string, func(), error) {
	path := filepath.Join(c.scratchDir, "ducking-filter-"+uuid.NewString()+".txt")
	if err := os.WriteFile(path, []byte(filter), 0o600); err != nil {
		return "", nil, fmt.Errorf("write filter script: %w", err)
	}
	return path, func() { _ = os.Remove(path) }, nil
}

func lastLine(s string) string {
	lines := strings.Split(s, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return s
}

var _ Client = (*CLI)(nil)
