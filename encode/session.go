package encode

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/wordart/internal/logging"
	"github.com/gogpu/wordart/render"
)

// stderrTail is how much encoder diagnostic output is kept for errors.
const stderrTail = 4 << 10

// waitDelay bounds how long Wait lingers on I/O after the process is
// killed.
const waitDelay = 2 * time.Second

// Session is one running encoder process.
//
// WriteFrame and Close are meant for a single producer goroutine; Done,
// Wait and Err may be used from any goroutine.
type Session struct {
	cfg    Config
	output string
	logger *slog.Logger

	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stderr *tailBuffer

	frames chan []byte
	closed atomic.Bool

	done chan struct{}
	err  error
}

// Start spawns the encoder writing to outputPath. The process is killed
// when ctx is done. The session's completion signal is armed before Start
// returns, so an encoder that fails immediately is never missed.
func (c Config) Start(ctx context.Context, outputPath string) (*Session, error) {
	c = c.withDefaults()

	cmd := exec.CommandContext(ctx, c.Binary, c.Args(outputPath)...)
	cmd.WaitDelay = waitDelay

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: stdin: %w", ErrEncode, err)
	}
	stderr := &tailBuffer{max: stderrTail}
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: start %s: %w", ErrEncode, c.Binary, err)
	}

	s := &Session{
		cfg:    c,
		output: outputPath,
		logger: logging.OrNop(c.Logger),
		cmd:    cmd,
		stdin:  stdin,
		stderr: stderr,
		frames: make(chan []byte, c.QueueDepth),
		done:   make(chan struct{}),
	}
	s.logger.Debug("encode: started",
		"pid", cmd.Process.Pid, "binary", c.Binary, "output", outputPath)

	go s.feed(ctx)
	return s, nil
}

// feed drains the frame queue into the encoder, then reaps the process.
func (s *Session) feed(ctx context.Context) {
	var writeErr error
	written := 0
loop:
	for {
		select {
		case pix, ok := <-s.frames:
			if !ok {
				break loop
			}
			if _, err := s.stdin.Write(pix); err != nil {
				writeErr = err
				break loop
			}
			written++
		case <-ctx.Done():
			writeErr = ctx.Err()
			break loop
		}
	}
	_ = s.stdin.Close()

	waitErr := s.cmd.Wait()
	s.err = s.result(ctx, writeErr, waitErr)
	if s.err != nil {
		s.logger.Debug("encode: failed", "output", s.output, "frames", written, "err", s.err)
	} else {
		s.logger.Debug("encode: finished", "output", s.output, "frames", written)
	}
	close(s.done)
}

func (s *Session) result(ctx context.Context, writeErr, waitErr error) error {
	if writeErr == nil && waitErr == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if waitErr != nil {
		return &ExitError{Err: waitErr, Stderr: s.stderr.String()}
	}
	return &ExitError{Err: writeErr, Stderr: s.stderr.String()}
}

// WriteFrame queues f for encoding, blocking while the queue is full. It
// fails fast once the encoder has exited.
func (s *Session) WriteFrame(ctx context.Context, f render.Frame) error {
	if s.closed.Load() {
		return ErrClosed
	}
	if want := s.cfg.Width * s.cfg.Height * 4; len(f.Pix) != want {
		return fmt.Errorf("%w: frame %d is %d bytes, want %d", ErrFrameSize, f.Index, len(f.Pix), want)
	}

	select {
	case <-s.done:
		if s.err != nil {
			return s.err
		}
		return fmt.Errorf("%w: encoder exited early", ErrEncode)
	default:
	}

	select {
	case s.frames <- f.Pix:
		return nil
	case <-s.done:
		if s.err != nil {
			return s.err
		}
		return fmt.Errorf("%w: encoder exited early", ErrEncode)
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close signals the end of input. It is idempotent.
func (s *Session) Close() error {
	if s.closed.CompareAndSwap(false, true) {
		close(s.frames)
	}
	return nil
}

// Done is closed when the encoder process has exited.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Err returns the session's outcome once Done is closed, and nil before.
func (s *Session) Err() error {
	select {
	case <-s.done:
		return s.err
	default:
		return nil
	}
}

// Wait blocks until the encoder exits or ctx is done. A non-zero exit is
// reported as an *ExitError carrying the end of the encoder's stderr.
func (s *Session) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		return s.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// tailBuffer keeps the last max bytes written to it.
type tailBuffer struct {
	mu  sync.Mutex
	buf []byte
	max int
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.max; over > 0 {
		t.buf = append(t.buf[:0], t.buf[over:]...)
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return string(t.buf)
}

