package recorder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/bnema/wellbeing-cli/internal/domain"
	"github.com/bnema/wellbeing-cli/internal/ports"
)

const (
	defaultStopTimeout  = 3 * time.Second
	defaultStartupGrace = 300 * time.Millisecond
)

// Command is an external recorder invocation that writes WAV to stdout.
type Command struct {
	Name string
	Args []string
}

// FFmpeg records mono 16 kHz WAV from an ALSA device.
func FFmpeg(device string) Command {
	if device == "" {
		device = "default"
	}

	return Command{
		Name: "ffmpeg",
		Args: []string{"-hide_banner", "-loglevel", "error", "-nostdin", "-f", "alsa", "-i", device, "-ac", "1", "-ar", "16000", "-f", "wav", "-"},
	}
}

// ARecord records mono 16 kHz WAV with alsa-utils.
func ARecord(device string) Command {
	args := []string{"-q", "-f", "S16_LE", "-r", "16000", "-c", "1", "-t", "wav"}
	if device != "" {
		args = append(args, "-D", device)
	}

	return Command{Name: "arecord", Args: append(args, "-")}
}

type lookPathFunc func(file string) (string, error)

// Microphone captures audio by running an external recorder process for the
// lifetime of a session.
type Microphone struct {
	command      Command
	lookPath     lookPathFunc
	stopTimeout  time.Duration
	startupGrace time.Duration
}

var _ ports.Microphone = (*Microphone)(nil)

func NewMicrophone(command Command) *Microphone {
	return &Microphone{
		command:      command,
		lookPath:     exec.LookPath,
		stopTimeout:  defaultStopTimeout,
		startupGrace: defaultStartupGrace,
	}
}

func (m *Microphone) Start(ctx context.Context) (ports.AudioSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := m.lookPath(m.command.Name)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%w: recorder %q not installed", domain.ErrDeviceUnavailable, m.command.Name)
		}
		return nil, fmt.Errorf("locate recorder %q: %w", m.command.Name, err)
	}

	s := &session{name: m.command.Name, stopTimeout: m.stopTimeout, done: make(chan struct{})}
	s.cmd = exec.Command(path, m.command.Args...)
	s.cmd.Stdout = &s.stdout
	s.cmd.Stderr = &s.stderr

	if err := s.cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: start %s: %w", domain.ErrDeviceUnavailable, m.command.Name, err)
	}
	go func() {
		s.waitErr = s.cmd.Wait()
		close(s.done)
	}()

	if err := s.awaitStartup(ctx, m.startupGrace); err != nil {
		return nil, err
	}

	return s, nil
}

type session struct {
	name        string
	stopTimeout time.Duration
	cmd         *exec.Cmd
	stdout      bytes.Buffer
	stderr      bytes.Buffer
	done        chan struct{}
	waitErr     error

	mu      sync.Mutex
	stopped bool
}

// Stop interrupts the recorder, waits for it to flush and returns the bytes
// it wrote.
func (s *session) Stop() (ports.AudioClip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return ports.AudioClip{}, fmt.Errorf("%w: %s session already stopped", domain.ErrInvalidTransition, s.name)
	}
	s.stopped = true

	s.terminate(os.Interrupt)

	if s.stdout.Len() == 0 {
		return ports.AudioClip{}, s.failure()
	}

	return ports.AudioClip{
		MediaType: domain.MediaTypeWAV,
		Data:      append([]byte(nil), s.stdout.Bytes()...),
	}, nil
}

func (s *session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return nil
	}
	s.stopped = true
	s.terminate(os.Kill)

	return nil
}

// terminate signals a running process and waits for it to exit, killing it
// once the stop timeout passes.
func (s *session) terminate(sig os.Signal) {
	select {
	case <-s.done:
		return
	default:
	}

	if err := s.cmd.Process.Signal(sig); err != nil && !errors.Is(err, os.ErrProcessDone) {
		_ = s.cmd.Process.Kill()
	}

	timer := time.NewTimer(s.stopTimeout)
	defer timer.Stop()

	select {
	case <-s.done:
	case <-timer.C:
		_ = s.cmd.Process.Kill()
		<-s.done
	}
}

// awaitStartup watches the recorder for grace. A recorder that exits in that
// window without writing audio could not open its input device, which is
// reported as ErrDeviceUnavailable so a fallback recorder can take over.
func (s *session) awaitStartup(ctx context.Context, grace time.Duration) error {
	if grace <= 0 {
		return nil
	}

	timer := time.NewTimer(grace)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		s.stopped = true
		s.terminate(os.Kill)
		return ctx.Err()
	case <-s.done:
		if s.stdout.Len() > 0 {
			return nil
		}
		s.stopped = true
		return s.failure()
	}
}

func (s *session) failure() error {
	detail := strings.TrimSpace(s.stderr.String())
	switch {
	case detail != "":
		return fmt.Errorf("%w: %s produced no audio: %s", domain.ErrDeviceUnavailable, s.name, detail)
	case s.waitErr != nil:
		return fmt.Errorf("%w: %s produced no audio: %w", domain.ErrDeviceUnavailable, s.name, s.waitErr)
	default:
		return fmt.Errorf("%w: %s produced no audio", domain.ErrDeviceUnavailable, s.name)
	}
}
