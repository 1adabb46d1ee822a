package pass

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os/exec"
	"path"
	"strings"

	"github.com/bnema/wellbeing-cli/internal/ports"
)

// DefaultPrefix is the password-store folder holding captured artifacts.
const DefaultPrefix = "wb/artifacts"

var ErrUnavailable = errors.New("pass command unavailable")

type runFunc func(ctx context.Context, input string, args ...string) (stdout string, stderr string, err error)

// Store keeps artifact bytes gpg-encrypted inside the user's password store.
// pass entries are text, so payloads are base64 encoded on the way in.
type Store struct {
	prefix string
	run    runFunc
}

var _ ports.ArtifactStore = (*Store)(nil)

func NewStore(prefix string) *Store {
	if strings.TrimSpace(prefix) == "" {
		prefix = DefaultPrefix
	}
	return &Store{prefix: strings.Trim(prefix, "/"), run: runPassCommand}
}

func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entry, err := s.entry(key)
	if err != nil {
		return err
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	_, stderr, err := s.run(ctx, encoded+"\n", "insert", "-m", "-f", entry)
	if err != nil {
		return formatError("put", entry, err, stderr)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entry, err := s.entry(key)
	if err != nil {
		return nil, err
	}

	stdout, stderr, err := s.run(ctx, "", "show", entry)
	if err != nil {
		return nil, formatError("get", entry, err, stderr)
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(stdout))
	if err != nil {
		return nil, fmt.Errorf("decode pass entry %q: %w", entry, err)
	}

	return data, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entry, err := s.entry(key)
	if err != nil {
		return err
	}

	_, stderr, err := s.run(ctx, "", "rm", "-f", entry)
	if err != nil {
		return formatError("delete", entry, err, stderr)
	}

	return nil
}

func (s *Store) entry(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", errors.New("artifact key is required")
	}
	if strings.HasPrefix(key, "/") || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid artifact key %q", key)
	}

	return path.Join(s.prefix, key), nil
}

func runPassCommand(ctx context.Context, input string, args ...string) (string, string, error) {
	bin, err := exec.LookPath("pass")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", ErrUnavailable
		}
		return "", "", fmt.Errorf("locate pass command: %w", err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func formatError(op string, entry string, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("pass %s %q: %w", op, entry, err)
	}

	return fmt.Errorf("pass %s %q: %w: %s", op, entry, err, stderr)
}
