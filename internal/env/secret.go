package env

import (
	"EnvFileGenerator/internal/constants"
	"EnvFileGenerator/internal/envutil"
	"encoding/hex"
	"fmt"
	"io"
)

// NewSecret reads constants.SecretBytes bytes from r and returns them hex encoded.
func NewSecret(r io.Reader) (string, error) {
	buf := make([]byte, constants.SecretBytes)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("generate secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// MaterializeSecrets replaces, in place, every value equal to the RANDOM
// sentinel with its own fresh secret. It returns the number replaced.
func MaterializeSecrets(m *envutil.Mapping, r io.Reader) (int, error) {
	if m == nil {
		return 0, nil
	}
	count := 0
	for _, key := range m.Keys() {
		if v, _ := m.Get(key); v != constants.RandomSentinel {
			continue
		}
		secret, err := NewSecret(r)
		if err != nil {
			return count, err
		}
		m.Set(key, secret)
		count++
	}
	return count, nil
}
