package commands

import (
	"bufio"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"textbook_rsa_service/internal/pkg/config"
	"textbook_rsa_service/internal/pkg/logger"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// writeKeyFile persists a key as two decimal lines, modulus then exponent.
func writeKeyFile(path string, modulus, exponent *big.Int) error {
	content := fmt.Sprintf("%s\n%s\n", modulus.String(), exponent.String())
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write key file %s: %w", path, err)
	}
	return nil
}

// readKeyFile parses a key file written by writeKeyFile.
func readKeyFile(path string) (modulus, exponent *big.Int, err error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read key file %s: %w", path, err)
	}

	lines := []string{}
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) > 0 {
			lines = append(lines, line)
		}
	}
	if len(lines) != 2 {
		return nil, nil, fmt.Errorf("key file %s must contain exactly two decimal lines, got %d", path, len(lines))
	}

	modulus, ok := new(big.Int).SetString(lines[0], 10)
	if !ok {
		return nil, nil, fmt.Errorf("key file %s line 1 is not a decimal integer: %q", path, lines[0])
	}
	exponent, ok = new(big.Int).SetString(lines[1], 10)
	if !ok {
		return nil, nil, fmt.Errorf("key file %s line 2 is not a decimal integer: %q", path, lines[1])
	}

	return modulus, exponent, nil
}

// parseSeed converts an optional decimal flag value into a big integer.
// An empty value yields nil.
func parseSeed(value, name string) (*big.Int, error) {
	if value == "" {
		return nil, nil
	}
	seed, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, fmt.Errorf("%s is not a decimal integer: %q", name, value)
	}
	return seed, nil
}
