package config

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const EnvFilePath = "./secret/.env"

// LoadEnvFile applies KEY=VALUE lines from path to the process environment,
// overwriting existing values. Lines that do not parse are skipped.
// Values are taken literally: $NAME and ${NAME} are not expanded.
// It returns the number of keys applied.
func LoadEnvFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	applied := 0
	rd := bufio.NewReader(f)
	for {
		raw, readErr := rd.ReadString('\n')
		if raw != "" {
			applied += applyLine(raw)
		}
		if errors.Is(readErr, io.EOF) {
			return applied, nil
		}
		if readErr != nil {
			return applied, readErr
		}
	}
}

func applyLine(raw string) int {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") || !strings.Contains(line, "=") {
		return 0
	}

	// one line at a time so a bad line can't discard the rest of the file
	kv, err := godotenv.Unmarshal(escapeDollars(line))
	if err != nil {
		return 0
	}

	n := 0
	for k, v := range kv {
		if k == "" || strings.ContainsAny(k, " \t") {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			continue
		}
		n++
	}
	return n
}

// escapeDollars turns every $ in an unquoted or double-quoted value into \$,
// which godotenv emits as a literal $ instead of expanding it.
// Single-quoted values are never expanded and are left alone.
func escapeDollars(line string) string {
	i := strings.IndexByte(line, '=')
	value := line[i+1:]
	if strings.HasPrefix(strings.TrimLeft(value, " \t"), "'") {
		return line
	}
	return line[:i+1] + strings.ReplaceAll(value, "$", `\$`)
}
