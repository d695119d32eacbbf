package main

import (
	"bufio"
	"encoding/base64"
	"os"
	"strings"
)

// readLines loads a UTF-8 file of one member per line, the shared format
// for both set and universe files. Blank lines are skipped.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// keyFile is the parsed form of a key file: line 1 is the base64 DER
// body, line 2 (small-universe only) is the path to the universe file.
type keyFile struct {
	DER      []byte
	Universe []string
}

func readKeyFile(path string, needsUniverse bool) (*keyFile, error) {
	lines, err := rawLines(path)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errInvalid("empty key file: " + path)
	}
	der, err := base64.StdEncoding.DecodeString(strings.TrimSpace(lines[0]))
	if err != nil {
		return nil, err
	}
	kf := &keyFile{DER: der}
	if needsUniverse {
		if len(lines) < 2 {
			return nil, errInvalid("small-universe key file missing universe path: " + path)
		}
		universe, err := readLines(strings.TrimSpace(lines[1]))
		if err != nil {
			return nil, err
		}
		kf.Universe = universe
	}
	return kf, nil
}

// rawLines reads every line of a file without dropping blanks, needed for
// key files whose second line is a file path rather than set data.
func rawLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func readSignatureFile(path string) ([]byte, error) {
	lines, err := rawLines(path)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errInvalid("empty signature file: " + path)
	}
	return base64.StdEncoding.DecodeString(strings.TrimSpace(lines[0]))
}

func b64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}
