// Package dict loads the dictionary file format consumed by the
// judge: one entry per line as `word score freq`, where score is an
// integer extensibility heuristic and freq a relative frequency in
// [0,1]. A leading `*` marks the word as objectionable; the judge
// keeps such words in the list but treats them as invalid by default.
package dict

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"truncate-engine/internal/game"
)

// Parse reads a dictionary stream into judge entries keyed by
// lowercase word.
func Parse(r io.Reader) (map[string]game.WordData, error) {
	words := make(map[string]game.WordData)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		objectionable := false
		if strings.HasPrefix(line, "*") {
			objectionable = true
			line = line[1:]
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: expected `word score freq`, got %q", lineNumber, line)
		}

		word := strings.ToLower(fields[0])
		extensions, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad score %q: %w", lineNumber, fields[1], err)
		}
		relFreq, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad freq %q: %w", lineNumber, fields[2], err)
		}

		words[word] = game.WordData{
			Extensions:    extensions,
			RelFreq:       relFreq,
			Objectionable: objectionable,
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}
	return words, nil
}

// Load parses a dictionary and wraps it in a judge.
func Load(r io.Reader) (*game.Judge, error) {
	words, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return game.NewJudge(words), nil
}
