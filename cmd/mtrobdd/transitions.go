package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mamonata/mtrobdd/adapter"
)

// sliceIterator adapts a pre-loaded []adapter.Transition to
// adapter.TransitionIterator.
type sliceIterator struct {
	items []adapter.Transition
	pos   int
}

func (it *sliceIterator) Next() (adapter.Transition, bool) {
	if it.pos >= len(it.items) {
		return adapter.Transition{}, false
	}
	t := it.items[it.pos]
	it.pos++
	return t, true
}

// loadTransitions reads whitespace-separated "source symbol choice target"
// rows from path, one transition per line, skipping blank lines and lines
// starting with '#'. symbol is a single ASCII character.
func loadTransitions(path string) ([]adapter.Transition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []adapter.Transition
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, fmt.Errorf("transitions.go:%s:%d: want 4 fields, got %d", path, lineNo, len(fields))
		}
		source, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: source: %w", path, lineNo, err)
		}
		if len(fields[1]) != 1 {
			return nil, fmt.Errorf("%s:%d: symbol must be a single character", path, lineNo)
		}
		choice, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: choice: %w", path, lineNo, err)
		}
		target, err := strconv.ParseUint(fields[3], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: target: %w", path, lineNo, err)
		}
		out = append(out, adapter.Transition{
			Source: source,
			Target: target,
			Symbol: fields[1][0],
			Choice: choice,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
