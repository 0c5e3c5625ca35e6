// Package config turns ordered key/value strings into typed lookups.
//
// Each entry is split on a separator pattern into a key and a raw value. The
// raw value is recorded as a string and, when it parses, also as an int, a
// float64 and a bool. Later entries overwrite earlier ones, so callers load
// defaults first and overrides after them.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrMalformedEntry reports an entry that does not split into a key and a value.
	ErrMalformedEntry = errors.New("malformed entry")
	// ErrNotFound reports a key without a mapping of the requested type.
	ErrNotFound = errors.New("not found")
)

// Store holds the typed mappings parsed from key/value entries.
type Store struct {
	ints    map[string]int
	floats  map[string]float64
	bools   map[string]bool
	strings map[string]string

	skip *regexp.Regexp
}

// NewStore returns an empty store that parses every entry.
func NewStore() *Store {
	return &Store{
		ints:    make(map[string]int),
		floats:  make(map[string]float64),
		bools:   make(map[string]bool),
		strings: make(map[string]string),
	}
}

// Load builds a store from entries split on separator. Entries matching skip
// in full are ignored; an empty skip parses everything.
func Load(entries []string, separator, skip string) (*Store, error) {
	s := NewStore()
	if err := s.SetSkipPattern(skip); err != nil {
		return nil, err
	}
	if err := s.Parse(entries, separator); err != nil {
		return nil, err
	}
	return s, nil
}

// SetSkipPattern sets the expression that marks entries to ignore. It must
// match the whole entry. An empty expression clears the pattern.
func (s *Store) SetSkipPattern(expr string) error {
	if expr == "" {
		s.ClearSkipPattern()
		return nil
	}
	re, err := regexp.Compile(`^(?:` + expr + `)$`)
	if err != nil {
		return fmt.Errorf("config: skip pattern %q: %w", expr, err)
	}
	s.skip = re
	return nil
}

// ClearSkipPattern makes the store parse every entry again.
func (s *Store) ClearSkipPattern() {
	s.skip = nil
}

// Parse adds entries in order and stops at the first malformed one.
func (s *Store) Parse(entries []string, separator string) error {
	sep, err := compileSeparator(separator)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := s.parse(entry, sep); err != nil {
			return err
		}
	}
	return nil
}

// ParseEntry adds a single entry.
func (s *Store) ParseEntry(entry, separator string) error {
	sep, err := compileSeparator(separator)
	if err != nil {
		return err
	}
	return s.parse(entry, sep)
}

// ParseReader adds one entry per line read from r. Errors carry the line
// number.
func (s *Store) ParseReader(r io.Reader, separator string) error {
	sep, err := compileSeparator(separator)
	if err != nil {
		return err
	}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if err := s.parse(scanner.Text(), sep); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("config: read: %w", err)
	}
	return nil
}

func compileSeparator(separator string) (*regexp.Regexp, error) {
	sep, err := regexp.Compile(separator)
	if err != nil {
		return nil, fmt.Errorf("config: separator %q: %w", separator, err)
	}
	return sep, nil
}

func (s *Store) parse(entry string, sep *regexp.Regexp) error {
	if s.skip != nil && s.skip.MatchString(entry) {
		return nil
	}

	parts := sep.Split(entry, 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("config: %q: %w", entry, ErrMalformedEntry)
	}
	key, raw := parts[0], parts[1]

	if b, ok := parseBool(raw); ok {
		s.bools[key] = b
	}
	if v, err := strconv.Atoi(raw); err == nil {
		s.ints[key] = v
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		s.floats[key] = v
	}
	s.strings[key] = raw
	return nil
}

// parseBool accepts only the literals true and false, ignoring case.
func parseBool(raw string) (bool, bool) {
	switch {
	case strings.EqualFold(raw, "true"):
		return true, true
	case strings.EqualFold(raw, "false"):
		return false, true
	default:
		return false, false
	}
}

// Int returns the integer mapping for key.
func (s *Store) Int(key string) (int, error) {
	v, ok := s.ints[key]
	if !ok {
		return 0, notFound("int", key)
	}
	return v, nil
}

// Float returns the floating point mapping for key.
func (s *Store) Float(key string) (float64, error) {
	v, ok := s.floats[key]
	if !ok {
		return 0, notFound("float", key)
	}
	return v, nil
}

// Bool returns the boolean mapping for key.
func (s *Store) Bool(key string) (bool, error) {
	v, ok := s.bools[key]
	if !ok {
		return false, notFound("bool", key)
	}
	return v, nil
}

// String returns the raw value last recorded for key.
func (s *Store) String(key string) (string, error) {
	v, ok := s.strings[key]
	if !ok {
		return "", notFound("string", key)
	}
	return v, nil
}

// Keys lists every key seen so far in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.strings))
	for k := range s.strings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func notFound(kind, key string) error {
	return fmt.Errorf("config: %s %q: %w", kind, key, ErrNotFound)
}
