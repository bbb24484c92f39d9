// Package inifile reads and writes the small INI dialect used by fourvec.ini.
//
// Sections and keys are case-insensitive. Lines starting with '#' or ';' are
// comments, and " ;" or " #" after a value starts an inline comment.
package inifile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// File represents a parsed INI file.
type File struct {
	Sections []Section
}

// Section represents a named section in an INI file.
type Section struct {
	Name   string     // e.g., "selftest", "report"
	Values []KeyValue // preserves order
}

// KeyValue represents a key-value pair.
type KeyValue struct {
	Key   string
	Value string
}

// Parse reads an INI file from the given reader.
func Parse(r io.Reader) (*File, error) {
	f := &File{}
	var current *Section

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") {
				return nil, fmt.Errorf("line %d: unterminated section header %q", lineNo, line)
			}
			name := strings.ToLower(strings.TrimSpace(strings.Trim(line, "[]")))
			current = f.section(name, true)
			continue
		}

		if current == nil {
			continue // Ignore keys before any section
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue // Ignore lines without =
		}

		current.Values = append(current.Values, KeyValue{
			Key:   strings.ToLower(strings.TrimSpace(key)),
			Value: stripInlineComment(strings.TrimSpace(value)),
		})
	}

	return f, scanner.Err()
}

func stripInlineComment(v string) string {
	for _, marker := range []string{" ;", " #", "\t;", "\t#"} {
		if i := strings.Index(v, marker); i >= 0 {
			v = v[:i]
		}
	}
	return strings.TrimSpace(v)
}

// ParseFile reads and parses an INI file from disk.
func ParseFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// section returns the named section, creating it when create is set.
// Repeated headers share one section.
func (f *File) section(name string, create bool) *Section {
	name = strings.ToLower(name)
	for i := range f.Sections {
		if f.Sections[i].Name == name {
			return &f.Sections[i]
		}
	}
	if !create {
		return nil
	}
	f.Sections = append(f.Sections, Section{Name: name})
	return &f.Sections[len(f.Sections)-1]
}

// Section returns the section with the given name (case-insensitive).
func (f *File) Section(name string) *Section {
	return f.section(name, false)
}

// Get returns the last value for a key in a section, or "" if absent.
func (f *File) Get(section, key string) string {
	v, _ := f.Lookup(section, key)
	return v
}

// Lookup returns the last value for a key in a section and whether the key
// was present.
func (f *File) Lookup(section, key string) (string, bool) {
	s := f.Section(section)
	if s == nil {
		return "", false
	}
	return s.Lookup(key)
}

// Lookup returns the last value for a key (case-insensitive).
func (s *Section) Lookup(key string) (string, bool) {
	key = strings.ToLower(key)
	var (
		result string
		found  bool
	)
	for _, kv := range s.Values {
		if kv.Key == key {
			result, found = kv.Value, true
		}
	}
	return result, found
}

// Uint32 parses a key as an unsigned 32-bit integer. Decimal and 0x-prefixed
// hex are accepted. ok is false when the key is absent.
func (f *File) Uint32(section, key string) (v uint32, ok bool, err error) {
	s, ok := f.Lookup(section, key)
	if !ok || s == "" {
		return 0, false, nil
	}
	n, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, true, fmt.Errorf("%s.%s: %w", section, key, err)
	}
	return uint32(n), true, nil
}

// Int parses a key as an int. ok is false when the key is absent.
func (f *File) Int(section, key string) (v int, ok bool, err error) {
	s, ok := f.Lookup(section, key)
	if !ok || s == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, true, fmt.Errorf("%s.%s: %w", section, key, err)
	}
	return n, true, nil
}

// Float parses a key as a float64. ok is false when the key is absent.
func (f *File) Float(section, key string) (v float64, ok bool, err error) {
	s, ok := f.Lookup(section, key)
	if !ok || s == "" {
		return 0, false, nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, true, fmt.Errorf("%s.%s: %w", section, key, err)
	}
	return n, true, nil
}

// Set sets a key-value pair in the specified section.
// If the section doesn't exist, it is created.
// If the key already exists, its value is replaced.
func (f *File) Set(section, key, value string) {
	s := f.section(section, true)
	key = strings.ToLower(key)

	for i := range s.Values {
		if s.Values[i].Key == key {
			s.Values[i].Value = value
			return
		}
	}
	s.Values = append(s.Values, KeyValue{Key: key, Value: value})
}

// Write serializes the INI file to the given writer.
func (f *File) Write(w io.Writer) error {
	for i, section := range f.Sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "[%s]\n", section.Name); err != nil {
			return err
		}
		for _, kv := range section.Values {
			if _, err := fmt.Fprintf(w, "%s = %s\n", kv.Key, kv.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteFile writes the INI file to the specified path.
func (f *File) WriteFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := f.Write(file); err != nil {
		return err
	}

	return file.Sync()
}
