package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Tail returns at most maxLines from the end of the file at path. A missing
// file yields no lines and no error.
func Tail(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 || strings.TrimSpace(path) == "" {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Entry is one line written by the slog text handler.
type Entry struct {
	Time    string
	Level   string
	Message string
	Attrs   []Attr
	Raw     string
}

// Attr is a key=value pair following the message.
type Attr struct {
	Key   string
	Value string
}

// Parse splits a text-handler line into its parts. Lines that are not
// key=value formatted come back with only Raw and Message set.
func Parse(line string) Entry {
	entry := Entry{Raw: line}
	pairs, ok := splitPairs(line)
	if !ok {
		entry.Message = line
		return entry
	}
	for _, p := range pairs {
		switch p.Key {
		case "time":
			entry.Time = p.Value
		case "level":
			entry.Level = p.Value
		case "msg":
			entry.Message = p.Value
		default:
			entry.Attrs = append(entry.Attrs, p)
		}
	}
	return entry
}

// Recent returns the last n parsed entries of the log at path.
func Recent(path string, n int) ([]Entry, error) {
	lines, err := Tail(path, n)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, Parse(line))
	}
	return entries, nil
}

func splitPairs(line string) ([]Attr, bool) {
	var pairs []Attr
	rest := strings.TrimSpace(line)
	for rest != "" {
		eq := strings.IndexByte(rest, '=')
		if eq <= 0 || strings.ContainsAny(rest[:eq], " \t\"") {
			return nil, false
		}
		key := rest[:eq]
		rest = rest[eq+1:]

		var value string
		if strings.HasPrefix(rest, `"`) {
			quoted, err := strconv.QuotedPrefix(rest)
			if err != nil {
				return nil, false
			}
			value, _ = strconv.Unquote(quoted)
			rest = rest[len(quoted):]
		} else {
			end := strings.IndexByte(rest, ' ')
			if end < 0 {
				end = len(rest)
			}
			value = rest[:end]
			rest = rest[end:]
		}
		pairs = append(pairs, Attr{Key: key, Value: value})
		rest = strings.TrimLeft(rest, " ")
	}
	return pairs, len(pairs) > 0
}
