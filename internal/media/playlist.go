package media

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"
)

// entryParser turns one trimmed playlist line into a path entry, or "" when
// the line names no file.
type entryParser func(line string) string

// ReadPathList reads a .m3u/.m3u8/.pls list of path files. Entries are
// returned in file order, resolved against the list's directory.
func ReadPathList(path string) ([]string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !IsPlaylistExt(ext) {
		return nil, fmt.Errorf("unsupported playlist format %s", ext)
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading playlist: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("playlist %s is not valid UTF-8", filepath.Base(path))
	}
	data = bytes.TrimPrefix(data, []byte("\uFEFF"))

	var parse entryParser = m3uEntry
	if ext == ".pls" {
		parse = plsEntry
	}

	dir := filepath.Dir(path)
	var entries []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		raw := parse(strings.TrimSpace(scanner.Text()))
		if raw == "" {
			continue
		}
		entries = append(entries, resolveEntry(raw, dir))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading playlist: %w", err)
	}
	return entries, nil
}

func m3uEntry(line string) string {
	if strings.HasPrefix(line, "#") {
		return ""
	}
	return line
}

// plsEntry accepts FileN=path lines; the key is case-insensitive.
func plsEntry(line string) string {
	key, val, ok := strings.Cut(line, "=")
	if !ok {
		return ""
	}
	key = strings.TrimSpace(key)
	if len(key) <= 4 || !strings.EqualFold(key[:4], "file") {
		return ""
	}
	if _, err := strconv.ParseUint(key[4:], 10, 32); err != nil {
		return ""
	}
	return strings.TrimSpace(val)
}

func resolveEntry(raw, dir string) string {
	p := filepath.Clean(strings.Trim(raw, `"`))
	if !filepath.IsAbs(p) {
		p = filepath.Join(dir, p)
	}
	return p
}

// LoadableEntries keeps the entries that are regular files in a path
// format Load understands, made absolute.
func LoadableEntries(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if !IsSupportedExt(filepath.Ext(p)) {
			continue
		}
		if info, err := os.Stat(p); err != nil || info.IsDir() {
			continue
		}
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
		out = append(out, p)
	}
	return out
}
