package media

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joeyjackson/fourier-series-drawer/internal/catalog"
	"github.com/joeyjackson/fourier-series-drawer/internal/fourier"
)

// ReadJSON accepts either a bare point list or an object with name and path.
func ReadJSON(r io.Reader) (catalog.Signal, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return catalog.Signal{}, fmt.Errorf("read JSON: %w", err)
	}
	var sig catalog.Signal
	if trimmed := strings.TrimSpace(string(data)); strings.HasPrefix(trimmed, "[") {
		err = json.Unmarshal(data, &sig.Path)
	} else {
		err = json.Unmarshal(data, &sig)
	}
	if err != nil {
		return catalog.Signal{}, fmt.Errorf("decode JSON path: %w", err)
	}
	if len(sig.Path) == 0 {
		return catalog.Signal{}, fmt.Errorf("decode JSON path: %w", fourier.ErrEmptySignal)
	}
	for i, p := range sig.Path {
		if !p.IsFinite() {
			return catalog.Signal{}, fmt.Errorf("decode JSON path: point %d is not finite", i)
		}
	}
	return sig, nil
}

// WriteJSON writes sig as an indented object.
func WriteJSON(w io.Writer, sig catalog.Signal) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sig); err != nil {
		return fmt.Errorf("encode JSON path: %w", err)
	}
	return nil
}

// Load reads a path file, picking the format from its extension. The
// signal is named after the file unless the file names it.
func Load(path string, opts ReadOptions) (catalog.Signal, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !IsSupportedExt(ext) {
		return catalog.Signal{}, fmt.Errorf("unsupported format %s (supported: %s)", ext, SupportedExtsList())
	}
	f, err := os.Open(path)
	if err != nil {
		return catalog.Signal{}, err
	}
	defer f.Close()

	switch ext {
	case ".wav":
		pts, err := ReadWAV(f, opts)
		if err != nil {
			return catalog.Signal{}, fmt.Errorf("%s: %w", path, err)
		}
		return catalog.Signal{Name: SignalName(path), Path: pts}, nil
	default:
		sig, err := ReadJSON(f)
		if err != nil {
			return catalog.Signal{}, fmt.Errorf("%s: %w", path, err)
		}
		if sig.Name == "" {
			sig.Name = SignalName(path)
		}
		return sig, nil
	}
}

// LoadAll expands playlists and loads every path file it names, skipping
// entries that fail. It returns the first error only if nothing loaded.
func LoadAll(paths []string, opts ReadOptions) ([]catalog.Signal, error) {
	var files []string
	for _, p := range paths {
		if IsPlaylistExt(filepath.Ext(p)) {
			entries, err := ReadPathList(p)
			if err != nil {
				return nil, err
			}
			files = append(files, LoadableEntries(entries)...)
			continue
		}
		files = append(files, p)
	}

	var (
		out      []catalog.Signal
		firstErr error
	)
	for _, f := range files {
		sig, err := Load(f, opts)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		out = append(out, sig)
	}
	if len(out) == 0 && firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

// Save writes sig to path as WAV or JSON depending on its extension.
func Save(path string, sig catalog.Signal, opts WAVOptions) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !IsSupportedExt(ext) {
		return fmt.Errorf("unsupported format %s (supported: %s)", ext, SupportedExtsList())
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if ext == ".wav" {
		err = WriteWAV(f, sig.Path, opts)
	} else {
		err = WriteJSON(f, sig)
	}
	if err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
