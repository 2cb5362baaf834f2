// Package media reads and writes signals as files: stereo WAV (left channel
// is x, right channel is y, the oscilloscope-music convention), JSON point
// lists, and playlists that name several of those.
package media

import (
	"path/filepath"
	"strings"
)

var pathExts = map[string]bool{
	".wav":  true,
	".json": true,
}

var playlistExts = map[string]bool{
	".m3u":  true,
	".m3u8": true,
	".pls":  true,
}

// IsSupportedExt returns true if the extension is a loadable path format.
func IsSupportedExt(ext string) bool {
	return pathExts[strings.ToLower(ext)]
}

// IsPlaylistExt returns true if the extension is a supported playlist format.
func IsPlaylistExt(ext string) bool {
	return playlistExts[strings.ToLower(ext)]
}

// SupportedExtsList returns a human-readable list of loadable path formats.
func SupportedExtsList() string {
	return ".wav, .json"
}

// SignalName derives a catalog name from a file path.
func SignalName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
