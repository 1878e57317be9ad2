package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"

	"github.com/Alexander-D-Karpov/tamp/pkg/types"
)

// ReadTrack builds a Track for path. Missing or unreadable tags are not an
// error; the file must exist though.
func ReadTrack(path string) (*types.Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	track := &types.Track{
		Path:     path,
		FileType: strings.ToUpper(strings.TrimPrefix(filepath.Ext(path), ".")),
	}

	// untagged files (tag.ErrNoTagsFound) keep the file-name defaults
	m, err := tag.ReadFrom(f)
	if err != nil {
		return track, nil
	}

	track.Title = strings.TrimSpace(m.Title())
	track.Artist = strings.TrimSpace(m.Artist())
	track.Album = strings.TrimSpace(m.Album())
	if ft := string(m.FileType()); ft != "" {
		track.FileType = ft
	}
	return track, nil
}
