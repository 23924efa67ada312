package eaf

import (
	"os"
	"path/filepath"
	"strings"
)

// MediaLinkage holds the resolved media URLs for the document header.
// Zero value means "no verified media"; the document still builds.
type MediaLinkage struct {
	// MediaURL is a file-scheme URL to the absolute media path.
	MediaURL string
	// RelativeMediaURL is the ./-prefixed relative path from the
	// document's directory to the media file, forward slashes only.
	RelativeMediaURL string
}

// ResolveMedia derives the companion audio file location for a document
// written at docPath: "<doc base name>.wav", in mediaDir when supplied,
// otherwise alongside the document. When the candidate does not exist on
// disk both URLs stay empty rather than failing the build.
func ResolveMedia(docPath, mediaDir string) MediaLinkage {
	base := strings.TrimSuffix(filepath.Base(docPath), filepath.Ext(docPath))
	dir := mediaDir
	if dir == "" {
		dir = filepath.Dir(docPath)
	}
	wavPath := filepath.Join(dir, base+".wav")

	info, err := os.Stat(wavPath)
	if err != nil || info.IsDir() {
		return MediaLinkage{}
	}

	absWav, err := filepath.Abs(wavPath)
	if err != nil {
		return MediaLinkage{}
	}
	absDocDir, err := filepath.Abs(filepath.Dir(docPath))
	if err != nil {
		return MediaLinkage{}
	}

	rel, err := filepath.Rel(absDocDir, absWav)
	if err != nil {
		return MediaLinkage{}
	}
	rel = filepath.ToSlash(rel)
	if !strings.HasPrefix(rel, ".") {
		rel = "./" + rel
	}

	return MediaLinkage{
		MediaURL:         "file://" + filepath.ToSlash(absWav),
		RelativeMediaURL: rel,
	}
}
