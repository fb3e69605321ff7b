package domain

import (
	"path/filepath"
	"strings"
)

// FileDescriptor is one discovered directory entry. Ext is the last
// dot-separated segment of the base name; a dotless name yields the whole
// name, which no extractor resolves.
type FileDescriptor struct {
	Path     string
	Ext      string
	Checksum string
}

func NewFileDescriptor(path string) FileDescriptor {
	base := filepath.Base(path)

	ext := base
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		ext = base[i+1:]
	}

	return FileDescriptor{Path: path, Ext: ext}
}
