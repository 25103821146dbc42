package util

import (
	"os"
)

// FileInfo contains the file attributes used for change detection.
type FileInfo struct {
	ModTime int64 // Last modification time of the file
	Size    int64 // File size in bytes
}

// GetFileInfo retrieves modification time and size for a file.
func GetFileInfo(filepath string) (*FileInfo, error) {
	stat, err := os.Stat(filepath)
	if err != nil {
		return nil, err
	}

	return &FileInfo{
		ModTime: stat.ModTime().Unix(),
		Size:    stat.Size(),
	}, nil
}
