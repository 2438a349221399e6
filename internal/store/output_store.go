package store

import (
	"os"
	"path/filepath"

	"killerpack/internal/codec"
	"killerpack/internal/domain"
)

const outputMode = 0o644

// FileOutputStore writes the archive and index files.
type FileOutputStore struct {
	archivePath string
	indexPath   string
}

// NewFileOutputStore returns a FileOutputStore for the two destinations.
func NewFileOutputStore(archivePath, indexPath string) *FileOutputStore {
	return &FileOutputStore{archivePath: archivePath, indexPath: indexPath}
}

// ArchivePath returns the archive destination.
func (s *FileOutputStore) ArchivePath() string { return s.archivePath }

// IndexPath returns the index destination.
func (s *FileOutputStore) IndexPath() string { return s.indexPath }

// Publish stages both files and renames them into place. Nothing is
// renamed unless both were staged; a failure leaves no temp files behind.
// If the index rename fails, the previous archive is restored from a hard
// link taken before the swap.
//
// The two renames are not one atomic step. A reader racing the publish can
// see the new archive next to the old index for that instant. On file
// systems without hard links the previous archive cannot be restored.
func (s *FileOutputStore) Publish(archive, index []byte) error {
	archiveTmp, err := stageFile(s.archivePath, archive, outputMode)
	if err != nil {
		return err
	}
	indexTmp, err := stageFile(s.indexPath, index, outputMode)
	if err != nil {
		_ = os.Remove(archiveTmp)
		return err
	}

	backup := backupArchive(s.archivePath)
	if err := os.Rename(archiveTmp, s.archivePath); err != nil {
		_ = os.Remove(archiveTmp)
		_ = os.Remove(indexTmp)
		removeIfSet(backup)
		return &domain.IOError{Op: "rename", Path: s.archivePath, Err: err}
	}
	if err := os.Rename(indexTmp, s.indexPath); err != nil {
		_ = os.Remove(indexTmp)
		restoreArchive(s.archivePath, backup)
		return &domain.IOError{Op: "rename", Path: s.indexPath, Err: err}
	}
	removeIfSet(backup)
	return nil
}

// backupArchive hard-links the current archive to a sibling name and
// returns that name, or "" when there is nothing to keep.
func backupArchive(path string) string {
	if _, err := os.Lstat(path); err != nil {
		return ""
	}
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".bak-*")
	if err != nil {
		return ""
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	if err := os.Link(path, name); err != nil {
		return ""
	}
	return name
}

// restoreArchive puts the backup back, or removes the new archive when
// there was no previous one.
func restoreArchive(path, backup string) {
	if backup == "" {
		_ = os.Remove(path)
		return
	}
	_ = os.Rename(backup, path)
}

func removeIfSet(path string) {
	if path != "" {
		_ = os.Remove(path)
	}
}

// ReadOutputs loads the published archive and index.
func (s *FileOutputStore) ReadOutputs() (archive, index []byte, err error) {
	if archive, err = readFile(s.archivePath); err != nil {
		return nil, nil, err
	}
	if index, err = readFile(s.indexPath); err != nil {
		return nil, nil, err
	}
	return archive, index, nil
}

// Locate returns the byte range of puzzle id's record in the published
// archive. Only the index is read; the archive is sized with stat.
func (s *FileOutputStore) Locate(id int) (start, end int64, err error) {
	index, err := readFile(s.indexPath)
	if err != nil {
		return 0, 0, err
	}
	fi, err := os.Stat(s.archivePath)
	if err != nil {
		return 0, 0, &domain.IOError{Op: "stat", Path: s.archivePath, Err: err}
	}
	return codec.Span(index, id, fi.Size())
}

// Compile-time assertion that FileOutputStore implements domain.OutputStore.
var _ domain.OutputStore = (*FileOutputStore)(nil)
