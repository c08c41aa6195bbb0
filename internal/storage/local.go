package storage

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileStore — хранилище бинарных файлов документов.
type FileStore interface {
	Save(fileName string, src io.Reader) (string, error)
	Read(path string) ([]byte, error)
	Delete(path string) error
}

// LocalStore кладёт файлы на локальный диск под уникальными именами.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir}, nil
}

// Save записывает файл и возвращает путь-идентификатор.
func (s *LocalStore) Save(fileName string, src io.Reader) (string, error) {
	stored := uuid.NewString() + "_" + filepath.Base(fileName)
	fullPath := filepath.Join(s.dir, stored)

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return fullPath, nil
}

func (s *LocalStore) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (s *LocalStore) Delete(path string) error {
	err := os.Remove(path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
