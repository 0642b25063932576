//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package file

import "io/fs"

type Repository interface {
	Read(path string) ([]byte, error)
	Write(path string, data []byte) error
	Exists(path string) bool
	IsDir(path string) bool
	ReadDir(dir string) ([]fs.DirEntry, error)
	Getwd() (string, error)
}
