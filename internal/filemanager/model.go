package filemanager

import "io"

type File struct {
	Name        string
	Size        int64
	ContentType string
	Reader      io.Reader
}

func (f *File) Empty() bool {
	return f == nil || f.Reader == nil || f.Name == ""
}
