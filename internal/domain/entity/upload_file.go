package entity

import (
	"bytes"
	"io"
	"mime/multipart"
)

// UploadFile is one candidate media file of a request. A nil file or one with no bytes is
// treated as absent.
type UploadFile struct {
	Name string
	Size int64
	Open func() (io.ReadSeekCloser, error)
}

func (f *UploadFile) Empty() bool {
	return f == nil || f.Size <= 0 || f.Open == nil
}

func NewUploadFileFromHeader(fh *multipart.FileHeader) *UploadFile {
	if fh == nil {
		return nil
	}

	return &UploadFile{
		Name: fh.Filename,
		Size: fh.Size,
		Open: func() (io.ReadSeekCloser, error) {
			f, err := fh.Open()
			if err != nil {
				return nil, err
			}

			return f, nil
		},
	}
}

func NewUploadFileFromBytes(name string, content []byte) *UploadFile {
	return &UploadFile{
		Name: name,
		Size: int64(len(content)),
		Open: func() (io.ReadSeekCloser, error) {
			return nopSeekCloser{bytes.NewReader(content)}, nil
		},
	}
}

type nopSeekCloser struct {
	*bytes.Reader
}

func (nopSeekCloser) Close() error { return nil }
