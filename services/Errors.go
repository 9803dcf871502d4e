package services

import "fmt"

type NotFoundError struct {
	Path string
	Err  error
}

func (err *NotFoundError) Error() string {
	return fmt.Sprintf("file %s not found", err.Path)
}

func (err *NotFoundError) Unwrap() error {
	return err.Err
}

// DecodeError reports input that is not valid UTF-8. Offset is the byte
// position of the first invalid sequence.
type DecodeError struct {
	Path     string
	Offset   int
	MimeType string
}

func (err *DecodeError) Error() string {
	return fmt.Sprintf("%s is not valid UTF-8: invalid byte at offset %d (detected content type %s)", err.Path, err.Offset, err.MimeType)
}
