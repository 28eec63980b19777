package testhelper

import (
	"bytes"
)

// BufferReader is an in-memory io.ReadCloser for tests.
type BufferReader struct {
	*bytes.Buffer
}

func NewBufferReader() *BufferReader {
	return &BufferReader{Buffer: &bytes.Buffer{}}
}

func (r *BufferReader) Close() error {
	return nil
}

// BufferWriter is an in-memory io.WriteCloser for tests.
type BufferWriter struct {
	*bytes.Buffer
}

func NewBufferWriterCloser() *BufferWriter {
	return &BufferWriter{Buffer: &bytes.Buffer{}}
}

func (w *BufferWriter) Close() error {
	return nil
}
