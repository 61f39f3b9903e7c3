// Package fixture generates the CSV input files consumed by alglobo.
// A fixture file holds one payment per line, "<id>,<amount>,<amount>", with ids counting up from 1.
package fixture

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Writer writes rows into a single fixture file.
// The file is created (or truncated) on Open or on the first Write.
type Writer struct {
	Comma       rune // Comma is the field delimiter. It is set to ',' by NewWriter.
	writer      *csv.Writer
	currentFile *os.File
	fileName    string // file name with path
	logger      zerolog.Logger
	rows        int
}

// NewWriter creates a Writer for the file example-<suffix>.csv in outPath.
// outPath is not created, it must exist when the file is opened.
func NewWriter(outPath string, suffix string) *Writer {
	return &Writer{
		Comma:    ',',
		fileName: filepath.Join(outPath, fileName(suffix)),
		logger:   log.With().Str("component", "fixture").Logger(),
	}
}

// Open creates or truncates the fixture file.
// Calling Open on an already open Writer is a no-op.
func (w *Writer) Open() error {
	if w.writer != nil {
		return nil
	}
	f, err := os.OpenFile(w.fileName, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return w.handleWriteErrors("create", err)
	}
	w.currentFile = f
	w.writer = csv.NewWriter(f)
	w.writer.Comma = w.Comma
	w.rows = 0
	w.logger.Debug().Msgf("created file %s", w.fileName)
	return nil
}

// Write writes a single row.
// Errors are returned as *FileAccessError; a full disk is reported with a wrapped *DiskFull.
func (w *Writer) Write(r Row) error {
	if err := w.Open(); err != nil {
		return err
	}
	if err := w.writer.Write(r.Record()); err != nil {
		return w.handleWriteErrors("write", err)
	}
	w.rows++
	return nil
}

// Close flushes the buffered rows and closes the file.
// Subsequent writes truncate the file again.
func (w *Writer) Close() error {
	if w.writer == nil {
		return nil
	}
	w.writer.Flush()
	flushErr := w.writer.Error()
	closeErr := w.currentFile.Close()
	w.writer = nil
	w.currentFile = nil

	if flushErr != nil {
		return w.handleWriteErrors("flush", flushErr)
	}
	if closeErr != nil {
		return w.handleWriteErrors("close", closeErr)
	}
	return nil
}

// FileName returns the path of the fixture file
func (w *Writer) FileName() string {
	return w.fileName
}

// Rows returns the number of rows written since the file was opened
func (w *Writer) Rows() int {
	return w.rows
}

func (w *Writer) handleWriteErrors(op string, err error) error {
	if errors.Is(err, syscall.ENOSPC) {
		w.logger.Warn().Msgf("disk full %s", w.fileName)
		err = &DiskFull{Err: err}
	}
	return &FileAccessError{Op: op, Path: w.fileName, Err: err}
}
