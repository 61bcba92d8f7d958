package download

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimalPDF builds a valid PDF with the given number of blank pages
func minimalPDF(pages int) []byte {
	var buf bytes.Buffer
	var offsets []int

	obj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n")
	obj("<< /Type /Catalog /Pages 2 0 R >>")

	kids := make([]string, pages)
	for i := range kids {
		kids[i] = fmt.Sprintf("%d 0 R", i+3)
	}
	obj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), pages))
	for i := 0; i < pages; i++ {
		obj("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>")
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(offsets)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)
	return buf.Bytes()
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "BLCA11_fnet_501.pdf", FileName("BLCA11", 501))
	assert.Equal(t, "ABC11_fnet_1.pdf", FileName("../ABC11", 1))
	assert.Equal(t, "ABC11_fnet_2.pdf", FileName("..ABC11..", 2))
	assert.Equal(t, "ABC11_fnet_3.pdf", FileName("A.B/C 11", 3))
}

func TestSaveWritesNamedFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "downloads")
	s := NewSaver(dir)

	saved, err := s.Save("BLCA11", 42, bytes.NewReader(minimalPDF(3)))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "BLCA11_fnet_42.pdf"), saved.Path)
	assert.Equal(t, 3, saved.Pages)
	assert.Greater(t, saved.Bytes, int64(0))
	assert.Equal(t, []string{"BLCA11_fnet_42.pdf"}, listDir(t, dir))
}

func TestSaveOpaqueBodyStillSucceeds(t *testing.T) {
	dir := t.TempDir()
	saved, err := NewSaver(dir).Save("BLCA11", 1, strings.NewReader("not really a pdf"))
	require.NoError(t, err)
	assert.Equal(t, 0, saved.Pages)

	data, err := os.ReadFile(saved.Path)
	require.NoError(t, err)
	assert.Equal(t, "not really a pdf", string(data))
}

type failingReader struct{ after int }

func (r *failingReader) Read(p []byte) (int, error) {
	if r.after <= 0 {
		return 0, errors.New("connection reset")
	}
	n := min(len(p), r.after)
	for i := 0; i < n; i++ {
		p[i] = 'x'
	}
	r.after -= n
	return n, nil
}

func TestSaveFailureLeavesNoFiles(t *testing.T) {
	dir := t.TempDir()
	_, err := NewSaver(dir).Save("BLCA11", 9, &failingReader{after: 1024})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.Empty(t, listDir(t, dir))
}

func TestSaveEmptyBody(t *testing.T) {
	dir := t.TempDir()
	saved, err := NewSaver(dir).Save("BLCA11", 9, strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, int64(0), saved.Bytes)
	assert.Equal(t, 0, saved.Pages)
	assert.Equal(t, []string{"BLCA11_fnet_9.pdf"}, listDir(t, dir))
}

func TestSaveOverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	s := NewSaver(dir)
	_, err := s.Save("BLCA11", 5, strings.NewReader("first"))
	require.NoError(t, err)
	saved, err := s.Save("BLCA11", 5, strings.NewReader("second"))
	require.NoError(t, err)

	data, err := os.ReadFile(saved.Path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
	assert.Len(t, listDir(t, dir), 1)
}

func TestPageCountRejectsNonPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.pdf")
	require.NoError(t, os.WriteFile(path, []byte("<html>"), 0644))
	_, err := PageCount(path)
	assert.Error(t, err)
	assert.False(t, IsPDF(path))
}
