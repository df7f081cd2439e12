// Package content serves the application's bundled documents through a
// privileged custom URI scheme. The scheme must be registered once, before
// any window is created.
package content

import (
	_ "embed"
	"fmt"
	"io"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/storage/repository"
)

// Scheme is the custom URI scheme the application registers for its own
// documents.
const Scheme = "flashdesk"

const (
	WelcomeURI = Scheme + "://docs/welcome.md"
	AboutURI   = Scheme + "://docs/about.md"
)

//go:embed docs/welcome.md
var welcomeDoc []byte

//go:embed docs/about.md
var aboutDoc []byte

var registerOnce sync.Once

// Register installs the scheme into Fyne's URI repository table. Safe to
// call more than once; only the first call registers.
func Register() {
	registerOnce.Do(func() {
		repository.Register(Scheme, newDocRepository())
	})
}

// Welcome returns the welcome document, read back through the scheme.
func Welcome() (string, error) {
	return readDocument(WelcomeURI)
}

// About returns the about document.
func About() (string, error) {
	return readDocument(AboutURI)
}

func readDocument(uri string) (string, error) {
	Register()

	u, err := storage.ParseURI(uri)
	if err != nil {
		return "", fmt.Errorf("parse document uri: %w", err)
	}
	reader, err := storage.Reader(u)
	if err != nil {
		return "", fmt.Errorf("open document %s: %w", uri, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read document %s: %w", uri, err)
	}
	return string(data), nil
}

// docRepository resolves scheme URIs against the embedded document set.
type docRepository struct {
	docs map[string][]byte
}

func newDocRepository() *docRepository {
	return &docRepository{
		docs: map[string][]byte{
			WelcomeURI: welcomeDoc,
			AboutURI:   aboutDoc,
		},
	}
}

func (r *docRepository) Exists(u fyne.URI) (bool, error) {
	_, ok := r.docs[u.String()]
	return ok, nil
}

func (r *docRepository) CanRead(u fyne.URI) (bool, error) {
	_, ok := r.docs[u.String()]
	return ok, nil
}

func (r *docRepository) Reader(u fyne.URI) (fyne.URIReadCloser, error) {
	data, ok := r.docs[u.String()]
	if !ok {
		return nil, fmt.Errorf("no document at %s", u.String())
	}
	return &docReader{data: data, uri: u}, nil
}

func (r *docRepository) Destroy(string) {}

// docReader is an in-memory fyne.URIReadCloser over one embedded document.
type docReader struct {
	data []byte
	pos  int
	uri  fyne.URI
}

func (dr *docReader) Read(p []byte) (int, error) {
	if dr.pos >= len(dr.data) {
		return 0, io.EOF
	}
	n := copy(p, dr.data[dr.pos:])
	dr.pos += n
	return n, nil
}

func (dr *docReader) Close() error {
	return nil
}

func (dr *docReader) URI() fyne.URI {
	return dr.uri
}
