package internal

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
)

// Resource is what a request path resolved to.
type Resource struct {
	Content []byte
	Mime    string
	IsDir   bool
}

// Resolver maps request paths onto a document root.
//
// Paths are appended to the root as they are. Unless confine is set,
// ".." segments are honored and may leave the root.
type Resolver struct {
	root    string
	confine bool
}

func NewResolver(root string, confine bool) *Resolver {
	return &Resolver{
		root:    strings.TrimRight(root, "/"),
		confine: confine,
	}
}

func (r *Resolver) Root() string {
	return r.root
}

// MimeType guesses the mime type of path from its suffix alone.
func MimeType(path string) string {
	switch {
	case strings.HasSuffix(path, ".html"), strings.HasSuffix(path, ".htm"):
		return MimeHTML
	case strings.HasSuffix(path, ".txt"):
		return MimePlain
	case strings.HasSuffix(path, ".png"):
		return MimePNG
	case strings.HasSuffix(path, ".jpg"):
		return MimeJPEG
	default:
		return MimePlain
	}
}

func (r *Resolver) join(path string) (string, error) {
	name := filepath.FromSlash(r.root + path)

	if r.confine {
		rel, err := filepath.Rel(r.root, filepath.Clean(name))
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return "", newError(NotFound, path, err)
		}
	}

	return name, nil
}

// Resolve reads the file or lists the directory that path names.
// Directories are always served as text/plain.
func (r *Resolver) Resolve(path string) (*Resource, error) {
	mime := MimeType(path)

	name, err := r.join(path)
	if err != nil {
		return nil, err
	}

	fp, err := os.Open(name)
	if err != nil {
		return nil, r.wrap(path, err)
	}
	defer fp.Close()

	stat, err := fp.Stat()
	if err != nil {
		return nil, r.wrap(path, err)
	}

	if stat.IsDir() {
		entries, err := fp.ReadDir(-1)
		if err != nil {
			return nil, r.wrap(path, err)
		}

		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			names = append(names, entry.Name())
		}
		sort.Strings(names)

		return &Resource{
			Content: []byte(strings.Join(names, crlf)),
			Mime:    MimePlain,
			IsDir:   true,
		}, nil
	}

	content, err := io.ReadAll(fp)
	if err != nil {
		return nil, r.wrap(path, err)
	}

	return &Resource{
		Content: content,
		Mime:    mime,
	}, nil
}

func (r *Resolver) wrap(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
		return newError(NotFound, path, err)
	}
	return newError(ResourceFailure, path, err)
}
