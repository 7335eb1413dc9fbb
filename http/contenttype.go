package http

import (
	"mime"
	"path"
	"strings"

	"github.com/h2non/filetype"
	"github.com/pkg/errors"
)

// contentType determines the content type for a file under the root,
// sniffing the file contents first and falling back to the extension.
func (h *Handler) contentType(name string) string {
	if ct, err := sniffContentType(string(h.root), name); err == nil && ct != "" {
		return ct
	}
	if ct := mime.TypeByExtension(strings.ToLower(path.Ext(name))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func sniffContentType(root, name string) (string, error) {
	match, err := filetype.MatchFile(path.Join(root, name))
	if err != nil {
		return "", errors.Wrap(err, "match failed")
	}
	return match.MIME.Value, nil
}
