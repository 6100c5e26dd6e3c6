package hxdrop

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/pthm/hxdrop/selection"
)

// Form fields of a descriptor batch. The embedded script sends one
// name/type/size triple per offered file, in the order the browser listed
// them.
const (
	fieldName  = "name"
	fieldType  = "type"
	fieldSize  = "size"
	fieldIndex = "index"
	fieldState = "p"
)

// parseBatch reads the offered descriptor batch from a form-encoded request.
// An empty batch is valid (a cancelled dialog or a drop of nothing).
func parseBatch(r *http.Request) ([]selection.FileDescriptor, error) {
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("parse form: %w", ErrInvalidFormat)
	}

	names := r.PostForm[fieldName]
	types := r.PostForm[fieldType]
	sizes := r.PostForm[fieldSize]
	if len(types) != len(names) || len(sizes) != len(names) {
		return nil, fmt.Errorf("batch has %d names, %d types, %d sizes: %w",
			len(names), len(types), len(sizes), ErrInvalidFormat)
	}

	batch := make([]selection.FileDescriptor, 0, len(names))
	for i, name := range names {
		size, err := strconv.ParseInt(sizes[i], 10, 64)
		if err != nil || size < 0 {
			return nil, fmt.Errorf("size %q of %q: %w", sizes[i], name, ErrInvalidFormat)
		}
		batch = append(batch, selection.FileDescriptor{
			Name:     name,
			MIMEType: types[i],
			Size:     size,
		})
	}
	return batch, nil
}

// parseIndex reads the removal index.
func parseIndex(r *http.Request) (int, error) {
	raw := r.FormValue(fieldIndex)
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("index %q: %w", raw, ErrInvalidFormat)
	}
	return index, nil
}
