package selection

// FileDescriptor describes a file the user offered. Only metadata is carried;
// the picker never reads file contents.
type FileDescriptor struct {
	Name     string `msgpack:"n" json:"name"`
	MIMEType string `msgpack:"t,omitempty" json:"type"`
	Size     int64  `msgpack:"s,omitempty" json:"size"`
}

// Selection is an ordered list of accepted files. Order is insertion order
// and drives both display and truncation.
type Selection []FileDescriptor

// Len returns the number of selected files.
func (s Selection) Len() int {
	return len(s)
}

// Names returns the file names in selection order.
func (s Selection) Names() []string {
	names := make([]string, len(s))
	for i, fd := range s {
		names[i] = fd.Name
	}
	return names
}

// TotalSize returns the sum of all file sizes in bytes.
func (s Selection) TotalSize() int64 {
	var total int64
	for _, fd := range s {
		total += fd.Size
	}
	return total
}

// Clone returns a copy that shares no backing array with s.
// A nil or empty selection clones to an empty, non-nil selection.
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	copy(out, s)
	return out
}
