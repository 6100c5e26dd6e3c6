package selection

import "strings"

// AcceptFilter is the list of accepted type patterns, e.g. ".png" or
// "image/*". An empty filter accepts everything.
//
// Matching is deliberately plain: each pattern has any trailing "*" removed,
// then a file matches if its MIME type contains the pattern or its name ends
// with it. Matching is case-sensitive and there is no glob engine.
type AcceptFilter []string

// Accepts reports whether fd passes the filter.
func (f AcceptFilter) Accepts(fd FileDescriptor) bool {
	if len(f) == 0 {
		return true
	}
	for _, pattern := range f {
		p := strings.TrimRight(pattern, "*")
		if strings.Contains(fd.MIMEType, p) || strings.HasSuffix(fd.Name, p) {
			return true
		}
	}
	return false
}

// Partition splits batch into the files that pass the filter and those that
// do not, keeping the relative order of each.
func (f AcceptFilter) Partition(batch []FileDescriptor) (accepted, rejected []FileDescriptor) {
	accepted = make([]FileDescriptor, 0, len(batch))
	for _, fd := range batch {
		if f.Accepts(fd) {
			accepted = append(accepted, fd)
		} else {
			rejected = append(rejected, fd)
		}
	}
	return accepted, rejected
}

// String renders the filter the way an HTML accept attribute expects it.
func (f AcceptFilter) String() string {
	return strings.Join(f, ",")
}
