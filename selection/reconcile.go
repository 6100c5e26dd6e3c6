package selection

import "fmt"

// Outcome is the result of a reconciliation.
type Outcome struct {
	// Selection is the next selection. Always len <= maxFiles.
	Selection Selection
	// Accepted is the part of the offered batch that passed the filter,
	// before truncation.
	Accepted []FileDescriptor
	// Rejected is the part of the offered batch the filter excluded.
	Rejected []FileDescriptor
}

// Reconcile computes the selection that results from offering batch to a
// picker currently holding current.
//
// With maxFiles == 1 the accepted batch replaces the selection outright: the
// result is the first accepted file, or empty when nothing was accepted.
// With maxFiles > 1 the accepted files are appended and the result is cut to
// the first maxFiles entries, so the oldest files survive and excess new ones
// are dropped.
//
// maxFiles < 1 fails with ErrInvalidArgument.
func Reconcile(current Selection, batch []FileDescriptor, filter AcceptFilter, maxFiles int) (Outcome, error) {
	if maxFiles < 1 {
		return Outcome{}, fmt.Errorf("%w: maxFiles must be at least 1, got %d", ErrInvalidArgument, maxFiles)
	}

	accepted, rejected := filter.Partition(batch)

	var next Selection
	if maxFiles == 1 {
		next = make(Selection, 0, 1)
		if len(accepted) > 0 {
			next = append(next, accepted[0])
		}
	} else {
		next = make(Selection, 0, min(len(current)+len(accepted), maxFiles))
		for _, fd := range current {
			if len(next) == maxFiles {
				break
			}
			next = append(next, fd)
		}
		for _, fd := range accepted {
			if len(next) == maxFiles {
				break
			}
			next = append(next, fd)
		}
	}

	return Outcome{
		Selection: next,
		Accepted:  accepted,
		Rejected:  rejected,
	}, nil
}

// RemoveAt returns a copy of current without the element at index.
// The remaining files keep their relative order. An index outside
// [0, len(current)) fails with ErrOutOfRange.
func RemoveAt(current Selection, index int) (Selection, error) {
	if index < 0 || index >= len(current) {
		return nil, fmt.Errorf("%w: index %d not in [0, %d)", ErrOutOfRange, index, len(current))
	}
	next := make(Selection, 0, len(current)-1)
	next = append(next, current[:index]...)
	next = append(next, current[index+1:]...)
	return next, nil
}
