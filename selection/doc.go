// Package selection holds the rule-bearing core of the file picker: the
// descriptors a user offers, the accept filter they are matched against, and
// the reconciliation that turns the current selection plus a new batch into
// the next selection.
//
// Everything here is pure. A Selection is treated as an immutable value:
// Reconcile and RemoveAt always return a fresh slice and never write to, or
// alias, the slices they were given.
//
//	out, err := selection.Reconcile(current, batch, selection.AcceptFilter{".png"}, 3)
//	if err != nil {
//	    return err // only for maxFiles < 1
//	}
//	current = out.Selection
//
// Files that fail the filter come back in Outcome.Rejected. That is a policy
// outcome, not an error.
package selection
