// Package labeler assigns tag sets to incoming content.
//
// Today there is no real labelling model: every item gets the same fixed
// placeholder set. The interface exists so the real component can be swapped
// in later without touching handler code.
package labeler

// Labeler decides which labels a new Content Item should carry.
type Labeler interface {
	Label(source, content string) []string
}

// Placeholder is the stub Labeler. It ignores its inputs and returns the
// fixed placeholder set attached to every item.
type Placeholder struct{}

// Label implements Labeler. A fresh slice is returned on every call so
// callers are free to append to or reorder the result.
func (Placeholder) Label(source, content string) []string {
	return []string{"africa", "tech", "pending"}
}
