// internal/app/features/posts/authorize.go
package posts

import (
	"github.com/dalemusser/quillpad/internal/app/system/auth"
	"github.com/dalemusser/quillpad/internal/domain/models"
)

// editDecision is the outcome of an edit authorization check.
type editDecision int

const (
	// editAllowed lets the author through to the form or the save.
	editAllowed editDecision = iota

	// editSignIn sends an anonymous visitor to the login page.
	editSignIn

	// editDeflect quietly sends a signed-in non-author to the post's
	// detail page. No error is shown and no form state is touched.
	editDeflect
)

// authorizeEdit decides what happens when someone reaches the edit
// surface of a post. It is pure: the decision depends only on the
// arguments. The deflect outcome is checked before any form handling so
// a non-author's submission is never validated or persisted.
func authorizeEdit(u *auth.SessionUser, post models.Post) editDecision {
	if u == nil {
		return editSignIn
	}
	if u.ID != post.AuthorID.Hex() {
		return editDeflect
	}
	return editAllowed
}
