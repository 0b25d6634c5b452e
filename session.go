package guard

import "github.com/jmgilman/go/guard/errors"

// PerformSecureOperation returns the secure message for a logged-in user.
//
// Returns CodeInvalidState if isLoggedIn is false.
func (g *Guard) PerformSecureOperation(isLoggedIn bool) (string, error) {
	if !isLoggedIn {
		return "", g.fail("PerformSecureOperation", errors.New(errors.CodeInvalidState, "user is not logged in"))
	}
	return g.message(), nil
}
