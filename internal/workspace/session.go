package workspace

import "github.com/existflow/kerja/internal/model"

// CurrentUser returns the session identity, or nil when logged out
func (ws *Workspace) CurrentUser() *model.User {
	u := ws.findUser(ws.currentID)
	if u == nil {
		return nil
	}
	copied := *u
	return &copied
}

// Login validates credentials with an exact, case-sensitive match and
// establishes the session identity. A mismatch changes nothing and logs
// nothing.
func (ws *Workspace) Login(username, password string) (model.User, error) {
	for _, u := range ws.users {
		if u.Username == username && u.Password == password {
			ws.currentID = u.ID
			ws.logActivity("logged in", u.Name, model.ActivityTeam)
			ws.persist()
			return u, nil
		}
	}
	return model.User{}, &AuthError{Msg: "invalid username or password"}
}

// Logout clears the session identity unconditionally. Nothing is logged;
// the persisted session pointer is removed.
func (ws *Workspace) Logout() {
	ws.currentID = ""
	ws.persist()
}

// DefaultCredentialsActive reports whether any account still carries the
// bootstrap admin/123 credentials, so a login screen can hint at them.
func (ws *Workspace) DefaultCredentialsActive() bool {
	for _, u := range ws.users {
		if u.Username == "admin" && u.Password == "123" {
			return true
		}
	}
	return false
}
