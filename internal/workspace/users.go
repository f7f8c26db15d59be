package workspace

import "github.com/existflow/kerja/internal/model"

// UserInput carries the caller-editable fields of a user
type UserInput struct {
	Name     string
	Username string
	Password string
	Email    string
	Role     string
	Avatar   string
	Theme    string
}

// CreateUser adds a member. Blank username, password, role and avatar fall
// back to derived defaults (see model.DefaultUsername and
// model.FallbackPassword).
func (ws *Workspace) CreateUser(in UserInput) (model.User, error) {
	username := in.Username
	if username == "" {
		username = model.DefaultUsername(in.Name)
	}
	password := in.Password
	if password == "" {
		password = model.FallbackPassword
	}
	avatar := in.Avatar
	if avatar == "" {
		avatar = model.AvatarURL(in.Name)
	}
	role := in.Role
	if role == "" {
		role = model.RoleMember
	}

	user := model.User{
		ID:       ws.newID(),
		Name:     in.Name,
		Username: username,
		Password: password,
		Avatar:   avatar,
		Role:     role,
		Email:    in.Email,
		Theme:    in.Theme,
	}
	ws.users = append(ws.users, user)
	ws.logActivity("added new member", user.Name, model.ActivityTeam)
	ws.persist()
	return user, nil
}

// UpdateUser replaces the editable fields of a member's profile. Activity
// entries already written keep the old name and avatar snapshots.
func (ws *Workspace) UpdateUser(id string, in UserInput) (model.User, error) {
	user := ws.findUser(id)
	if user == nil {
		return model.User{}, &ValidationError{Msg: "user not found: " + id}
	}

	user.Name = in.Name
	user.Username = in.Username
	user.Password = in.Password
	user.Email = in.Email
	user.Role = in.Role
	user.Avatar = in.Avatar
	user.Theme = in.Theme

	ws.logActivity("updated user profile", user.Name, model.ActivityTeam)
	ws.persist()
	return *user, nil
}

// DeleteUser removes a member. Removing the active session identity is
// refused before any mutation, and the bootstrap admin is re-seeded if the
// collection would end up empty.
func (ws *Workspace) DeleteUser(id string) error {
	if id == ws.currentID {
		return &InvalidOperationError{Msg: "you cannot delete yourself"}
	}
	user := ws.findUser(id)
	if user == nil {
		return &ValidationError{Msg: "user not found: " + id}
	}
	name := user.Name

	ws.users = removeByID(ws.users, id, func(u model.User) string { return u.ID })
	ws.logActivity("removed user", name, model.ActivityTeam)
	ws.ensureUsers()
	ws.persist()
	return nil
}
