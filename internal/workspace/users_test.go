package workspace

import (
	"errors"
	"testing"

	"github.com/existflow/kerja/internal/model"
	"github.com/existflow/kerja/internal/store"
)

func TestCreateUserDefaults(t *testing.T) {
	ws, _ := newTestWorkspace(t)
	loginAdmin(t, ws)

	user, err := ws.CreateUser(UserInput{Name: "Jane Doe", Email: "jane@kerja.app"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.Username != "janedoe" {
		t.Fatalf("expected derived username, got %q", user.Username)
	}
	if user.Password != model.FallbackPassword {
		t.Fatalf("expected fallback password, got %q", user.Password)
	}
	if user.Avatar == "" {
		t.Fatalf("expected generated avatar")
	}
	if user.Role != model.RoleMember {
		t.Fatalf("expected Member default role, got %q", user.Role)
	}
	if got := ws.Activities()[0].Action; got != "added new member" {
		t.Fatalf("expected 'added new member', got %q", got)
	}
}

func TestSelfDeletionGuard(t *testing.T) {
	ws, _ := newTestWorkspace(t)
	admin := loginAdmin(t, ws)

	var invOp *InvalidOperationError
	err := ws.DeleteUser(admin.ID)
	if !errors.As(err, &invOp) {
		t.Fatalf("expected InvalidOperationError, got %v", err)
	}
	if len(ws.Users()) != 1 {
		t.Fatalf("blocked self-deletion must not mutate the collection")
	}
	if u := ws.CurrentUser(); u == nil || u.ID != admin.ID {
		t.Fatalf("session must survive a blocked self-deletion")
	}
}

func TestDeleteUser(t *testing.T) {
	ws, _ := newTestWorkspace(t)
	loginAdmin(t, ws)

	user, err := ws.CreateUser(UserInput{Name: "Jane Doe"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := ws.DeleteUser(user.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if len(ws.Users()) != 1 {
		t.Fatalf("expected only the admin left, got %d users", len(ws.Users()))
	}
	if got := ws.Activities()[0].Action; got != "removed user" {
		t.Fatalf("expected 'removed user', got %q", got)
	}
	if got := ws.Activities()[0].Target; got != "Jane Doe" {
		t.Fatalf("expected victim name as target, got %q", got)
	}
}

func TestUpdateUserProfile(t *testing.T) {
	ws, _ := newTestWorkspace(t)
	loginAdmin(t, ws)

	user, err := ws.CreateUser(UserInput{Name: "Jane Doe"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	updated, err := ws.UpdateUser(user.ID, UserInput{
		Name:     "Jane Smith",
		Username: user.Username,
		Password: user.Password,
		Email:    "jane.smith@kerja.app",
		Role:     model.RoleGuest,
		Avatar:   user.Avatar,
		Theme:    "violet",
	})
	if err != nil {
		t.Fatalf("update user: %v", err)
	}
	if updated.Name != "Jane Smith" || updated.Role != model.RoleGuest || updated.Theme != "violet" {
		t.Fatalf("unexpected result: %+v", updated)
	}
	if got := ws.Activities()[0].Action; got != "updated user profile" {
		t.Fatalf("expected 'updated user profile', got %q", got)
	}
}

func TestLoginAndLogout(t *testing.T) {
	ws, db := newTestWorkspace(t)

	if _, err := ws.Login("admin", "wrong"); err == nil {
		t.Fatalf("expected login failure")
	} else {
		var authErr *AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected AuthError, got %v", err)
		}
	}
	if len(ws.Activities()) != 0 {
		t.Fatalf("failed login must not log activity")
	}
	if ws.CurrentUser() != nil {
		t.Fatalf("failed login must not establish a session")
	}

	user, err := ws.Login("admin", "123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != "u1" {
		t.Fatalf("unexpected user: %+v", user)
	}
	entries := ws.Activities()
	if len(entries) != 1 || entries[0].Action != "logged in" || entries[0].UserID != "u1" {
		t.Fatalf("expected one attributed 'logged in' entry, got %+v", entries)
	}
	if entries[0].Type != model.ActivityTeam {
		t.Fatalf("expected team-typed entry, got %q", entries[0].Type)
	}
	if _, ok := db.LoadString(store.KeySession); !ok {
		t.Fatalf("expected session pointer persisted")
	}

	ws.Logout()
	if ws.CurrentUser() != nil {
		t.Fatalf("expected session cleared")
	}
	if _, ok := db.LoadString(store.KeySession); ok {
		t.Fatalf("expected persisted session pointer removed on logout")
	}
	// Logout itself is not logged.
	if len(ws.Activities()) != 1 {
		t.Fatalf("logout must not log activity")
	}
}

func TestDefaultCredentialsActive(t *testing.T) {
	ws, _ := newTestWorkspace(t)
	if !ws.DefaultCredentialsActive() {
		t.Fatalf("fresh workspace should report default credentials")
	}

	admin := loginAdmin(t, ws)
	if _, err := ws.UpdateUser(admin.ID, UserInput{
		Name: admin.Name, Username: admin.Username, Password: "s3cret",
		Email: admin.Email, Role: admin.Role, Avatar: admin.Avatar,
	}); err != nil {
		t.Fatalf("update user: %v", err)
	}
	if ws.DefaultCredentialsActive() {
		t.Fatalf("changed password should clear the hint")
	}
}
