package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

type fakeAPI struct {
	session *Session
	err     error
}

func (f *fakeAPI) Login(context.Context, string, string) (*Session, error) {
	return f.session, f.err
}

func (f *fakeAPI) Register(context.Context, string, string, string) (*Session, error) {
	return f.session, f.err
}

func newTestManager(t *testing.T, api API) *Manager {
	t.Helper()
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	return NewManager(store, api, zap.NewNop())
}

func TestManagerLoginActivatesAndPersists(t *testing.T) {
	api := &fakeAPI{session: &Session{Name: "Ada", Email: "ada@example.com", Token: "tok1"}}
	mgr := newTestManager(t, api)

	sess, err := mgr.Login(context.Background(), "ada@example.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.Token != "tok1" {
		t.Fatalf("unexpected session: %+v", sess)
	}
	if mgr.Token() != "tok1" {
		t.Fatalf("manager did not activate the session, token %q", mgr.Token())
	}

	loaded, err := mgr.store.Load()
	if err != nil {
		t.Fatalf("session was not persisted: %v", err)
	}
	if loaded.Email != "ada@example.com" {
		t.Fatalf("persisted session differs: %+v", loaded)
	}
}

func TestManagerLoginFailureKeepsCurrent(t *testing.T) {
	api := &fakeAPI{session: &Session{Token: "tok1", Email: "ada@example.com"}}
	mgr := newTestManager(t, api)

	if _, err := mgr.Login(context.Background(), "ada@example.com", "secret"); err != nil {
		t.Fatalf("priming login: %v", err)
	}

	api.session = nil
	api.err = errors.New("backend rejected the credentials")

	if _, err := mgr.Login(context.Background(), "ada@example.com", "wrong"); err == nil {
		t.Fatal("expected the second login to fail")
	}

	if mgr.Token() != "tok1" {
		t.Fatalf("a failed login must not touch the active session, token %q", mgr.Token())
	}
}

func TestManagerLogout(t *testing.T) {
	api := &fakeAPI{session: &Session{Token: "tok1"}}
	mgr := newTestManager(t, api)

	if _, err := mgr.Login(context.Background(), "a@b.com", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}

	mgr.Logout()

	if mgr.Token() != "" {
		t.Fatal("logout must drop the in-memory session")
	}
	if _, err := mgr.store.Load(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("logout must drop the persisted session, got %v", err)
	}
	if mgr.Current() != nil {
		t.Fatal("current session must be nil after logout")
	}
}

func TestManagerRestore(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	if err := store.Save(&Session{Name: "Ada", Token: "tok1"}); err != nil {
		t.Fatalf("seeding store: %v", err)
	}

	mgr := NewManager(store, nil, zap.NewNop())
	mgr.Restore()

	if mgr.Token() != "tok1" {
		t.Fatalf("restore did not pick up the persisted session, token %q", mgr.Token())
	}
}

func TestManagerRestoreWithNothingPersisted(t *testing.T) {
	mgr := newTestManager(t, nil)
	mgr.Restore()

	if mgr.Current() != nil {
		t.Fatal("restore with no file must stay logged out")
	}
}

func TestManagerSetAPI(t *testing.T) {
	mgr := newTestManager(t, nil)
	mgr.SetAPI(&fakeAPI{session: &Session{Token: "tok1"}})

	if _, err := mgr.Login(context.Background(), "a@b.com", "secret"); err != nil {
		t.Fatalf("login through a late-wired api: %v", err)
	}
}
