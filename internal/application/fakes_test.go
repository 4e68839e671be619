package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/linskybing/storeops-go/internal/domain/alert"
	"github.com/linskybing/storeops-go/internal/domain/user"
	"github.com/linskybing/storeops-go/internal/repository"
	"github.com/linskybing/storeops-go/internal/testutils"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestClock() *testclock.Clock {
	return testclock.NewClock(testNow)
}

type fakeNotifier struct {
	mu   sync.Mutex
	reqs []alert.Request
	id   uint
	err  error
}

func (f *fakeNotifier) Dispatch(_ context.Context, req alert.Request) (uint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, req)
	return f.id, f.err
}

func (f *fakeNotifier) requests() []alert.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]alert.Request(nil), f.reqs...)
}

type emitted struct {
	room  string
	event interface{}
}

type fakeEmitter struct {
	mu     sync.Mutex
	events []emitted
}

func (f *fakeEmitter) Emit(room string, event interface{}) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, emitted{room: room, event: event})
	return 1, nil
}

func (f *fakeEmitter) rooms() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.room)
	}
	return out
}

type sentMail struct {
	to, subject, body string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (f *fakeMailer) Enabled() bool { return true }

func (f *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

type fakeSMS struct {
	mu   sync.Mutex
	sent map[string]string
}

func (f *fakeSMS) Enabled() bool { return true }

func (f *fakeSMS) Send(_ context.Context, to, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sent == nil {
		f.sent = map[string]string{}
	}
	f.sent[to] = body
	return nil
}

type fakeSignatures struct {
	url string
	err error
}

func (f *fakeSignatures) Upload(_ context.Context, _ uint, _ string) (string, error) {
	return f.url, f.err
}

// newSQLiteRepos returns repositories over a fresh in-memory database.
func newSQLiteRepos(t *testing.T) *repository.Repos {
	return repository.NewRepositories(testutils.NewSQLiteDB(t))
}

func createUser(t *testing.T, repos *repository.Repos, name, role, email, phone string) user.User {
	t.Helper()
	u := user.User{Username: name, Password: "x", Role: role, Email: email, PhoneNumber: phone}
	require.NoError(t, repos.User.SaveUser(&u))
	return u
}
