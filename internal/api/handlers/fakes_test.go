package handlers

import (
	"context"

	"github.com/PiotrMigaj/niebieskie-aparaty-admin/internal/models"
)

type fakeUserStore struct {
	users map[string]models.User
	err   error
}

func newFakeUserStore(users ...models.User) *fakeUserStore {
	s := &fakeUserStore{users: map[string]models.User{}}
	for _, u := range users {
		s.users[u.Username] = u
	}
	return s
}

func (s *fakeUserStore) Save(_ context.Context, user models.User) (models.User, error) {
	if s.err != nil {
		return models.User{}, s.err
	}
	s.users[user.Username] = user
	return user, nil
}

func (s *fakeUserStore) ExistsByUsername(_ context.Context, username string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	_, ok := s.users[username]
	return ok, nil
}

func (s *fakeUserStore) FindAll(_ context.Context) ([]models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	return users, nil
}

type fakeEventStore struct {
	events map[string]models.Event
	err    error
}

func newFakeEventStore(events ...models.Event) *fakeEventStore {
	s := &fakeEventStore{events: map[string]models.Event{}}
	for _, e := range events {
		s.events[e.EventID] = e
	}
	return s
}

func (s *fakeEventStore) Save(_ context.Context, event models.Event) (models.Event, error) {
	if s.err != nil {
		return models.Event{}, s.err
	}
	s.events[event.EventID] = event
	return event, nil
}

func (s *fakeEventStore) ExistsByID(_ context.Context, eventID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	_, ok := s.events[eventID]
	return ok, nil
}

func (s *fakeEventStore) FindByUsername(_ context.Context, username string) ([]models.Event, error) {
	if s.err != nil {
		return nil, s.err
	}
	events := make([]models.Event, 0)
	for _, e := range s.events {
		if e.Username == username {
			events = append(events, e)
		}
	}
	return events, nil
}

type fakeFileStore struct {
	files map[string]models.File
	err   error
}

func newFakeFileStore(files ...models.File) *fakeFileStore {
	s := &fakeFileStore{files: map[string]models.File{}}
	for _, f := range files {
		s.files[f.FileID] = f
	}
	return s
}

func (s *fakeFileStore) Save(_ context.Context, file models.File) (models.File, error) {
	if s.err != nil {
		return models.File{}, s.err
	}
	s.files[file.FileID] = file
	return file, nil
}

func (s *fakeFileStore) FindByUsername(_ context.Context, username string) ([]models.File, error) {
	if s.err != nil {
		return nil, s.err
	}
	files := make([]models.File, 0)
	for _, f := range s.files {
		if f.Username == username {
			files = append(files, f)
		}
	}
	return files, nil
}
