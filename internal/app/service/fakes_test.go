package service

import (
	"context"

	"taskdeck/internal/common"
	"taskdeck/internal/domain/model"
)

// In-memory repository fakes. They return copies so tests observe stored
// state rather than shared pointers, like a real row scan would.

type fakeUserRepo struct {
	users  map[int64]model.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]model.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return common.ErrConflict
		}
	}
	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	if u, ok := r.users[id]; ok {
		copied := u
		return &copied, nil
	}
	return nil, common.ErrNotFound
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copied := u
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeUserRepo) FindAll(ctx context.Context) ([]model.User, error) {
	var users []model.User
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

func (r *fakeUserRepo) UpdatePassword(ctx context.Context, id int64, hashedPassword string) error {
	u, ok := r.users[id]
	if !ok {
		return common.ErrNotFound
	}
	u.HashedPassword = hashedPassword
	r.users[id] = u
	return nil
}

func (r *fakeUserRepo) UpdatePhoneNumber(ctx context.Context, id int64, phoneNumber string) error {
	u, ok := r.users[id]
	if !ok {
		return common.ErrNotFound
	}
	u.PhoneNumber = phoneNumber
	r.users[id] = u
	return nil
}

type fakeTodoRepo struct {
	todos  map[int64]model.Todo
	nextID int64
}

func newFakeTodoRepo() *fakeTodoRepo {
	return &fakeTodoRepo{todos: make(map[int64]model.Todo)}
}

func (r *fakeTodoRepo) Create(ctx context.Context, todo *model.Todo) error {
	r.nextID++
	todo.ID = r.nextID
	r.todos[todo.ID] = *todo
	return nil
}

func (r *fakeTodoRepo) FindByID(ctx context.Context, id int64) (*model.Todo, error) {
	if td, ok := r.todos[id]; ok {
		copied := td
		return &copied, nil
	}
	return nil, common.ErrNotFound
}

func (r *fakeTodoRepo) FindByOwner(ctx context.Context, ownerID int64) ([]model.Todo, error) {
	var todos []model.Todo
	for _, td := range r.todos {
		if td.OwnerID == ownerID {
			todos = append(todos, td)
		}
	}
	return todos, nil
}

func (r *fakeTodoRepo) FindAll(ctx context.Context) ([]model.Todo, error) {
	var todos []model.Todo
	for _, td := range r.todos {
		todos = append(todos, td)
	}
	return todos, nil
}

func (r *fakeTodoRepo) Update(ctx context.Context, todo *model.Todo) error {
	if _, ok := r.todos[todo.ID]; !ok {
		return common.ErrNotFound
	}
	r.todos[todo.ID] = *todo
	return nil
}

func (r *fakeTodoRepo) DeleteByIDAndOwner(ctx context.Context, id, ownerID int64) error {
	if td, ok := r.todos[id]; ok && td.OwnerID == ownerID {
		delete(r.todos, id)
		return nil
	}
	return common.ErrNotFound
}

func (r *fakeTodoRepo) DeleteByID(ctx context.Context, id int64) error {
	if _, ok := r.todos[id]; ok {
		delete(r.todos, id)
		return nil
	}
	return common.ErrNotFound
}
