package service

import (
	"context"
	"testing"

	"taskdeck/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodoCreate_Validation(t *testing.T) {
	s := NewTodoService(newFakeTodoRepo())
	ctx := context.Background()

	cases := []struct {
		name string
		req  TodoRequest
	}{
		{"short title", TodoRequest{Title: "ab", Description: "valid description", Priority: 3}},
		{"short description", TodoRequest{Title: "Buy milk", Description: "ab", Priority: 3}},
		{"long description", TodoRequest{Title: "Buy milk", Description: string(make([]byte, 101)), Priority: 3}},
		{"priority too low", TodoRequest{Title: "Buy milk", Description: "two liters", Priority: 0}},
		{"priority too high", TodoRequest{Title: "Buy milk", Description: "two liters", Priority: 6}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Create(ctx, 1, tc.req)
			assert.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestTodoCreate_DefaultsIncomplete(t *testing.T) {
	s := NewTodoService(newFakeTodoRepo())

	todo, err := s.Create(context.Background(), 7, TodoRequest{Title: "Buy milk", Description: "two liters", Priority: 3})
	require.NoError(t, err)
	assert.False(t, todo.Complete)
	assert.Equal(t, int64(7), todo.OwnerID)
	assert.NotZero(t, todo.ID)
}

func TestTodoGetForOwner_HidesForeignTodos(t *testing.T) {
	repo := newFakeTodoRepo()
	s := NewTodoService(repo)
	ctx := context.Background()

	todo, err := s.Create(ctx, 7, TodoRequest{Title: "Buy milk", Description: "two liters", Priority: 3})
	require.NoError(t, err)

	_, err = s.GetForOwner(ctx, 8, todo.ID)
	assert.ErrorIs(t, err, common.ErrNotFound, "another user's todo must look absent")

	got, err := s.GetForOwner(ctx, 7, todo.ID)
	require.NoError(t, err)
	assert.Equal(t, todo.ID, got.ID)
}

func TestTodoToggleComplete_Flips(t *testing.T) {
	s := NewTodoService(newFakeTodoRepo())
	ctx := context.Background()

	todo, err := s.Create(ctx, 7, TodoRequest{Title: "Buy milk", Description: "two liters", Priority: 3})
	require.NoError(t, err)

	require.NoError(t, s.ToggleComplete(ctx, 7, todo.ID))
	got, err := s.GetForOwner(ctx, 7, todo.ID)
	require.NoError(t, err)
	assert.True(t, got.Complete)

	require.NoError(t, s.ToggleComplete(ctx, 7, todo.ID))
	got, err = s.GetForOwner(ctx, 7, todo.ID)
	require.NoError(t, err)
	assert.False(t, got.Complete)
}

func TestTodoUpdate_OwnerScoped(t *testing.T) {
	s := NewTodoService(newFakeTodoRepo())
	ctx := context.Background()

	todo, err := s.Create(ctx, 7, TodoRequest{Title: "Buy milk", Description: "two liters", Priority: 3})
	require.NoError(t, err)

	err = s.Update(ctx, 8, todo.ID, TodoRequest{Title: "Hijacked", Description: "oops oops", Priority: 1})
	assert.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, s.Update(ctx, 7, todo.ID, TodoRequest{Title: "Buy oat milk", Description: "one liter", Priority: 2}))
	got, err := s.GetForOwner(ctx, 7, todo.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", got.Title)
	assert.Equal(t, 2, got.Priority)
}

func TestTodoDelete_OwnerScoped(t *testing.T) {
	s := NewTodoService(newFakeTodoRepo())
	ctx := context.Background()

	todo, err := s.Create(ctx, 7, TodoRequest{Title: "Buy milk", Description: "two liters", Priority: 3})
	require.NoError(t, err)

	assert.ErrorIs(t, s.Delete(ctx, 8, todo.ID), common.ErrNotFound)
	require.NoError(t, s.Delete(ctx, 7, todo.ID))
	assert.ErrorIs(t, s.Delete(ctx, 7, todo.ID), common.ErrNotFound)
}

func TestTodoAdminOperations(t *testing.T) {
	s := NewTodoService(newFakeTodoRepo())
	ctx := context.Background()

	_, err := s.Create(ctx, 7, TodoRequest{Title: "Buy milk", Description: "two liters", Priority: 3})
	require.NoError(t, err)
	other, err := s.Create(ctx, 8, TodoRequest{Title: "Call bank", Description: "about card", Priority: 2})
	require.NoError(t, err)

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, s.DeleteAny(ctx, other.ID))
	assert.ErrorIs(t, s.DeleteAny(ctx, other.ID), common.ErrNotFound)
}
