package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpurse/pos-terminal/internal/domain/entity"
	"github.com/smartpurse/pos-terminal/internal/domain/enum"
	"github.com/smartpurse/pos-terminal/pkg/apperror"
)

type fakeUserRepo struct {
	users   []entity.User
	created *entity.User
	updated *entity.User
	deleted []int64
	nextID  int64
}

func (r *fakeUserRepo) List(_ context.Context) ([]entity.User, error) {
	return r.users, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) (*entity.User, error) {
	r.nextID++
	stored := *user
	stored.ID = r.nextID
	r.created = &stored
	return &stored, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) (*entity.User, error) {
	stored := *user
	r.updated = &stored
	return &stored, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func TestUserService_List(t *testing.T) {
	repo := &fakeUserRepo{users: []entity.User{
		{ID: 1, Name: "Wanjiku", StoreID: 3},
		{ID: 2, Name: "Otieno", StoreID: 3},
		{ID: 3, Name: "Amina", StoreID: 8},
	}}
	svc := NewUserService(repo)

	users, err := svc.List(context.Background(), testSession())

	require.NoError(t, err)
	require.Len(t, users, 2, "users from other stores must be dropped")
	assert.Equal(t, "Wanjiku", users[0].Name)
	assert.Equal(t, "Otieno", users[1].Name)
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("valid user joins the session's store", func(t *testing.T) {
		repo := &fakeUserRepo{}
		svc := NewUserService(repo)

		user, err := svc.Create(ctx, testSession(), &SaveUserInput{
			Name:  "Amina",
			Email: "amina@example.com",
			Role:  "staff",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(3), user.StoreID)
		assert.Equal(t, enum.RoleStaff, user.Role)
	})

	t.Run("invalid email is rejected", func(t *testing.T) {
		svc := NewUserService(&fakeUserRepo{})

		_, err := svc.Create(ctx, testSession(), &SaveUserInput{
			Name:  "Amina",
			Email: "not-an-email",
			Role:  "staff",
		})

		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		svc := NewUserService(&fakeUserRepo{})

		_, err := svc.Create(ctx, testSession(), &SaveUserInput{
			Name:  "Amina",
			Email: "amina@example.com",
			Role:  "owner",
		})

		assert.True(t, apperror.IsValidation(err))
	})
}

func TestUserService_Update(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)

	user, err := svc.Update(context.Background(), testSession(), 6, &SaveUserInput{
		Name:  "Otieno",
		Email: "otieno@example.com",
		Role:  "admin",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(6), user.ID)
	assert.Equal(t, enum.RoleAdmin, repo.updated.Role)
}

func TestUserService_Delete(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)

	require.NoError(t, svc.Delete(context.Background(), 4))
	assert.Equal(t, []int64{4}, repo.deleted)
}
