package memory

import (
	"context"
	"sort"
	"time"

	"notaspro/internal/domain/entity"
	"notaspro/internal/domain/repository"
)

type userRepo struct {
	store   *Store
	locking bool
}

func (r *userRepo) lock() func() {
	if !r.locking {
		return func() {}
	}
	r.store.mu.Lock()

	return r.store.mu.Unlock
}

func (r *userRepo) resolveRole(user *entity.User) *entity.User {
	out := cloneUser(user)
	if role, ok := r.store.roles[user.RoleID]; ok {
		out.Role = cloneRole(role)
	}

	return out
}

func (r *userRepo) FindByID(_ context.Context, id uint) (*entity.User, error) {
	defer r.lock()()

	user, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return r.resolveRole(user), nil
}

func (r *userRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	defer r.lock()()

	for _, user := range r.store.users {
		if user.Username == username {
			return r.resolveRole(user), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *userRepo) List(_ context.Context, offset, limit int) ([]*entity.User, error) {
	defer r.lock()()

	ids := make([]uint, 0, len(r.store.users))
	for id := range r.store.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	users := make([]*entity.User, 0)
	for i, id := range ids {
		if i < offset {
			continue
		}
		if limit > 0 && len(users) >= limit {
			break
		}
		users = append(users, r.resolveRole(r.store.users[id]))
	}

	return users, nil
}

func (r *userRepo) Create(_ context.Context, user *entity.User) error {
	defer r.lock()()

	for _, existing := range r.store.users {
		if existing.Username == user.Username {
			return repository.ErrDuplicateUsername
		}
	}
	if _, ok := r.store.roles[user.RoleID]; !ok {
		return repository.ErrRoleNotFound
	}

	r.store.nextUserID++
	user.ID = r.store.nextUserID
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.store.users[user.ID] = cloneUser(user)

	return nil
}

func (r *userRepo) Update(_ context.Context, user *entity.User) error {
	defer r.lock()()

	if _, ok := r.store.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	for _, existing := range r.store.users {
		if existing.ID != user.ID && existing.Username == user.Username {
			return repository.ErrDuplicateUsername
		}
	}
	if _, ok := r.store.roles[user.RoleID]; !ok {
		return repository.ErrRoleNotFound
	}

	user.UpdatedAt = time.Now()
	r.store.users[user.ID] = cloneUser(user)

	return nil
}

func (r *userRepo) Delete(_ context.Context, id uint) error {
	defer r.lock()()

	if _, ok := r.store.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(r.store.users, id)

	return nil
}

func (r *userRepo) CountByRole(_ context.Context, role entity.RoleName) (int64, error) {
	defer r.lock()()

	var count int64
	for _, user := range r.store.users {
		if stored, ok := r.store.roles[user.RoleID]; ok && stored.Name == role {
			count++
		}
	}

	return count, nil
}
