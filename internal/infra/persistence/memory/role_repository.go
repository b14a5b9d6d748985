package memory

import (
	"context"
	"sort"

	"notaspro/internal/domain/entity"
	"notaspro/internal/domain/repository"
)

type roleRepo struct {
	store   *Store
	locking bool
}

func (r *roleRepo) lock() func() {
	if !r.locking {
		return func() {}
	}
	r.store.mu.Lock()

	return r.store.mu.Unlock
}

func (r *roleRepo) FindByName(_ context.Context, name entity.RoleName) (*entity.Role, error) {
	defer r.lock()()

	for _, role := range r.store.roles {
		if role.Name == name {
			return cloneRole(role), nil
		}
	}

	return nil, repository.ErrRoleNotFound
}

func (r *roleRepo) FindByID(_ context.Context, id uint) (*entity.Role, error) {
	defer r.lock()()

	role, ok := r.store.roles[id]
	if !ok {
		return nil, repository.ErrRoleNotFound
	}

	return cloneRole(role), nil
}

func (r *roleRepo) List(_ context.Context) ([]*entity.Role, error) {
	defer r.lock()()

	ids := make([]uint, 0, len(r.store.roles))
	for id := range r.store.roles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	roles := make([]*entity.Role, 0, len(ids))
	for _, id := range ids {
		roles = append(roles, cloneRole(r.store.roles[id]))
	}

	return roles, nil
}

func (r *roleRepo) EnsureByName(_ context.Context, name entity.RoleName) (*entity.Role, error) {
	defer r.lock()()

	for _, role := range r.store.roles {
		if role.Name == name {
			return cloneRole(role), nil
		}
	}

	r.store.nextRoleID++
	role := &entity.Role{ID: r.store.nextRoleID, Name: name}
	r.store.roles[role.ID] = role

	return cloneRole(role), nil
}
