// Package memory provides an in-memory implementation of the persistence
// interfaces. It backs the unit and handler tests so they run without a
// database.
package memory

import (
	"context"
	"sync"

	"notaspro/internal/domain/entity"
	"notaspro/internal/domain/repository"
)

// Store holds every table in maps guarded by one mutex. Repositories
// returned by the accessor methods lock the store per call; repositories
// handed out inside Execute run under the transaction's lock instead.
type Store struct {
	mu sync.Mutex

	roles     map[uint]*entity.Role
	users     map[uint]*entity.User
	students  map[uint]*entity.Student
	teachers  map[uint]*entity.Teacher
	guardians map[uint]*entity.Guardian
	subjects  map[uint]*entity.Subject
	grades    map[uint]*entity.Grade

	nextRoleID     uint
	nextUserID     uint
	nextStudentID  uint
	nextTeacherID  uint
	nextGuardianID uint
	nextSubjectID  uint
	nextGradeID    uint
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		roles:     make(map[uint]*entity.Role),
		users:     make(map[uint]*entity.User),
		students:  make(map[uint]*entity.Student),
		teachers:  make(map[uint]*entity.Teacher),
		guardians: make(map[uint]*entity.Guardian),
		subjects:  make(map[uint]*entity.Subject),
		grades:    make(map[uint]*entity.Grade),
	}
}

// Users returns a UserRepository view over the store.
func (s *Store) Users() repository.UserRepository {
	return &userRepo{store: s, locking: true}
}

// Roles returns a RoleRepository view over the store.
func (s *Store) Roles() repository.RoleRepository {
	return &roleRepo{store: s, locking: true}
}

// Students returns a StudentRepository view over the store.
func (s *Store) Students() repository.StudentRepository {
	return &studentRepo{store: s}
}

// Teachers returns a TeacherRepository view over the store.
func (s *Store) Teachers() repository.TeacherRepository {
	return &teacherRepo{store: s}
}

// Guardians returns a GuardianRepository view over the store.
func (s *Store) Guardians() repository.GuardianRepository {
	return &guardianRepo{store: s}
}

// Subjects returns a SubjectRepository view over the store.
func (s *Store) Subjects() repository.SubjectRepository {
	return &subjectRepo{store: s}
}

// Grades returns a GradeRepository view over the store.
func (s *Store) Grades() repository.GradeRepository {
	return &gradeRepo{store: s}
}

// TxManager returns a TransactionManager whose transactions serialize on the
// store mutex. Holding the lock for the whole callback gives the same
// isolation the database transaction provides for check-then-insert flows.
func (s *Store) TxManager() repository.TransactionManager {
	return &txManager{store: s}
}

type txManager struct {
	store *Store
}

func (m *txManager) Execute(_ context.Context, fn func(factory repository.RepositoryFactory) error) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	usersBackup := cloneUserMap(m.store.users)
	rolesBackup := cloneRoleMap(m.store.roles)
	nextUserID := m.store.nextUserID
	nextRoleID := m.store.nextRoleID

	restore := func() {
		m.store.users = usersBackup
		m.store.roles = rolesBackup
		m.store.nextUserID = nextUserID
		m.store.nextRoleID = nextRoleID
	}

	defer func() {
		if r := recover(); r != nil {
			restore()
			panic(r)
		}
	}()

	factory := &txFactory{store: m.store}
	if err := fn(factory); err != nil {
		restore()

		return err
	}

	return nil
}

// ExecuteExclusive is identical to Execute here: the store mutex already
// serializes every transaction, so the named lock adds nothing in memory.
func (m *txManager) ExecuteExclusive(ctx context.Context, _ string, fn func(factory repository.RepositoryFactory) error) error {
	return m.Execute(ctx, fn)
}

type txFactory struct {
	store *Store
}

func (f *txFactory) UserRepo() repository.UserRepository {
	return &userRepo{store: f.store, locking: false}
}

func (f *txFactory) RoleRepo() repository.RoleRepository {
	return &roleRepo{store: f.store, locking: false}
}

func cloneRole(role *entity.Role) *entity.Role {
	if role == nil {
		return nil
	}
	clone := *role

	return &clone
}

func cloneUser(user *entity.User) *entity.User {
	if user == nil {
		return nil
	}
	clone := *user
	clone.Role = cloneRole(user.Role)

	return &clone
}

func cloneUserMap(users map[uint]*entity.User) map[uint]*entity.User {
	out := make(map[uint]*entity.User, len(users))
	for id, user := range users {
		out[id] = cloneUser(user)
	}

	return out
}

func cloneRoleMap(roles map[uint]*entity.Role) map[uint]*entity.Role {
	out := make(map[uint]*entity.Role, len(roles))
	for id, role := range roles {
		out[id] = cloneRole(role)
	}

	return out
}
