package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/taskhive/taskhive-backend/internal/domain"
)

// MockUserRepository is a mock implementation of domain.UserRepository
type MockUserRepository struct {
	ByEmail map[string]*domain.User
	ByID    map[uuid.UUID]*domain.User
}

// NewMockUserRepository creates a new MockUserRepository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		ByEmail: make(map[string]*domain.User),
		ByID:    make(map[uuid.UUID]*domain.User),
	}
}

// GetByID retrieves a user by ID
func (m *MockUserRepository) GetByID(id uuid.UUID) (*domain.User, error) {
	if user, ok := m.ByID[id]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// GetByEmail retrieves a user by exact email match
func (m *MockUserRepository) GetByEmail(email string) (*domain.User, error) {
	if user, ok := m.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// Create creates a new user, enforcing email uniqueness like the DB index
func (m *MockUserRepository) Create(user *domain.User) (*domain.User, error) {
	if _, ok := m.ByEmail[user.Email]; ok {
		return nil, domain.ErrEmailTaken
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	m.ByEmail[user.Email] = user
	m.ByID[user.ID] = user
	return user, nil
}

// AddUser adds a user to the mock repository (helper for tests)
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.ByEmail[user.Email] = user
	m.ByID[user.ID] = user
}

// MockTaskRepository is a mock implementation of domain.TaskRepository
type MockTaskRepository struct {
	Tasks map[uuid.UUID]*domain.Task
}

// NewMockTaskRepository creates a new MockTaskRepository
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{Tasks: make(map[uuid.UUID]*domain.Task)}
}

// GetByID retrieves a task by ID
func (m *MockTaskRepository) GetByID(id uuid.UUID) (*domain.Task, error) {
	if task, ok := m.Tasks[id]; ok {
		copy := *task
		return &copy, nil
	}
	return nil, domain.ErrTaskNotFound
}

// GetAllByUser retrieves all tasks owned by userID
func (m *MockTaskRepository) GetAllByUser(userID uuid.UUID) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for _, t := range m.Tasks {
		if t.UserID == userID {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

// GetAllByUserAndList retrieves tasks owned by userID within a list
func (m *MockTaskRepository) GetAllByUserAndList(userID, listID uuid.UUID) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for _, t := range m.Tasks {
		if t.UserID == userID && t.ListID == listID {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

// Create creates a new task
func (m *MockTaskRepository) Create(task *domain.Task) (*domain.Task, error) {
	task.ID = uuid.New()
	task.CreatedAt = time.Now()
	m.Tasks[task.ID] = task
	return task, nil
}

// Update replaces the stored task
func (m *MockTaskRepository) Update(task *domain.Task) (*domain.Task, error) {
	if _, ok := m.Tasks[task.ID]; !ok {
		return nil, domain.ErrTaskNotFound
	}
	m.Tasks[task.ID] = task
	return task, nil
}

// Delete removes a task
func (m *MockTaskRepository) Delete(id uuid.UUID) error {
	if _, ok := m.Tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(m.Tasks, id)
	return nil
}

// AddTask adds a task to the mock repository (helper for tests)
func (m *MockTaskRepository) AddTask(task *domain.Task) {
	m.Tasks[task.ID] = task
}

// MockListRepository is a mock implementation of domain.ListRepository
type MockListRepository struct {
	Lists map[uuid.UUID]*domain.List
}

// NewMockListRepository creates a new MockListRepository
func NewMockListRepository() *MockListRepository {
	return &MockListRepository{Lists: make(map[uuid.UUID]*domain.List)}
}

// GetByID retrieves a list by ID
func (m *MockListRepository) GetByID(id uuid.UUID) (*domain.List, error) {
	if list, ok := m.Lists[id]; ok {
		copy := *list
		return &copy, nil
	}
	return nil, domain.ErrListNotFound
}

// GetAllByUser retrieves all lists owned by userID
func (m *MockListRepository) GetAllByUser(userID uuid.UUID) ([]*domain.List, error) {
	var lists []*domain.List
	for _, l := range m.Lists {
		if l.UserID == userID {
			lists = append(lists, l)
		}
	}
	return lists, nil
}

// Create creates a new list
func (m *MockListRepository) Create(list *domain.List) (*domain.List, error) {
	list.ID = uuid.New()
	list.CreatedAt = time.Now()
	m.Lists[list.ID] = list
	return list, nil
}

// Update replaces the stored list
func (m *MockListRepository) Update(list *domain.List) (*domain.List, error) {
	if _, ok := m.Lists[list.ID]; !ok {
		return nil, domain.ErrListNotFound
	}
	m.Lists[list.ID] = list
	return list, nil
}

// Delete removes a list
func (m *MockListRepository) Delete(id uuid.UUID) error {
	if _, ok := m.Lists[id]; !ok {
		return domain.ErrListNotFound
	}
	delete(m.Lists, id)
	return nil
}

// AddList adds a list to the mock repository (helper for tests)
func (m *MockListRepository) AddList(list *domain.List) {
	m.Lists[list.ID] = list
}

// MockWorkspaceRepository is a mock implementation of domain.WorkspaceRepository
type MockWorkspaceRepository struct {
	Workspaces map[uuid.UUID]*domain.Workspace
}

// NewMockWorkspaceRepository creates a new MockWorkspaceRepository
func NewMockWorkspaceRepository() *MockWorkspaceRepository {
	return &MockWorkspaceRepository{Workspaces: make(map[uuid.UUID]*domain.Workspace)}
}

// GetByID retrieves a workspace by ID
func (m *MockWorkspaceRepository) GetByID(id uuid.UUID) (*domain.Workspace, error) {
	if ws, ok := m.Workspaces[id]; ok {
		copy := *ws
		copy.Members = append([]uuid.UUID(nil), ws.Members...)
		return &copy, nil
	}
	return nil, domain.ErrWorkspaceNotFound
}

// GetAllVisible retrieves workspaces userID owns or is a member of
func (m *MockWorkspaceRepository) GetAllVisible(userID uuid.UUID) ([]*domain.Workspace, error) {
	var workspaces []*domain.Workspace
	for _, ws := range m.Workspaces {
		if ws.VisibleTo(userID) {
			workspaces = append(workspaces, ws)
		}
	}
	return workspaces, nil
}

// Create creates a new workspace
func (m *MockWorkspaceRepository) Create(workspace *domain.Workspace) (*domain.Workspace, error) {
	workspace.ID = uuid.New()
	workspace.CreatedAt = time.Now()
	m.Workspaces[workspace.ID] = workspace
	return workspace, nil
}

// Update replaces the stored workspace's name, keeping membership
func (m *MockWorkspaceRepository) Update(workspace *domain.Workspace) (*domain.Workspace, error) {
	stored, ok := m.Workspaces[workspace.ID]
	if !ok {
		return nil, domain.ErrWorkspaceNotFound
	}
	stored.Name = workspace.Name
	return stored, nil
}

// Delete removes a workspace
func (m *MockWorkspaceRepository) Delete(id uuid.UUID) error {
	if _, ok := m.Workspaces[id]; !ok {
		return domain.ErrWorkspaceNotFound
	}
	delete(m.Workspaces, id)
	return nil
}

// AddMember appends a member if absent
func (m *MockWorkspaceRepository) AddMember(workspaceID, memberID uuid.UUID) error {
	ws, ok := m.Workspaces[workspaceID]
	if !ok {
		return domain.ErrWorkspaceNotFound
	}
	if !ws.HasMember(memberID) {
		ws.Members = append(ws.Members, memberID)
	}
	return nil
}

// RemoveMember removes a member; absent members are a no-op
func (m *MockWorkspaceRepository) RemoveMember(workspaceID, memberID uuid.UUID) error {
	ws, ok := m.Workspaces[workspaceID]
	if !ok {
		return domain.ErrWorkspaceNotFound
	}
	members := ws.Members[:0]
	for _, id := range ws.Members {
		if id != memberID {
			members = append(members, id)
		}
	}
	ws.Members = members
	return nil
}

// AddWorkspace adds a workspace to the mock repository (helper for tests)
func (m *MockWorkspaceRepository) AddWorkspace(workspace *domain.Workspace) {
	m.Workspaces[workspace.ID] = workspace
}
