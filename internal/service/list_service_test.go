package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/taskhive/taskhive-backend/internal/domain"
	"github.com/taskhive/taskhive-backend/internal/testutil"
)

func TestCreateList_Success(t *testing.T) {
	listRepo := testutil.NewMockListRepository()
	listService := NewListService(listRepo)

	userID := uuid.New()
	workspaceID := uuid.New()

	list, err := listService.CreateList(userID, CreateListInput{Name: "Home", WorkspaceID: &workspaceID})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if list.Name != "Home" {
		t.Errorf("Expected name 'Home', got %s", list.Name)
	}
	if list.UserID != userID {
		t.Errorf("Expected owner %s, got %s", userID, list.UserID)
	}
	if list.WorkspaceID == nil || *list.WorkspaceID != workspaceID {
		t.Error("Expected workspaceId to be set")
	}
}

func TestCreateList_NameRequired(t *testing.T) {
	listService := NewListService(testutil.NewMockListRepository())

	if _, err := listService.CreateList(uuid.New(), CreateListInput{Name: "  "}); !errors.Is(err, domain.ErrNameRequired) {
		t.Errorf("Expected ErrNameRequired, got %v", err)
	}
}

func TestGetListByID_NonOwnerHidesExistence(t *testing.T) {
	listRepo := testutil.NewMockListRepository()
	listService := NewListService(listRepo)

	alice := uuid.New()
	bob := uuid.New()

	list, err := listService.CreateList(alice, CreateListInput{Name: "Home"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := listService.GetListByID(bob, list.ID); !errors.Is(err, domain.ErrListNotFound) {
		t.Errorf("Expected ErrListNotFound for non-owner, got %v", err)
	}
}

func TestUpdateList_PartialMerge(t *testing.T) {
	listRepo := testutil.NewMockListRepository()
	listService := NewListService(listRepo)

	userID := uuid.New()
	workspaceID := uuid.New()

	list, err := listService.CreateList(userID, CreateListInput{Name: "Home", WorkspaceID: &workspaceID})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	name := "Chores"
	updated, err := listService.UpdateList(userID, list.ID, UpdateListInput{Name: &name})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if updated.Name != "Chores" {
		t.Errorf("Expected name 'Chores', got %s", updated.Name)
	}
	if updated.WorkspaceID == nil || *updated.WorkspaceID != workspaceID {
		t.Error("Expected workspaceId unchanged")
	}
}

func TestUpdateList_NonOwnerForbidden(t *testing.T) {
	listRepo := testutil.NewMockListRepository()
	listService := NewListService(listRepo)

	alice := uuid.New()
	bob := uuid.New()

	list, err := listService.CreateList(alice, CreateListInput{Name: "Home"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	name := "Taken"
	if _, err := listService.UpdateList(bob, list.ID, UpdateListInput{Name: &name}); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("Expected ErrForbidden, got %v", err)
	}

	stored, _ := listRepo.GetByID(list.ID)
	if stored.Name != "Home" {
		t.Errorf("Expected resource unchanged, got %s", stored.Name)
	}
}

func TestDeleteList_NoCascade(t *testing.T) {
	listRepo := testutil.NewMockListRepository()
	taskRepo := testutil.NewMockTaskRepository()
	listService := NewListService(listRepo)
	taskService := NewTaskService(taskRepo)

	userID := uuid.New()

	list, err := listService.CreateList(userID, CreateListInput{Name: "Home"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	task, err := taskService.CreateTask(userID, CreateTaskInput{Title: "Buy milk", ListID: list.ID})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := listService.DeleteList(userID, list.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Deleting a list must not delete its tasks
	if _, err := taskRepo.GetByID(task.ID); err != nil {
		t.Error("Expected task to survive list deletion")
	}
}
