package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/taskhive/taskhive-backend/internal/domain"
	"github.com/taskhive/taskhive-backend/internal/service"
	"github.com/taskhive/taskhive-backend/internal/testutil"
)

func newWorkspaceHandler() (*WorkspaceHandler, *testutil.MockWorkspaceRepository) {
	workspaceRepo := testutil.NewMockWorkspaceRepository()
	return NewWorkspaceHandler(service.NewWorkspaceService(workspaceRepo)), workspaceRepo
}

func TestGetWorkspace_Visibility(t *testing.T) {
	e := echo.New()
	handler, workspaceRepo := newWorkspaceHandler()

	owner := uuid.New()
	member := uuid.New()
	stranger := uuid.New()
	workspace := &domain.Workspace{ID: uuid.New(), Name: "Team", OwnerID: owner, Members: []uuid.UUID{member}}
	workspaceRepo.AddWorkspace(workspace)

	cases := []struct {
		name   string
		actor  uuid.UUID
		status int
	}{
		{"owner", owner, http.StatusOK},
		{"member", member, http.StatusOK},
		// An existing workspace the actor may not see is denied, not hidden
		{"stranger", stranger, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/workspaces/"+workspace.ID.String(), nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("id")
			c.SetParamValues(workspace.ID.String())
			setupAuthContext(c, tc.actor)

			if err := handler.GetWorkspace(c); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if rec.Code != tc.status {
				t.Errorf("Expected status %d, got %d", tc.status, rec.Code)
			}
		})
	}
}

func TestUpdateWorkspace_MemberForbidden(t *testing.T) {
	e := echo.New()
	handler, workspaceRepo := newWorkspaceHandler()

	member := uuid.New()
	workspace := &domain.Workspace{ID: uuid.New(), Name: "Team", OwnerID: uuid.New(), Members: []uuid.UUID{member}}
	workspaceRepo.AddWorkspace(workspace)

	req := httptest.NewRequest(http.MethodPut, "/api/workspaces/"+workspace.ID.String(), strings.NewReader(`{"name": "Renamed"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(workspace.ID.String())
	setupAuthContext(c, member)

	if err := handler.UpdateWorkspace(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Membership grants read access only
	if rec.Code != http.StatusForbidden {
		t.Errorf("Expected status 403, got %d", rec.Code)
	}
	if workspaceRepo.Workspaces[workspace.ID].Name != "Team" {
		t.Errorf("Expected stored name unchanged, got %s", workspaceRepo.Workspaces[workspace.ID].Name)
	}
}

func TestAddMember_Success(t *testing.T) {
	e := echo.New()
	handler, workspaceRepo := newWorkspaceHandler()

	owner := uuid.New()
	newMember := uuid.New()
	workspace := &domain.Workspace{ID: uuid.New(), Name: "Team", OwnerID: owner}
	workspaceRepo.AddWorkspace(workspace)

	reqBody := fmt.Sprintf(`{"userId": "%s"}`, newMember)
	req := httptest.NewRequest(http.MethodPost, "/api/workspaces/"+workspace.ID.String()+"/members", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(workspace.ID.String())
	setupAuthContext(c, owner)

	if err := handler.AddMember(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response WorkspaceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response.Members) != 1 || response.Members[0] != newMember.String() {
		t.Errorf("Expected members [%s], got %v", newMember, response.Members)
	}
}

func TestAddMember_Duplicate(t *testing.T) {
	e := echo.New()
	handler, workspaceRepo := newWorkspaceHandler()

	owner := uuid.New()
	member := uuid.New()
	workspace := &domain.Workspace{ID: uuid.New(), Name: "Team", OwnerID: owner, Members: []uuid.UUID{member}}
	workspaceRepo.AddWorkspace(workspace)

	reqBody := fmt.Sprintf(`{"userId": "%s"}`, member)
	req := httptest.NewRequest(http.MethodPost, "/api/workspaces/"+workspace.ID.String()+"/members", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(workspace.ID.String())
	setupAuthContext(c, owner)

	if err := handler.AddMember(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestAddMember_NonOwnerForbidden(t *testing.T) {
	e := echo.New()
	handler, workspaceRepo := newWorkspaceHandler()

	member := uuid.New()
	workspace := &domain.Workspace{ID: uuid.New(), Name: "Team", OwnerID: uuid.New(), Members: []uuid.UUID{member}}
	workspaceRepo.AddWorkspace(workspace)

	reqBody := fmt.Sprintf(`{"userId": "%s"}`, uuid.New())
	req := httptest.NewRequest(http.MethodPost, "/api/workspaces/"+workspace.ID.String()+"/members", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(workspace.ID.String())
	setupAuthContext(c, member)

	if err := handler.AddMember(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Errorf("Expected status 403, got %d", rec.Code)
	}
}

func TestRemoveMember_Idempotent(t *testing.T) {
	e := echo.New()
	handler, workspaceRepo := newWorkspaceHandler()

	owner := uuid.New()
	absent := uuid.New()
	workspace := &domain.Workspace{ID: uuid.New(), Name: "Team", OwnerID: owner}
	workspaceRepo.AddWorkspace(workspace)

	req := httptest.NewRequest(http.MethodDelete, "/api/workspaces/"+workspace.ID.String()+"/members/"+absent.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id", "memberId")
	c.SetParamValues(workspace.ID.String(), absent.String())
	setupAuthContext(c, owner)

	if err := handler.RemoveMember(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Removing an absent member succeeds with no effect
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}
}

func TestRemoveMember_Success(t *testing.T) {
	e := echo.New()
	handler, workspaceRepo := newWorkspaceHandler()

	owner := uuid.New()
	member := uuid.New()
	workspace := &domain.Workspace{ID: uuid.New(), Name: "Team", OwnerID: owner, Members: []uuid.UUID{member}}
	workspaceRepo.AddWorkspace(workspace)

	req := httptest.NewRequest(http.MethodDelete, "/api/workspaces/"+workspace.ID.String()+"/members/"+member.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id", "memberId")
	c.SetParamValues(workspace.ID.String(), member.String())
	setupAuthContext(c, owner)

	if err := handler.RemoveMember(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response WorkspaceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response.Members) != 0 {
		t.Errorf("Expected no members, got %v", response.Members)
	}
}
