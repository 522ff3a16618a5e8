package studylog

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// envelope mirrors pkg.Response with a raw data payload for test decoding.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// setupRouter wires a real service over the in-memory store and registers the
// module routes, exactly as the app composition root does.
func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	repo := NewMemoryRepository()
	handler := NewHandler(NewService(repo))
	NewModule(handler).RegisterRoutes(r.Group("/api/v1"))

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp envelope
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
	}
	return w, resp
}

const createBody = `{"title":"Spring AOP","content":"proxies","category":"SPRING","understanding":"GOOD","studyTime":60,"studyDate":"2026-03-15"}`

func TestHandlerCreate(t *testing.T) {
	r := setupRouter()

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/logs", createBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if !resp.Success || resp.Error != nil {
		t.Fatalf("expected success envelope, got %s", w.Body.String())
	}

	var log StudyLogResponse
	if err := json.Unmarshal(resp.Data, &log); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if log.ID == 0 || log.Title != "Spring AOP" {
		t.Errorf("unexpected payload: %+v", log)
	}
	if log.Category != "SPRING" || log.CategoryIcon == "" {
		t.Errorf("expected category with icon, got %+v", log)
	}
	if log.Understanding != "GOOD" || log.UnderstandingEmoji == "" {
		t.Errorf("expected understanding with emoji, got %+v", log)
	}
}

func TestHandlerCreate_MissingFields(t *testing.T) {
	r := setupRouter()

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/logs", `{"title":"only a title"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if resp.Success || resp.Error == nil {
		t.Fatalf("expected error envelope, got %s", w.Body.String())
	}
	if resp.Error.Code != "INVALID_INPUT" {
		t.Errorf("expected INVALID_INPUT, got %q", resp.Error.Code)
	}
}

func TestHandlerCreate_InvalidEnum(t *testing.T) {
	r := setupRouter()

	body := strings.Replace(createBody, "SPRING", "COOKING", 1)
	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/logs", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if resp.Error == nil || resp.Error.Code != "INVALID_INPUT" {
		t.Fatalf("expected INVALID_INPUT, got %s", w.Body.String())
	}
	if !strings.Contains(resp.Error.Message, "category") {
		t.Errorf("message should name the field, got %q", resp.Error.Message)
	}
}

func TestHandlerGet(t *testing.T) {
	r := setupRouter()
	doJSON(t, r, http.MethodPost, "/api/v1/logs", createBody)

	w, resp := doJSON(t, r, http.MethodGet, "/api/v1/logs/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var log StudyLogResponse
	if err := json.Unmarshal(resp.Data, &log); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if log.ID != 1 {
		t.Errorf("got id %d, want 1", log.ID)
	}
}

func TestHandlerGet_NotFound(t *testing.T) {
	r := setupRouter()

	w, resp := doJSON(t, r, http.MethodGet, "/api/v1/logs/999", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if resp.Error == nil || resp.Error.Code != "NOT_FOUND" {
		t.Errorf("expected NOT_FOUND, got %s", w.Body.String())
	}
}

func TestHandlerGet_BadID(t *testing.T) {
	r := setupRouter()

	for _, id := range []string{"abc", "0", "-3"} {
		w, resp := doJSON(t, r, http.MethodGet, "/api/v1/logs/"+id, "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("id %q: expected 400, got %d", id, w.Code)
			continue
		}
		if resp.Error == nil || resp.Error.Code != "INVALID_INPUT" {
			t.Errorf("id %q: expected INVALID_INPUT, got %s", id, w.Body.String())
		}
	}
}

func TestHandlerListPage(t *testing.T) {
	r := setupRouter()
	for i := 0; i < 25; i++ {
		doJSON(t, r, http.MethodPost, "/api/v1/logs", createBody)
	}

	w, resp := doJSON(t, r, http.MethodGet, "/api/v1/logs/page?page=2&size=10", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var page struct {
		Content       []StudyLogResponse `json:"content"`
		PageNumber    int                `json:"pageNumber"`
		TotalElements int64              `json:"totalElements"`
		TotalPages    int                `json:"totalPages"`
		Last          bool               `json:"last"`
		HasNext       bool               `json:"hasNext"`
	}
	if err := json.Unmarshal(resp.Data, &page); err != nil {
		t.Fatalf("unmarshal page: %v", err)
	}
	if page.TotalElements != 25 || page.TotalPages != 3 {
		t.Errorf("got total=%d pages=%d, want 25 and 3", page.TotalElements, page.TotalPages)
	}
	if len(page.Content) != 5 || !page.Last || page.HasNext {
		t.Errorf("last page wrong: len=%d last=%v hasNext=%v", len(page.Content), page.Last, page.HasNext)
	}
}

func TestHandlerListPage_OutOfRange(t *testing.T) {
	r := setupRouter()
	for i := 0; i < 5; i++ {
		doJSON(t, r, http.MethodPost, "/api/v1/logs", createBody)
	}

	w, resp := doJSON(t, r, http.MethodGet, "/api/v1/logs/page?page=9&size=10", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if resp.Error == nil || resp.Error.Code != "INVALID_PAGE_REQUEST" {
		t.Errorf("expected INVALID_PAGE_REQUEST, got %s", w.Body.String())
	}
}

func TestHandlerSearch(t *testing.T) {
	r := setupRouter()
	doJSON(t, r, http.MethodPost, "/api/v1/logs", createBody)
	doJSON(t, r, http.MethodPost, "/api/v1/logs",
		`{"title":"TCP basics","content":"handshake","category":"NETWORK","understanding":"NORMAL","studyTime":30}`)

	w, resp := doJSON(t, r, http.MethodGet, "/api/v1/logs/search?title=aop&category=spring", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var page struct {
		TotalElements int64 `json:"totalElements"`
	}
	if err := json.Unmarshal(resp.Data, &page); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if page.TotalElements != 1 {
		t.Errorf("got %d matches, want 1", page.TotalElements)
	}

	w, resp = doJSON(t, r, http.MethodGet, "/api/v1/logs/search?startDate=15-03-2026", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad date: expected 400, got %d", w.Code)
	}
	if resp.Error == nil || !strings.Contains(resp.Error.Message, "startDate") {
		t.Errorf("message should name startDate, got %s", w.Body.String())
	}
}

func TestHandlerGetByDate(t *testing.T) {
	r := setupRouter()
	doJSON(t, r, http.MethodPost, "/api/v1/logs", createBody)

	w, resp := doJSON(t, r, http.MethodGet, "/api/v1/logs/date/2026-03-15", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var logs []StudyLogResponse
	if err := json.Unmarshal(resp.Data, &logs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(logs) != 1 {
		t.Errorf("got %d logs, want 1", len(logs))
	}

	w, _ = doJSON(t, r, http.MethodGet, "/api/v1/logs/date/not-a-date", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed date, got %d", w.Code)
	}
}

func TestHandlerGetByCategory(t *testing.T) {
	r := setupRouter()
	doJSON(t, r, http.MethodPost, "/api/v1/logs", createBody)

	w, resp := doJSON(t, r, http.MethodGet, "/api/v1/logs/category/spring", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var logs []StudyLogResponse
	if err := json.Unmarshal(resp.Data, &logs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(logs) != 1 {
		t.Errorf("got %d logs, want 1", len(logs))
	}

	w, _ = doJSON(t, r, http.MethodGet, "/api/v1/logs/category/cooking", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown category, got %d", w.Code)
	}
}

func TestHandlerUpdate(t *testing.T) {
	r := setupRouter()
	doJSON(t, r, http.MethodPost, "/api/v1/logs", createBody)

	w, resp := doJSON(t, r, http.MethodPut, "/api/v1/logs/1", `{"studyTime":90}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var log StudyLogResponse
	if err := json.Unmarshal(resp.Data, &log); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if log.StudyTime != 90 {
		t.Errorf("studyTime = %d, want 90", log.StudyTime)
	}
	if log.Title != "Spring AOP" {
		t.Errorf("absent fields must be kept, got title %q", log.Title)
	}

	// Empty body: nothing to update.
	w, resp = doJSON(t, r, http.MethodPut, "/api/v1/logs/1", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty update: expected 400, got %d", w.Code)
	}
	if resp.Error == nil || resp.Error.Code != "INVALID_INPUT" {
		t.Errorf("expected INVALID_INPUT, got %s", w.Body.String())
	}
}

func TestHandlerDeleteLifecycle(t *testing.T) {
	r := setupRouter()
	doJSON(t, r, http.MethodPost, "/api/v1/logs", createBody)

	// Soft delete removes it from the active listing.
	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/logs/1/soft-delete", "")
	if w.Code != http.StatusOK {
		t.Fatalf("soft delete: expected 200, got %d", w.Code)
	}

	_, resp := doJSON(t, r, http.MethodGet, "/api/v1/logs/active", "")
	var active []StudyLogResponse
	if err := json.Unmarshal(resp.Data, &active); err != nil {
		t.Fatalf("unmarshal active: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("active has %d entries after soft delete, want 0", len(active))
	}

	// Restore brings it back.
	w, _ = doJSON(t, r, http.MethodPost, "/api/v1/logs/1/restore", "")
	if w.Code != http.StatusOK {
		t.Fatalf("restore: expected 200, got %d", w.Code)
	}

	// Hard delete is final.
	w, _ = doJSON(t, r, http.MethodDelete, "/api/v1/logs/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", w.Code)
	}
	w, _ = doJSON(t, r, http.MethodGet, "/api/v1/logs/1", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after hard delete, got %d", w.Code)
	}
}

func TestHandlerDeleteAllAndCount(t *testing.T) {
	r := setupRouter()
	for i := 0; i < 3; i++ {
		doJSON(t, r, http.MethodPost, "/api/v1/logs", createBody)
	}

	_, resp := doJSON(t, r, http.MethodGet, "/api/v1/logs/count", "")
	var count CountResponse
	if err := json.Unmarshal(resp.Data, &count); err != nil {
		t.Fatalf("unmarshal count: %v", err)
	}
	if count.Count != 3 {
		t.Errorf("count = %d, want 3", count.Count)
	}

	w, resp := doJSON(t, r, http.MethodDelete, "/api/v1/logs", "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete all: expected 200, got %d", w.Code)
	}
	var deleted DeleteAllResponse
	if err := json.Unmarshal(resp.Data, &deleted); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if deleted.DeletedCount != 3 {
		t.Errorf("deletedCount = %d, want 3", deleted.DeletedCount)
	}

	_, resp = doJSON(t, r, http.MethodGet, "/api/v1/logs/count", "")
	if err := json.Unmarshal(resp.Data, &count); err != nil {
		t.Fatalf("unmarshal count: %v", err)
	}
	if count.Count != 0 {
		t.Errorf("count after delete all = %d, want 0", count.Count)
	}
}

func TestHandlerList(t *testing.T) {
	r := setupRouter()
	for i := 0; i < 2; i++ {
		doJSON(t, r, http.MethodPost, "/api/v1/logs",
			fmt.Sprintf(`{"title":"log %d","content":"c","category":"JAVA","understanding":"GOOD","studyTime":10}`, i))
	}

	w, resp := doJSON(t, r, http.MethodGet, "/api/v1/logs", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var logs []StudyLogResponse
	if err := json.Unmarshal(resp.Data, &logs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(logs) != 2 {
		t.Errorf("got %d logs, want 2", len(logs))
	}
}
