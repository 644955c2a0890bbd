package user

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func makeApp(repo *InMemoryRepository) *fiber.App {
	app := fiber.New()
	NewHandler(NewService(repo)).RegisterRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, target, err)
	}
	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, string(b)
}

func TestCreateUser_ThenFetchByID(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	app := makeApp(repo)

	status, body := doJSON(t, app, "POST", "/api/users", `{"name":"Ann","email":"a@x.com","age":30}`)
	if status != fiber.StatusCreated {
		t.Fatalf("expected 201 on create, got %d (%s)", status, body)
	}

	var created User
	if err := json.Unmarshal([]byte(body), &created); err != nil {
		t.Fatalf("create response is not a user: %v", err)
	}
	if created.ID == 0 || created.Name != "Ann" || created.Email != "a@x.com" || created.Age != 30 {
		t.Fatalf("unexpected created user %+v", created)
	}

	status, body = doJSON(t, app, "GET", "/api/users/1", "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 fetching created user, got %d", status)
	}
	if !strings.Contains(body, "a@x.com") {
		t.Fatalf("fetched user missing email: %s", body)
	}
}

func TestCreateUser_StringAgeIsCoerced(t *testing.T) {
	app := makeApp(NewInMemoryRepository(nil))

	status, body := doJSON(t, app, "POST", "/api/users", `{"name":"Bob","email":"b@x.com","age":"30"}`)
	if status != fiber.StatusCreated {
		t.Fatalf("expected 201 for string age, got %d (%s)", status, body)
	}
	if !strings.Contains(body, `"age":30`) {
		t.Fatalf("age was not coerced to a number: %s", body)
	}
}

func TestCreateUser_InvalidAgeIsRejectedWithoutPersisting(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	app := makeApp(repo)

	for _, payload := range []string{
		`{"name":"Ann","email":"a@x.com","age":0}`,
		`{"name":"Ann","email":"a@x.com","age":-3}`,
		`{"name":"Ann","email":"a@x.com","age":"abc"}`,
		`{"name":"Ann","email":"a@x.com"}`,
	} {
		status, body := doJSON(t, app, "POST", "/api/users", payload)
		if status != fiber.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", payload, status)
		}
		if !strings.Contains(body, "Age must be a valid positive number") {
			t.Fatalf("unexpected error body for %s: %s", payload, body)
		}
	}

	users, _ := repo.List()
	if len(users) != 0 {
		t.Fatalf("invalid payloads must not persist, repo has %d users", len(users))
	}
}

func TestCreateUser_MalformedBody(t *testing.T) {
	app := makeApp(NewInMemoryRepository(nil))

	status, _ := doJSON(t, app, "POST", "/api/users", `{"name":"Ann",`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for malformed JSON, got %d", status)
	}
}

func TestCreateUser_MissingNameOrEmail(t *testing.T) {
	app := makeApp(NewInMemoryRepository(nil))

	for _, payload := range []string{
		`{"email":"a@x.com","age":30}`,
		`{"name":"Ann","age":30}`,
	} {
		status, body := doJSON(t, app, "POST", "/api/users", payload)
		if status != fiber.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", payload, status)
		}
		if !strings.Contains(body, "Name and email are required") {
			t.Fatalf("unexpected error body: %s", body)
		}
	}
}

func TestCreateUser_DuplicateEmailConflicts(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	app := makeApp(repo)

	status, _ := doJSON(t, app, "POST", "/api/users", `{"name":"Ann","email":"a@x.com","age":30}`)
	if status != fiber.StatusCreated {
		t.Fatalf("expected first create to succeed, got %d", status)
	}

	status, body := doJSON(t, app, "POST", "/api/users", `{"name":"Other","email":"a@x.com","age":40}`)
	if status != fiber.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", status)
	}
	if !strings.Contains(body, "Email already exists") {
		t.Fatalf("unexpected conflict body: %s", body)
	}

	users, _ := repo.List()
	if len(users) != 1 {
		t.Fatalf("duplicate create must not persist a row, repo has %d users", len(users))
	}
}

func TestListUsers_NewestFirst(t *testing.T) {
	app := makeApp(NewInMemoryRepository(nil))

	doJSON(t, app, "POST", "/api/users", `{"name":"A","email":"a@x.com","age":20}`)
	doJSON(t, app, "POST", "/api/users", `{"name":"B","email":"b@x.com","age":21}`)

	status, body := doJSON(t, app, "GET", "/api/users", "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 on list, got %d", status)
	}

	var users []User
	if err := json.Unmarshal([]byte(body), &users); err != nil {
		t.Fatalf("list response is not a user array: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Name != "B" || users[1].Name != "A" {
		t.Fatalf("expected B before A (id descending), got %+v", users)
	}
}

func TestGetUser_InvalidAndMissingID(t *testing.T) {
	app := makeApp(NewInMemoryRepository(nil))

	status, body := doJSON(t, app, "GET", "/api/users/abc", "")
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", status)
	}
	if !strings.Contains(body, "Invalid user ID") {
		t.Fatalf("unexpected body: %s", body)
	}

	status, body = doJSON(t, app, "GET", "/api/users/99", "")
	if status != fiber.StatusNotFound {
		t.Fatalf("expected 404 for missing user, got %d", status)
	}
	if !strings.Contains(body, "User not found") {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestUpdateUser_NotFoundAndConflict(t *testing.T) {
	seed := []User{
		{ID: 1, Name: "Ann", Email: "a@x.com", Age: 30},
		{ID: 2, Name: "Bob", Email: "b@x.com", Age: 31},
	}
	app := makeApp(NewInMemoryRepository(seed))

	status, body := doJSON(t, app, "PUT", "/api/users/99", `{"name":"Nobody","email":"n@x.com","age":50}`)
	if status != fiber.StatusNotFound {
		t.Fatalf("expected 404 updating missing user, got %d (%s)", status, body)
	}

	status, body = doJSON(t, app, "PUT", "/api/users/2", `{"name":"Bob","email":"a@x.com","age":31}`)
	if status != fiber.StatusConflict {
		t.Fatalf("expected 409 updating to taken email, got %d (%s)", status, body)
	}

	status, body = doJSON(t, app, "PUT", "/api/users/2", `{"name":"Robert","email":"b@x.com","age":32}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 on valid update, got %d (%s)", status, body)
	}
	if !strings.Contains(body, "Robert") {
		t.Fatalf("updated name missing from response: %s", body)
	}
}

func TestDeleteUser_SecondDeleteIsNotFound(t *testing.T) {
	seed := []User{{ID: 1, Name: "Ann", Email: "a@x.com", Age: 30}}
	app := makeApp(NewInMemoryRepository(seed))

	status, body := doJSON(t, app, "DELETE", "/api/users/1", "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 on first delete, got %d", status)
	}
	if !strings.Contains(body, "User deleted successfully") {
		t.Fatalf("unexpected delete body: %s", body)
	}

	status, _ = doJSON(t, app, "GET", "/api/users/1", "")
	if status != fiber.StatusNotFound {
		t.Fatalf("deleted user still fetchable, got %d", status)
	}

	status, _ = doJSON(t, app, "DELETE", "/api/users/1", "")
	if status != fiber.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", status)
	}
}
