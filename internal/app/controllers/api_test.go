package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/studentrecords/backend/internal/app/models"
	"github.com/studentrecords/backend/internal/app/services"
	"github.com/studentrecords/backend/internal/pkg/apperrors"
)

// In-memory repositories mirroring the unique-index behavior of the real
// collections, so the full HTTP surface can be exercised without a server.

type memStudentRepo struct {
	students []models.Student
}

func (m *memStudentRepo) EnsureIndexes(ctx context.Context) error { return nil }

func (m *memStudentRepo) Create(ctx context.Context, student *models.Student) error {
	for _, s := range m.students {
		if s.RollNumber == student.RollNumber {
			return &apperrors.DuplicateError{Resource: "Student", Field: "rollNumber"}
		}
		if s.Email == student.Email {
			return &apperrors.DuplicateError{Resource: "Student", Field: "email"}
		}
	}
	student.ID = primitive.NewObjectID()
	m.students = append(m.students, *student)
	return nil
}

func (m *memStudentRepo) GetAll(ctx context.Context) ([]models.Student, error) {
	out := make([]models.Student, len(m.students))
	copy(out, m.students)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memStudentRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	for _, s := range m.students {
		if s.ID == id {
			student := s
			return &student, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *memStudentRepo) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	for _, s := range m.students {
		if s.Email == email {
			student := s
			return &student, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *memStudentRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i, s := range m.students {
		if s.ID == id {
			m.students = append(m.students[:i], m.students[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (m *memStudentRepo) DeleteAll(ctx context.Context) (int64, error) {
	n := int64(len(m.students))
	m.students = nil
	return n, nil
}

func (m *memStudentRepo) Exists(ctx context.Context, field, value string) (bool, error) {
	for _, s := range m.students {
		if (field == "rollNumber" && s.RollNumber == value) || (field == "email" && s.Email == value) {
			return true, nil
		}
	}
	return false, nil
}

type memAdminRepo struct {
	admins []models.Admin
}

func (m *memAdminRepo) EnsureIndexes(ctx context.Context) error { return nil }

func (m *memAdminRepo) Create(ctx context.Context, admin *models.Admin) error {
	for _, a := range m.admins {
		if a.Email == admin.Email {
			return &apperrors.DuplicateError{Resource: "Admin", Field: "email"}
		}
	}
	admin.ID = primitive.NewObjectID()
	m.admins = append(m.admins, *admin)
	return nil
}

func (m *memAdminRepo) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	for _, a := range m.admins {
		if a.Email == email {
			admin := a
			return &admin, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *memAdminRepo) Exists(ctx context.Context, field, value string) (bool, error) {
	for _, a := range m.admins {
		if field == "email" && a.Email == value {
			return true, nil
		}
	}
	return false, nil
}

type memResultRepo struct {
	results []models.Result
}

func (m *memResultRepo) EnsureIndexes(ctx context.Context) error { return nil }

func (m *memResultRepo) Create(ctx context.Context, result *models.Result) error {
	for _, r := range m.results {
		if r.StudentID == result.StudentID {
			return &apperrors.DuplicateError{Resource: "Result", Field: "studentId"}
		}
	}
	result.ID = primitive.NewObjectID()
	m.results = append(m.results, *result)
	return nil
}

func (m *memResultRepo) GetByStudentID(ctx context.Context, studentID string) (*models.Result, error) {
	for _, r := range m.results {
		if r.StudentID == studentID {
			result := r
			return &result, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *memResultRepo) Exists(ctx context.Context, field, value string) (bool, error) {
	for _, r := range m.results {
		if field == "studentId" && r.StudentID == value {
			return true, nil
		}
	}
	return false, nil
}

func newTestRouter(results *memResultRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	lgr := zerolog.Nop()

	authController := NewAuthController(services.NewAuthService(&memAdminRepo{}, lgr), lgr)
	studentController := NewStudentController(services.NewStudentService(&memStudentRepo{}, "student123", lgr), lgr)
	resultController := NewResultController(services.NewResultService(results))

	router := gin.New()
	router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "API Running") })

	api := router.Group("/api")
	auth := api.Group("/auth")
	auth.POST("/register", authController.Register)
	auth.POST("/login", authController.Login)

	students := api.Group("/students")
	students.GET("", studentController.GetAllStudents)
	students.POST("", studentController.CreateStudent)
	students.DELETE("/:id", studentController.DeleteStudent)
	students.POST("/login", studentController.Login)
	students.GET("/profile/:id", studentController.GetProfile)
	students.GET("/clear", studentController.ClearStudents)

	api.GET("/results/:studentId", resultController.GetResultByStudentID)

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	decoded := map[string]any{}
	if len(w.Body.Bytes()) > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func TestAdminAuthFlow(t *testing.T) {
	router := newTestRouter(&memResultRepo{})
	creds := map[string]string{"email": "a@x.com", "password": "pw1"}

	w, body := doJSON(t, router, http.MethodPost, "/api/auth/register", creds)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Admin registered successfully", body["msg"])

	w, body = doJSON(t, router, http.MethodPost, "/api/auth/register", creds)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Admin already exists", body["msg"])

	w, body = doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{"email": "a@x.com", "password": "wrong"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid credentials", body["msg"])

	w, body = doJSON(t, router, http.MethodPost, "/api/auth/login", creds)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Login successful", body["msg"])
}

func TestStudentRosterFlow(t *testing.T) {
	router := newTestRouter(&memResultRepo{})

	student := map[string]any{
		"name":            "Asha Rao",
		"rollNumber":      "CS101",
		"email":           " Asha@B.com ",
		"phoneNumber":     "9876543210",
		"currentSemester": 3,
		"program":         "B.Tech CSE",
	}

	w, body := doJSON(t, router, http.MethodPost, "/api/students", student)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "asha@b.com", body["email"])
	assert.Equal(t, float64(3), body["currentSemester"])
	_, hasPassword := body["password"]
	assert.False(t, hasPassword)
	id := body["id"].(string)

	// duplicate roll number is rejected after the first create commits
	dup := map[string]any{}
	for k, v := range student {
		dup[k] = v
	}
	dup["email"] = "other@b.com"
	w, body = doJSON(t, router, http.MethodPost, "/api/students", dup)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Student with this rollNumber already exists", body["msg"])

	// missing fields are all reported
	w, body = doJSON(t, router, http.MethodPost, "/api/students", map[string]any{"name": "X"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "All fields are required", body["msg"])
	assert.ElementsMatch(t,
		[]any{"rollNumber", "email", "phoneNumber", "currentSemester", "program"},
		body["missing"])

	// semester out of range
	bad := map[string]any{}
	for k, v := range student {
		bad[k] = v
	}
	bad["rollNumber"] = "CS999"
	bad["email"] = "nine@b.com"
	bad["currentSemester"] = 9
	w, body = doJSON(t, router, http.MethodPost, "/api/students", bad)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Validation Error", body["msg"])
	assert.Contains(t, body["errors"], "currentSemester must be between 1 and 8")

	// student login with the default password
	w, body = doJSON(t, router, http.MethodPost, "/api/students/login", map[string]string{"email": "asha@b.com", "password": "student123"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])

	// profile lookup
	w, body = doJSON(t, router, http.MethodGet, "/api/students/profile/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "CS101", body["rollNumber"])

	// delete unknown then known
	w, body = doJSON(t, router, http.MethodDelete, "/api/students/"+primitive.NewObjectID().Hex(), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Student not found", body["msg"])

	w, body = doJSON(t, router, http.MethodDelete, "/api/students/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Student removed", body["msg"])
	assert.Equal(t, id, body["id"])

	w, _ = doJSON(t, router, http.MethodGet, "/api/students", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestResultLookup(t *testing.T) {
	results := &memResultRepo{
		results: []models.Result{
			{StudentID: "CS101", TotalMarks: 156, Percentage: 78, Grade: "B+"},
		},
	}
	router := newTestRouter(results)

	w, body := doJSON(t, router, http.MethodGet, "/api/results/CS101", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "B+", data["grade"])

	w, body = doJSON(t, router, http.MethodGet, "/api/results/CS999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Results not found for this student", body["msg"])
}
