package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/suyashdayal/treechat-api/internal/database"
	"github.com/suyashdayal/treechat-api/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter builds the full route table over an in-memory sqlite database.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// an in-memory sqlite database exists per connection
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Room{}, &models.Message{}))

	store := database.NewDatabase(db)
	userH := NewUserHandler(store)
	roomH := NewRoomHandler(store)
	messageH := NewMessageHandler(store)

	r := gin.New()

	users := r.Group("/users")
	users.GET("", userH.List)
	users.GET("/:name", userH.GetByName)
	users.POST("/new", userH.Create)

	rooms := r.Group("/rooms")
	rooms.GET("", roomH.List)
	rooms.GET("/:name", roomH.GetByName)
	rooms.POST("/new", roomH.Create)

	messages := r.Group("/messages")
	messages.GET("/:room_name", messageH.ListByRoom)
	messages.POST("/new", messageH.Create)

	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func createUser(t *testing.T, r *gin.Engine, name, password string) {
	t.Helper()

	rr := doRequest(t, r, http.MethodPost, "/users/new", gin.H{
		"name":     name,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, rr.Code)
}

func createRoom(t *testing.T, r *gin.Engine, name, adminName string) {
	t.Helper()

	rr := doRequest(t, r, http.MethodPost, "/rooms/new", gin.H{
		"name":            name,
		"room_admin_name": adminName,
	})
	require.Equal(t, http.StatusCreated, rr.Code)
}

func createMessage(t *testing.T, r *gin.Engine, body, senderName, roomName string) {
	t.Helper()

	rr := doRequest(t, r, http.MethodPost, "/messages/new", gin.H{
		"body":        body,
		"sender_name": senderName,
		"room_name":   roomName,
	})
	require.Equal(t, http.StatusCreated, rr.Code)
}
