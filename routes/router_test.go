package routes

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bloglyapp/blogly/models"
	"github.com/bloglyapp/blogly/store"
	"github.com/bloglyapp/blogly/utils"
)

func TestMain(m *testing.M) {
	os.Setenv("TEMPLATES_GLOB", "../templates/*.html")
	os.Setenv("GIN_MODE", "test")
	gin.SetMode(gin.TestMode)
	utils.InitTestLogger()
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) (*gin.Engine, *store.Store, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// keep the in-memory sqlite database on a single pooled connection
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}, &models.Tag{}))
	return SetupRouter(db), store.New(db), db
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRootRedirectsToUserList(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := get(r, "/")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/users", w.Header().Get("Location"))
}

func TestCreateUserFlow(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := postForm(r, "/users/new", url.Values{
		"first_name": {"Mike"},
		"last_name":  {"Fred"},
		"image_url":  {"test"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)

	location := w.Header().Get("Location")
	require.Regexp(t, regexp.MustCompile(`^/users/\d+$`), location)

	w = get(r, location)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Mike")
	assert.Contains(t, body, location+"/delete")
	assert.Contains(t, body, "Delete")
}

func TestCreateUserMissingFieldRerendersForm(t *testing.T) {
	r, st, _ := newTestServer(t)

	w := postForm(r, "/users/new", url.Values{
		"last_name": {"Fred"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "first name is required")
	// the submitted value survives the re-render
	assert.Contains(t, body, `value="Fred"`)

	users, err := st.ListUsers()
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserListSorted(t *testing.T) {
	r, st, _ := newTestServer(t)

	for _, name := range []string{"Zed", "Ada"} {
		_, err := st.CreateUser(name, "Last", "")
		require.NoError(t, err)
	}

	w := get(r, "/users")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Less(t, strings.Index(body, "Ada"), strings.Index(body, "Zed"))
}

func TestEditUserRedirectsToList(t *testing.T) {
	r, st, _ := newTestServer(t)

	user, err := st.CreateUser("Ada", "Lovelace", "")
	require.NoError(t, err)

	w := postForm(r, "/users/"+itoa(user.ID)+"/edit", url.Values{
		"first_name": {"Augusta"},
		"last_name":  {"King"},
		"image_url":  {""},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/users", w.Header().Get("Location"))

	got, err := st.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Augusta", got.FirstName)
}

func TestNewPostFormMissingUserIs404(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := get(r, "/users/999/posts/new")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNonIntegerIDIs404(t *testing.T) {
	r, _, _ := newTestServer(t)

	assert.Equal(t, http.StatusNotFound, get(r, "/users/abc").Code)
	assert.Equal(t, http.StatusNotFound, get(r, "/posts/abc").Code)
}

func TestCreatePostFlow(t *testing.T) {
	r, st, _ := newTestServer(t)

	user, err := st.CreateUser("Mike", "Fred", "")
	require.NoError(t, err)
	userPath := "/users/" + itoa(user.ID)

	w := postForm(r, userPath+"/posts/new", url.Values{
		"post_title":   {"t"},
		"post_content": {"c"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, userPath, w.Header().Get("Location"))

	w = get(r, userPath)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<h2>Posts</h2>")
	posts, err := st.ListUserPosts(user.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "t", posts[0].Title)
	assert.Contains(t, body, "/posts/"+itoa(posts[0].ID))
}

func TestCreatePostForMissingUserIs404(t *testing.T) {
	r, _, db := newTestServer(t)

	w := postForm(r, "/users/999/posts/new", url.Values{
		"post_title":   {"t"},
		"post_content": {"c"},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	require.NoError(t, db.Table("posts").Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestEditPostFlow(t *testing.T) {
	r, st, _ := newTestServer(t)

	user, err := st.CreateUser("Mike", "Fred", "")
	require.NoError(t, err)
	post, err := st.CreatePost(user.ID, "before", "old words")
	require.NoError(t, err)
	postPath := "/posts/" + itoa(post.ID)

	w := postForm(r, postPath+"/edit", url.Values{
		"post_title":   {"after"},
		"post_content": {"new words"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, postPath, w.Header().Get("Location"))

	got, err := st.GetPost(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Title)
	assert.Equal(t, user.ID, got.UserID)
	assert.True(t, got.CreatedAt.Equal(post.CreatedAt))
}

func TestDeletePostRedirectsToOwner(t *testing.T) {
	r, st, _ := newTestServer(t)

	user, err := st.CreateUser("Mike", "Fred", "")
	require.NoError(t, err)
	post, err := st.CreatePost(user.ID, "t", "c")
	require.NoError(t, err)

	w := postForm(r, "/posts/"+itoa(post.ID)+"/delete", url.Values{})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/users/"+itoa(user.ID), w.Header().Get("Location"))

	assert.Equal(t, http.StatusNotFound, get(r, "/posts/"+itoa(post.ID)).Code)
}

func TestDeleteUserCascadesOverHTTP(t *testing.T) {
	r, st, _ := newTestServer(t)

	user, err := st.CreateUser("Mike", "Fred", "")
	require.NoError(t, err)
	p1, err := st.CreatePost(user.ID, "one", "c1")
	require.NoError(t, err)
	p2, err := st.CreatePost(user.ID, "two", "c2")
	require.NoError(t, err)

	w := postForm(r, "/users/"+itoa(user.ID)+"/delete", url.Values{})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/users", w.Header().Get("Location"))

	assert.Equal(t, http.StatusNotFound, get(r, "/posts/"+itoa(p1.ID)).Code)
	assert.Equal(t, http.StatusNotFound, get(r, "/posts/"+itoa(p2.ID)).Code)
	assert.Equal(t, http.StatusNotFound, get(r, "/users/"+itoa(user.ID)).Code)
}

func TestTagPages(t *testing.T) {
	r, st, _ := newTestServer(t)

	w := postForm(r, "/tags/new", url.Values{"name": {"golang"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/tags", w.Header().Get("Location"))

	w = postForm(r, "/tags/new", url.Values{"name": {"golang"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")

	w = get(r, "/tags")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "golang")

	tags, err := st.ListTags()
	require.NoError(t, err)
	require.Len(t, tags, 1)

	w = postForm(r, "/tags/"+itoa(tags[0].ID)+"/delete", url.Values{})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.NotContains(t, get(r, "/tags").Body.String(), "golang")
}

func TestUnknownRouteRendersNotFoundPage(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := get(r, "/does/not/exist")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found")
}
