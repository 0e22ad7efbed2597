package file

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, _ := setupTestService(t)
	r := gin.New()
	RegisterRoutes(r.Group("/"), NewHandler(svc))
	return r
}

// uploadRequest builds a multipart POST /files/upload request.
func uploadRequest(t *testing.T, filename, contentType string, content []byte, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if filename != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
		if contentType != "" {
			h.Set("Content-Type", contentType)
		}
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/files/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestUploadFetchDeleteRoundTrip(t *testing.T) {
	router := newTestRouter(t)
	content := bytes.Repeat([]byte{0xAB}, 2048)

	// Upload a 2 KB png.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "trip.png", "image/png", content, nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res UploadResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, CategoryImage, res.Type)
	assert.Equal(t, int64(2048), res.Size)
	assert.Equal(t, "trip.png", res.OriginalFilename)
	assert.Regexp(t, regexp.MustCompile(`^/files/messages/images/[0-9a-f-]{36}\.png$`), res.URL)

	// Fetch it back: byte-identical content, image content type.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, res.URL, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, content, w.Body.Bytes())
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	// Delete it.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, res.URL, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "message")

	// Gone now.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, res.URL, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Second delete is 404, not a silent success.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, res.URL, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUploadRejectsTextFile(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "notes.txt", "text/plain", []byte("hello"), nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not allowed")
}

func TestUploadRequiresFile(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "", "", nil, map[string]string{"trip_id": "1"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no file provided")
}

func TestUploadRejectsNonIntegerIDs(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "a.png", "image/png", []byte("x"), map[string]string{"message_id": "abc"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "message_id must be an integer")
}

func TestUploadUnknownMessageIs404(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "a.png", "image/png", []byte("x"), map[string]string{"message_id": "999"}))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "message not found")
}

func TestFetchRejectsUnknownCategory(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/files/messages/videos/a.png", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/files/messages/videos/a.png", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFetchMissingFileIs404(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/files/messages/pdfs/missing.pdf", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
