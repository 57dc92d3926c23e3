package api

import (
	"bytes"
	"encoding/json"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/youruser/idcardgen/internal/controller"
	imagepkg "github.com/youruser/idcardgen/internal/image"
	"github.com/youruser/idcardgen/internal/manifest"
	"github.com/youruser/idcardgen/internal/roster"
)

func newTestServer(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	face, _, err := imagepkg.LoadFace("", imagepkg.DefaultFontSize)
	require.NoError(t, err)
	ctl := controller.New(
		imagepkg.NewCompositor(imagepkg.DefaultLayout(), face),
		manifest.NewWriter(false, nil),
		controller.Options{OutputRoot: filepath.Join(t.TempDir(), "out")},
		nil,
	)
	r := gin.New()
	RegisterRoutes(r, NewHandler(ctl, nil))
	return r, t.TempDir()
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func savePNG(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, imaging.Save(imaging.New(60, 60, color.NRGBA{G: 0xff, A: 0xff}), path))
	return path
}

func TestHealth(t *testing.T) {
	r, _ := newTestServer(t)
	w := doJSON(t, r, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "ok", body["status"])
	require.Equal(t, false, body["spreadsheet"])
}

func TestRecipientLifecycle(t *testing.T) {
	r, in := newTestServer(t)
	img := savePNG(t, in, "p.png")

	w := doJSON(t, r, http.MethodPost, "/api/recipients", map[string]string{"field2": "x", "image_path": img})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), roster.ErrField1Required.Error())

	w = doJSON(t, r, http.MethodPost, "/api/recipients", map[string]string{"field1": "Ada Lovelace", "field2": "Eng", "image_path": img})
	require.Equal(t, http.StatusCreated, w.Code)
	var ada roster.Recipient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ada))
	require.NotEmpty(t, ada.ID)

	w = doJSON(t, r, http.MethodPost, "/api/recipients", map[string]string{"field1": "Alan Turing", "image_path": img})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/recipients?q=lovelace", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Count      int                `json:"count"`
		Recipients []roster.Recipient `json:"recipients"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Equal(t, 1, list.Count)
	require.Equal(t, ada.ID, list.Recipients[0].ID)

	w = doJSON(t, r, http.MethodDelete, "/api/recipients/"+ada.ID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(t, r, http.MethodDelete, "/api/recipients/"+ada.ID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGenerate(t *testing.T) {
	r, in := newTestServer(t)
	img := savePNG(t, in, "p.png")

	w := doJSON(t, r, http.MethodPost, "/api/generate", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), controller.ErrNoTemplate.Error())

	w = doJSON(t, r, http.MethodPut, "/api/template", map[string]string{"path": savePNG(t, in, "bg.png")})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/generate", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), controller.ErrEmptyRoster.Error())

	w = doJSON(t, r, http.MethodPost, "/api/recipients", map[string]string{"field1": "Ada", "image_path": img})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/generate", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Summary controller.Summary `json:"summary"`
		Message string             `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, 1, body.Summary.Rendered)
	require.Equal(t, manifest.FormatCSV, body.Summary.Manifest.Format)
	require.Contains(t, body.Message, "Generated 1 of 1 ID cards")
}

func TestPreview(t *testing.T) {
	r, in := newTestServer(t)
	img := savePNG(t, in, "p.png")
	doJSON(t, r, http.MethodPut, "/api/template", map[string]string{"path": savePNG(t, in, "bg.png")})
	w := doJSON(t, r, http.MethodPost, "/api/recipients", map[string]string{"field1": "Ada", "image_path": img})
	var ada roster.Recipient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ada))

	w = doJSON(t, r, http.MethodGet, "/api/recipients/"+ada.ID+"/preview", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "image/png", w.Header().Get("Content-Type"))
	card, err := png.Decode(w.Body)
	require.NoError(t, err)
	require.Equal(t, 400, card.Bounds().Dx())

	w = doJSON(t, r, http.MethodGet, "/api/recipients/unknown/preview", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestQR(t *testing.T) {
	r, _ := newTestServer(t)
	w := doJSON(t, r, http.MethodGet, "/api/qr?text=hello&size=150", nil)
	require.Equal(t, http.StatusOK, w.Code)
	img, err := png.Decode(w.Body)
	require.NoError(t, err)
	require.Equal(t, 150, img.Bounds().Dx())

	w = doJSON(t, r, http.MethodGet, "/api/qr", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
