package api

import (
	"bytes"
	"errors"
	"image/png"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/youruser/idcardgen/internal/controller"
	imagepkg "github.com/youruser/idcardgen/internal/image"
	"github.com/youruser/idcardgen/internal/roster"
)

// Handler serves the operator surface over a single controller.
type Handler struct {
	ctl    *controller.Controller
	logger *slog.Logger
}

func NewHandler(ctl *controller.Controller, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{ctl: ctl, logger: logger.With(slog.String("component", "api"))}
}

// errorStatus maps validation sentinels to 400/404, anything else to 500.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, roster.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, roster.ErrField1Required),
		errors.Is(err, roster.ErrImageRequired),
		errors.Is(err, roster.ErrDuplicateID),
		errors.Is(err, controller.ErrNoTemplate),
		errors.Is(err, controller.ErrEmptyRoster):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) fail(c *gin.Context, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"spreadsheet": h.ctl.SpreadsheetEnabled(),
	})
}

func (h *Handler) listRecipients(c *gin.Context) {
	out := roster.Filter(h.ctl.Recipients(), c.Query("q"))
	c.JSON(http.StatusOK, gin.H{
		"count":      len(out),
		"recipients": out,
		"template":   h.ctl.Template(),
	})
}

type addRecipientRequest struct {
	Field1    string `json:"field1"`
	Field2    string `json:"field2"`
	Field3    string `json:"field3"`
	ImagePath string `json:"image_path"`
}

func (h *Handler) addRecipient(c *gin.Context) {
	var req addRecipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rec, err := h.ctl.Add(req.Field1, req.Field2, req.Field3, req.ImagePath)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *Handler) removeRecipient(c *gin.Context) {
	if err := h.ctl.Remove(c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) setTemplate(c *gin.Context) {
	var req struct {
		Path string `json:"path"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.ctl.SetTemplate(req.Path); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"template": req.Path})
}

func (h *Handler) generate(c *gin.Context) {
	summary, err := h.ctl.Generate()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"summary": summary,
		"message": summary.Message(),
	})
}

// qr returns a PNG of a QR for the "text" query param
func (h *Handler) qr(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	size := imagepkg.DefaultQRSize
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 {
		size = v
	}
	b, err := imagepkg.EncodeQRPNG(text, size)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

func (h *Handler) previewCard(c *gin.Context) {
	img, err := h.ctl.Preview(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		h.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
