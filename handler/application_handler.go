package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/vidyonnati/foundation-backend/forms"
	"github.com/vidyonnati/foundation-backend/service"
)

type ApplicationHandler struct {
	applications service.ApplicationService
	auth         service.AuthService
	log          *logrus.Logger
}

func NewApplicationHandler(applications service.ApplicationService, auth service.AuthService, log *logrus.Logger) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, auth: auth, log: log}
}

// Submit handles the final wizard step.
// POST /api/applications — multipart form: "type" plus one value per wizard
// field, and one file part per attached document, named by document type.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	user, ok := currentUser(c, h.auth)
	if !ok {
		return
	}

	variant, err := forms.ParseVariant(c.PostForm("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	schema, err := forms.SchemaFor(variant)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart form required", "detail": err.Error()})
		return
	}

	values := make(map[string]string, len(form.Value))
	for name, vs := range form.Value {
		if name == "type" || len(vs) == 0 {
			continue
		}
		values[name] = vs[0]
	}

	known := make(map[string]bool)
	for _, name := range schema.DocumentNames() {
		known[name] = true
	}
	var attachments []service.Attachment
	for name, files := range form.File {
		if !known[name] || len(files) == 0 {
			continue
		}
		data, err := readFileHeader(files[0])
		if err != nil {
			h.log.WithError(err).WithField("document", name).Error("failed to read upload")
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file", "detail": err.Error()})
			return
		}
		attachments = append(attachments, service.Attachment{
			DocumentType: name,
			FileName:     files[0].Filename,
			ContentType:  files[0].Header.Get("Content-Type"),
			Data:         data,
		})
	}

	result, err := h.applications.Submit(c.Request.Context(), user, variant, values, attachments)
	if err != nil {
		if errors.Is(err, service.ErrMissingDocument) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.WithError(err).Error("application submit failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/applications/mine
func (h *ApplicationHandler) Mine(c *gin.Context) {
	user, ok := currentUser(c, h.auth)
	if !ok {
		return
	}
	apps, err := h.applications.ListForUser(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

func readFileHeader(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
