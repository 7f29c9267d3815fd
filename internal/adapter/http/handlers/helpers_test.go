package handlers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"proposalcraft/internal/adapter/http/middleware"
	"proposalcraft/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newRouter(ownerID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if ownerID != "" {
		r.Use(func(c *gin.Context) {
			c.Set(middleware.OwnerIDKey, ownerID)
			c.Next()
		})
	}
	return r
}

func serve(r *gin.Engine, method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func jsonBody(s string) io.Reader {
	return bytes.NewBufferString(s)
}

func multipartFile(t *testing.T, name, contentType string, data []byte) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+name+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func sampleProposal(status entities.ProposalStatus) entities.Proposal {
	return entities.Proposal{
		ID:          "p-1",
		OwnerID:     "u-1",
		ClientName:  "Acme",
		ClientEmail: "a@acme.com",
		ProjectType: entities.ProjectTypeLanding,
		Features:    []string{"Sistema de contato"},
		BudgetTier:  entities.BudgetTier1000To3000,
		Timeline:    entities.Timeline15Days,
		Template:    entities.TemplateModern,
		Status:      status,
		CreatedAt:   fixedNow,
		UpdatedAt:   fixedNow,
		Version:     1,
	}
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, w.Code, w.Body.String())
	}
}

