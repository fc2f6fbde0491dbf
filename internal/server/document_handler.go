package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"studydesk/internal/service"
)

func (s *Server) listDocuments(c *gin.Context) {
	docs, err := s.svc.Documents.List(c.Request.Context(), userID(c), c.Query("category"), c.Query("file_type"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

func (s *Server) uploadDocument(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
		return
	}
	if header.Size > s.cfg.MaxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrUploadTooLarge.Error()})
		return
	}

	src, err := header.Open()
	if err != nil {
		s.fail(c, err)
		return
	}
	defer src.Close()

	doc, err := s.svc.Documents.Upload(
		c.Request.Context(),
		userID(c),
		src,
		header.Filename,
		c.PostForm("category"),
		time.Now().UTC(),
	)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Document uploaded", "document": doc})
}

func (s *Server) getDocument(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	doc, err := s.svc.Documents.Get(c.Request.Context(), userID(c), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"document": doc})
}

func (s *Server) updateDocument(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		OriginalFilename string `json:"original_filename"`
		Category         string `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	doc, err := s.svc.Documents.Update(c.Request.Context(), userID(c), id, service.DocumentInput{
		OriginalFilename: req.OriginalFilename,
		Category:         req.Category,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document updated", "document": doc})
}

func (s *Server) deleteDocument(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.svc.Documents.Delete(c.Request.Context(), userID(c), id); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}

// downloadDocument streams the stored file back under its original
// name.
func (s *Server) downloadDocument(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	doc, err := s.svc.Documents.Get(c.Request.Context(), userID(c), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.FileAttachment(doc.FilePath, doc.OriginalFilename)
}

func (s *Server) documentCategories(c *gin.Context) {
	categories, err := s.svc.Documents.Categories(c.Request.Context(), userID(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (s *Server) documentStats(c *gin.Context) {
	stats, err := s.svc.Documents.Stats(c.Request.Context(), userID(c), time.Now().UTC())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
