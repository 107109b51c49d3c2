package handler

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// 商品画像アップロード。ローカルの静的ディレクトリに保存する
type UploadHandler struct {
	uploadDir string
}

func NewUploadHandler(uploadDir string) *UploadHandler {
	return &UploadHandler{uploadDir: uploadDir}
}

func (h *UploadHandler) RegisterRoutes(e *echo.Echo, authed *echo.Group) {
	authed.POST("/uploads", h.upload)
	e.Static("/static/uploads", h.uploadDir)
}

const maxUploadSize = 5 << 20 // 5MB

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

func (h *UploadHandler) upload(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "image is required"})
	}
	if fh.Size > maxUploadSize {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file too large"})
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedImageExts[ext] {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unsupported file type"})
	}

	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "upload failed"})
	}
	defer src.Close()

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "upload failed"})
	}

	//元のファイル名は使わない（衝突とパス注入を避ける）
	name := uuid.NewString() + ext
	dstPath := filepath.Join(h.uploadDir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "upload failed"})
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "upload failed"})
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"url": "/static/uploads/" + name,
	})
}
