// file: internals/helpers/local_storage.go
package helper

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"contactbook_backend/internals/configs"
)

// Foto kontak dinormalisasi: downscale + re-encode WebP quality 85.
const (
	profileImageMaxSize = 1024
	webpQuality         = 85
)

// EnsureDirectory membuat direktori kalau belum ada (idempotent).
func EnsureDirectory(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// EnsureUploadDirectories menyiapkan kedua direktori upload dari config.
func EnsureUploadDirectories() error {
	if err := EnsureDirectory(configs.AttachmentsDirectory); err != nil {
		return err
	}
	return EnsureDirectory(configs.ImagesDirectory)
}

// SaveMultipartFile menulis isi satu bagian file ke path tujuan.
// Tulis dulu ke file sementara (uuid) lalu rename, supaya tidak ada
// file setengah jadi dengan nama final.
func SaveMultipartFile(fh *multipart.FileHeader, destPath string) error {
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("gagal membuka upload: %w", err)
	}
	defer src.Close()

	if err := EnsureDirectory(filepath.Dir(destPath)); err != nil {
		return err
	}
	tmpPath := filepath.Join(filepath.Dir(destPath), "."+uuid.NewString()+".part")
	dst, err := os.Create(tmpPath)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := dst.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, destPath)
}

// SaveProfileImage menormalkan gambar profil (jpg/png/webp) lalu
// menulisnya sebagai WebP ke path tujuan.
func SaveProfileImage(fh *multipart.FileHeader, destPath string) error {
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("gagal membuka gambar: %w", err)
	}
	defer src.Close()

	all, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("gagal membaca gambar: %w", err)
	}
	img, err := decodeImage(all, fh.Filename)
	if err != nil {
		return err
	}
	// keep aspect, cap sisi terpanjang
	img = imaging.Fit(img, profileImageMaxSize, profileImageMaxSize, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: webpQuality}); err != nil {
		return fmt.Errorf("gagal konversi ke WebP: %w", err)
	}
	if err := EnsureDirectory(filepath.Dir(destPath)); err != nil {
		return err
	}
	return os.WriteFile(destPath, buf.Bytes(), 0o644)
}

// decodeImage: sniff MIME dulu, fallback ke ekstensi.
func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("file kosong")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	}
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(all))
	case ".png":
		return png.Decode(bytes.NewReader(all))
	case ".webp":
		return webp.Decode(bytes.NewReader(all))
	}
	return nil, fmt.Errorf("format gambar tidak didukung: %s / %s", ct, ext)
}
