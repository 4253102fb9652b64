package constants

import (
	"path/filepath"
	"strings"
)

// Jenis file lampiran kontak, dideteksi dari ekstensi nama file asli.
const (
	FileKindAudio        = "audio"
	FileKindDocument     = "document"
	FileKindPDF          = "pdf"
	FileKindPresentation = "presentation"
	FileKindImage        = "image"
	FileKindOther        = "other"
)

func DetectFileKindFromExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".mp3", ".wav":
		return FileKindAudio
	case ".doc", ".docx", ".txt", ".odt":
		return FileKindDocument
	case ".pdf":
		return FileKindPDF
	case ".ppt", ".pptx":
		return FileKindPresentation
	case ".png", ".jpg", ".jpeg", ".webp":
		return FileKindImage
	default:
		return FileKindOther
	}
}
