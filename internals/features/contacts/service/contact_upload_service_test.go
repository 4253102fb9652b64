package service

import (
	"bytes"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"contactbook_backend/internals/features/contacts/dto"
	"contactbook_backend/internals/features/contacts/model"
	helper "contactbook_backend/internals/helpers"
)

// buildForm merakit form multipart sungguhan supaya FileHeader yang
// dites sama dengan yang dihasilkan parser HTTP.
func buildForm(t *testing.T, files map[string][]byte) *multipart.Form {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for field, content := range files {
		part, err := w.CreateFormFile(field, field+".bin")
		if err != nil {
			t.Fatalf("buat part %s: %v", field, err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("parse form: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form
}

func TestPlaceFilesAttachment(t *testing.T) {
	dir := t.TempDir()
	upload := NewContactUploadService(dir, t.TempDir())

	form := buildForm(t, map[string][]byte{"file0": []byte("isi dokumen")})
	parts := helper.CollectFileParts(form)

	saved := &model.ContactModel{
		ContactID: 7,
		Attachments: []model.ContactAttachmentModel{
			{AttachmentID: 31, AttachmentFileName: "contract"},
		},
	}
	fields := dto.FormFields{"fileName0": "contract"}

	placed, written, err := upload.PlaceFiles(saved, fields, parts)
	if err != nil {
		t.Fatalf("PlaceFiles: %v", err)
	}
	if len(placed) != 1 || placed[0].AttachmentID != 31 {
		t.Fatalf("placed = %+v", placed)
	}
	if placed[0].AttachmentRealFileName != "file0.bin" {
		t.Errorf("real file name = %q", placed[0].AttachmentRealFileName)
	}
	wantPath := filepath.Join(dir, "31_file0.bin")
	if len(written) != 1 || written[0] != wantPath {
		t.Fatalf("written = %v, mau [%s]", written, wantPath)
	}
	content, err := os.ReadFile(wantPath)
	if err != nil {
		t.Fatalf("baca file tujuan: %v", err)
	}
	if string(content) != "isi dokumen" {
		t.Errorf("isi = %q", content)
	}
}

func TestPlaceFilesNewPrefix(t *testing.T) {
	dir := t.TempDir()
	upload := NewContactUploadService(dir, t.TempDir())

	form := buildForm(t, map[string][]byte{"newfile2": []byte("x")})
	saved := &model.ContactModel{
		ContactID: 7,
		Attachments: []model.ContactAttachmentModel{
			{AttachmentID: 40, AttachmentFileName: "scan"},
		},
	}
	fields := dto.FormFields{"newfileName2": "scan"}

	placed, _, err := upload.PlaceFiles(saved, fields, helper.CollectFileParts(form))
	if err != nil {
		t.Fatalf("PlaceFiles: %v", err)
	}
	if len(placed) != 1 || placed[0].AttachmentID != 40 {
		t.Errorf("placed = %+v", placed)
	}
}

func TestPlaceFilesSameLogicalNameFillsInOrder(t *testing.T) {
	dir := t.TempDir()
	upload := NewContactUploadService(dir, t.TempDir())

	form := buildForm(t, map[string][]byte{
		"file0": []byte("a"),
		"file1": []byte("b"),
	})
	saved := &model.ContactModel{
		ContactID: 7,
		Attachments: []model.ContactAttachmentModel{
			{AttachmentID: 50, AttachmentFileName: "doc"},
			{AttachmentID: 51, AttachmentFileName: "doc"},
		},
	}
	fields := dto.FormFields{"fileName0": "doc", "fileName1": "doc"}

	placed, _, err := upload.PlaceFiles(saved, fields, helper.CollectFileParts(form))
	if err != nil {
		t.Fatalf("PlaceFiles: %v", err)
	}
	if len(placed) != 2 {
		t.Fatalf("placed = %+v", placed)
	}
	// baris pertama terisi dulu, baris kedua menyusul
	if placed[0].AttachmentID != 50 || placed[1].AttachmentID != 51 {
		t.Errorf("urutan pengisian = %+v", placed)
	}
}

func TestPlaceFilesMalformedField(t *testing.T) {
	upload := NewContactUploadService(t.TempDir(), t.TempDir())
	saved := &model.ContactModel{ContactID: 7}

	for _, field := range []string{"dokumen0", "fileX", "file-1", "file"} {
		form := buildForm(t, map[string][]byte{field: []byte("x")})
		_, written, err := upload.PlaceFiles(saved, dto.FormFields{}, helper.CollectFileParts(form))
		if !errors.Is(err, dto.ErrInvalidInput) {
			t.Errorf("field %q: err = %v, mau ErrInvalidInput", field, err)
		}
		if len(written) != 0 {
			t.Errorf("field %q: ada file tertulis %v", field, written)
		}
	}
}

func TestPlaceFilesMissingLogicalName(t *testing.T) {
	upload := NewContactUploadService(t.TempDir(), t.TempDir())
	form := buildForm(t, map[string][]byte{"file0": []byte("x")})
	saved := &model.ContactModel{ContactID: 7}

	_, _, err := upload.PlaceFiles(saved, dto.FormFields{}, helper.CollectFileParts(form))
	if !errors.Is(err, dto.ErrInvalidInput) {
		t.Errorf("tanpa fileName0: err = %v, mau ErrInvalidInput", err)
	}
}

func TestPlaceFilesNoPendingAttachment(t *testing.T) {
	upload := NewContactUploadService(t.TempDir(), t.TempDir())
	form := buildForm(t, map[string][]byte{"file0": []byte("x")})
	saved := &model.ContactModel{
		ContactID: 7,
		Attachments: []model.ContactAttachmentModel{
			// sudah terisi, bukan pending
			{AttachmentID: 60, AttachmentFileName: "doc", AttachmentRealFileName: "lama.pdf"},
		},
	}
	_, _, err := upload.PlaceFiles(saved, dto.FormFields{"fileName0": "doc"}, helper.CollectFileParts(form))
	if !errors.Is(err, dto.ErrInvalidInput) {
		t.Errorf("tanpa baris pending: err = %v, mau ErrInvalidInput", err)
	}
}

func TestCleanupFiles(t *testing.T) {
	dir := t.TempDir()
	upload := NewContactUploadService(dir, dir)
	path := filepath.Join(dir, "7_x.bin")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	upload.CleanupFiles([]string{path})
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file tidak terhapus: %v", err)
	}
}

func TestAttachmentPath(t *testing.T) {
	upload := NewContactUploadService("/data/attachments", "/data/images")
	got := upload.AttachmentPath(31, "laporan akhir.pdf")
	want := filepath.Join("/data/attachments", "31_laporan akhir.pdf")
	if got != want {
		t.Errorf("path = %q, mau %q", got, want)
	}
	// path traversal di nama asli dibuang
	got = upload.AttachmentPath(31, "../../etc/passwd")
	if got != filepath.Join("/data/attachments", "31_passwd") {
		t.Errorf("path traversal tidak dinetralkan: %q", got)
	}
}

func TestProfileImagePath(t *testing.T) {
	upload := NewContactUploadService("/data/attachments", "/data/images")
	if got := upload.ProfileImagePath(7); got != filepath.Join("/data/images", "7.webp") {
		t.Errorf("path = %q", got)
	}
}
