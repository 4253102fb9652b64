package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"contactbook_backend/internals/features/contacts/dto"
	"contactbook_backend/internals/features/contacts/model"
	helper "contactbook_backend/internals/helpers"
)

// Nama field file di form multipart.
const (
	ProfileImageField    = "userImage"
	attachmentFieldNew   = "newfile"
	attachmentFieldPlain = "file"
)

// ContactUploadService menempatkan bagian file request ke filesystem:
// foto profil jadi <imagesDir>/<contactId>.webp, payload lampiran jadi
// <attachmentsDir>/<attachmentId>_<namaFileAsli>. Korelasi payload ke
// baris attachment lewat parse index nama field (file{i} ↔ fileName{i},
// newfile{i} ↔ newfileName{i}).
type ContactUploadService struct {
	attachmentsDir string
	imagesDir      string
}

func NewContactUploadService(attachmentsDir, imagesDir string) *ContactUploadService {
	return &ContactUploadService{attachmentsDir: attachmentsDir, imagesDir: imagesDir}
}

// PlaceFiles menulis semua bagian file ke disk. Mengembalikan attachment
// yang terisi real file name-nya (untuk dipersist oleh modify service di
// transaksi yang sama) plus daftar path yang sudah ditulis, supaya
// pemanggil bisa membersihkannya kalau transaksi batal.
func (s *ContactUploadService) PlaceFiles(saved *model.ContactModel, fields dto.FormFields, parts []helper.FilePart) (placed []model.ContactAttachmentModel, written []string, err error) {
	for _, part := range parts {
		if part.FieldName == ProfileImageField {
			path := s.ProfileImagePath(saved.ContactID)
			if err := helper.SaveProfileImage(part.Header, path); err != nil {
				return placed, written, err
			}
			written = append(written, path)
			continue
		}

		prefix, index, err := parseAttachmentField(part.FieldName)
		if err != nil {
			return placed, written, err
		}
		logicalName := fields.Get(logicalNameField(prefix, index))
		if logicalName == "" {
			return placed, written, fmt.Errorf("%w: field file %q tanpa %s",
				dto.ErrInvalidInput, part.FieldName, logicalNameField(prefix, index))
		}

		attachment := findPendingAttachment(saved.Attachments, logicalName)
		if attachment == nil {
			return placed, written, fmt.Errorf("%w: tidak ada attachment pending untuk %q",
				dto.ErrInvalidInput, logicalName)
		}
		attachment.AttachmentRealFileName = part.Header.Filename

		path := s.AttachmentPath(attachment.AttachmentID, part.Header.Filename)
		if err := helper.SaveMultipartFile(part.Header, path); err != nil {
			return placed, written, err
		}
		written = append(written, path)
		placed = append(placed, *attachment)
	}
	return placed, written, nil
}

// CleanupFiles menghapus file yang terlanjur ditulis (jalur rollback).
func (s *ContactUploadService) CleanupFiles(paths []string) {
	for _, p := range paths {
		os.Remove(p)
	}
}

func (s *ContactUploadService) ProfileImagePath(contactID int64) string {
	return filepath.Join(s.imagesDir, strconv.FormatInt(contactID, 10)+".webp")
}

func (s *ContactUploadService) AttachmentPath(attachmentID int64, originalName string) string {
	name := strconv.FormatInt(attachmentID, 10) + "_" + filepath.Base(originalName)
	return filepath.Join(s.attachmentsDir, name)
}

// parseAttachmentField membongkar nama field payload lampiran menjadi
// (prefix, index). Parse ketat: selain newfile{i}/file{i} = input rusak,
// bukan di-skip diam-diam.
func parseAttachmentField(fieldName string) (prefix string, index int, err error) {
	switch {
	case strings.HasPrefix(fieldName, attachmentFieldNew):
		prefix = attachmentFieldNew
	case strings.HasPrefix(fieldName, attachmentFieldPlain):
		prefix = attachmentFieldPlain
	default:
		return "", 0, fmt.Errorf("%w: field file %q tidak dikenal", dto.ErrInvalidInput, fieldName)
	}
	index, convErr := strconv.Atoi(fieldName[len(prefix):])
	if convErr != nil || index < 0 {
		return "", 0, fmt.Errorf("%w: index field file %q", dto.ErrInvalidInput, fieldName)
	}
	return prefix, index, nil
}

func logicalNameField(prefix string, index int) string {
	if prefix == attachmentFieldNew {
		return "newfileName" + strconv.Itoa(index)
	}
	return "fileName" + strconv.Itoa(index)
}

// findPendingAttachment mencari baris attachment dengan nama logis sama
// yang belum punya file fisik. Dua baris bernama sama terisi berurutan
// karena baris yang sudah terisi tidak lagi pending.
func findPendingAttachment(attachments []model.ContactAttachmentModel, logicalName string) *model.ContactAttachmentModel {
	for i := range attachments {
		if attachments[i].AttachmentFileName == logicalName && attachments[i].AttachmentRealFileName == "" {
			return &attachments[i]
		}
	}
	return nil
}
