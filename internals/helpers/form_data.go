// file: internals/helpers/form_data.go
package helper

import (
	"errors"
	"fmt"
	"mime/multipart"
	"sort"
)

// Batas upload mengikuti kontrak lama: 100MB per file, 300MB per request.
// MaxRequestSize juga dipasang sebagai BodyLimit Fiber di main.go.
const (
	MaxFileSize    = 100 * 1024 * 1024
	MaxRequestSize = 300 * 1024 * 1024
)

// ErrUploadTooLarge: request/file melewati batas → 413, tanpa state parsial.
var ErrUploadTooLarge = errors.New("upload melebihi batas ukuran")

// FilePart: satu bagian file dari form multipart, dengan nama fieldnya
// (userImage / file{i} / newfile{i}).
type FilePart struct {
	FieldName string
	Header    *multipart.FileHeader
}

// CollectFormFields meratakan semua field non-file menjadi map string.
// Nilai pertama yang menang kalau satu field terkirim berulang. Bagian
// file TIDAK pernah masuk ke map ini — pemanggil hanya melihat upload
// beneran lewat CollectFileParts.
func CollectFormFields(form *multipart.Form) map[string]string {
	fields := make(map[string]string)
	if form == nil {
		return fields
	}
	for name, values := range form.Value {
		if len(values) > 0 {
			fields[name] = values[0]
		}
	}
	return fields
}

// CollectFileParts mengambil semua bagian file yang benar-benar berisi
// (nama file tidak kosong), diurutkan stabil berdasarkan nama field.
func CollectFileParts(form *multipart.Form) []FilePart {
	if form == nil || form.File == nil {
		return nil
	}
	names := make([]string, 0, len(form.File))
	for name := range form.File {
		names = append(names, name)
	}
	sort.Strings(names)

	var parts []FilePart
	for _, name := range names {
		for _, fh := range form.File[name] {
			if fh != nil && fh.Filename != "" {
				parts = append(parts, FilePart{FieldName: name, Header: fh})
			}
		}
	}
	return parts
}

// ValidateUploadSizes menegakkan batas per-file dan total request.
// Dipanggil sebelum ada tulisan DB/disk apa pun.
func ValidateUploadSizes(form *multipart.Form) error {
	if form == nil || form.File == nil {
		return nil
	}
	var total int64
	for name, headers := range form.File {
		for _, fh := range headers {
			if fh == nil {
				continue
			}
			if fh.Size > MaxFileSize {
				return fmt.Errorf("%w: file %q %d bytes", ErrUploadTooLarge, name, fh.Size)
			}
			total += fh.Size
		}
	}
	if total > MaxRequestSize {
		return fmt.Errorf("%w: total %d bytes", ErrUploadTooLarge, total)
	}
	return nil
}
