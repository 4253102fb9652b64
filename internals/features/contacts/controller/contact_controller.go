package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"contactbook_backend/internals/configs"
	"contactbook_backend/internals/features/contacts/dto"
	"contactbook_backend/internals/features/contacts/model"
	"contactbook_backend/internals/features/contacts/service"
	helper "contactbook_backend/internals/helpers"
)

// ContactController: orkestrasi HTTP → service. Semua dependensi
// di-inject lewat konstruktor, tidak ada singleton.
type ContactController struct {
	Find       *service.ContactFindService
	Modify     *service.ContactModifyService
	Attributes *service.ContactAttributesService
	Upload     *service.ContactUploadService

	validate *validator.Validate
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{
		Find:       service.NewContactFindService(db, configs.ContactsPageSize),
		Modify:     service.NewContactModifyService(db),
		Attributes: service.NewContactAttributesService(db),
		Upload:     service.NewContactUploadService(configs.AttachmentsDirectory, configs.ImagesDirectory),
		validate:   validator.New(),
	}
}

// idsRequest: body untuk operasi batch (delete / ambil email).
type idsRequest struct {
	IDs []int64 `json:"ids" validate:"required,min=1,dive,gt=0"`
}

/* =========================
   Read path
========================= */

// GET /api/contacts?startId=&lower=
func (ctrl *ContactController) GetContacts(c *fiber.Ctx) error {
	startID, lowerIDs, err := parseCursor(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input.")
	}
	rows, err := ctrl.Find.GetContacts(c.Context(), startID, lowerIDs)
	if err != nil {
		return ctrl.mapError(c, err)
	}
	return helper.JsonList(c, "daftar kontak", rows, ctrl.pageMeta(startID, lowerIDs, rows))
}

// POST /api/contacts/search  (filter di body, cursor di query)
func (ctrl *ContactController) SearchContacts(c *fiber.Ctx) error {
	startID, lowerIDs, err := parseCursor(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input.")
	}
	var filter dto.ContactSearchAttributes
	if err := c.BodyParser(&filter); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input.")
	}
	if filter.IsEmpty() {
		// filter kosong = listing biasa
		rows, err := ctrl.Find.GetContacts(c.Context(), startID, lowerIDs)
		if err != nil {
			return ctrl.mapError(c, err)
		}
		return helper.JsonList(c, "hasil pencarian", rows, ctrl.pageMeta(startID, lowerIDs, rows))
	}
	rows, err := ctrl.Find.GetContactsFiltered(c.Context(), &filter, startID, lowerIDs)
	if err != nil {
		return ctrl.mapError(c, err)
	}
	return helper.JsonList(c, "hasil pencarian", rows, ctrl.pageMeta(startID, lowerIDs, rows))
}

// GET /api/contacts/:id
func (ctrl *ContactController) GetContact(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input.")
	}
	contact, err := ctrl.Find.GetContact(c.Context(), id)
	if err != nil {
		return ctrl.mapError(c, err)
	}
	return helper.JsonOK(c, "detail kontak", dto.ToContactResponse(contact))
}

// POST /api/contacts/emails
func (ctrl *ContactController) GetEmails(c *fiber.Ctx) error {
	ids, err := ctrl.parseIDList(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input.")
	}
	emails, err := ctrl.Find.GetEmails(c.Context(), ids)
	if err != nil {
		return ctrl.mapError(c, err)
	}
	return helper.JsonOK(c, "email kontak", fiber.Map{"emails": emails})
}

// GET /api/countries
func (ctrl *ContactController) GetCountries(c *fiber.Ctx) error {
	countries, err := ctrl.Attributes.GetAllCountries(c.Context())
	if err != nil {
		return ctrl.mapError(c, err)
	}
	return helper.JsonOK(c, "daftar negara", countries)
}

/* =========================
   Write path (multipart)
========================= */

// POST /api/contacts  (multipart form create)
func (ctrl *ContactController) CreateContact(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		// bukan multipart → tolak tanpa menyentuh DB
		log.Printf("[CONTACT] create ditolak, bukan multipart: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input.")
	}
	if err := helper.ValidateUploadSizes(form); err != nil {
		return ctrl.mapError(c, err)
	}

	fields := dto.FormFields(helper.CollectFormFields(form))
	contact, err := dto.BuildNewContact(fields)
	if err != nil {
		return ctrl.mapError(c, err)
	}
	parts := helper.CollectFileParts(form)

	var written []string
	err = ctrl.Modify.AddNewContact(c.Context(), contact, func(saved *model.ContactModel) ([]model.ContactAttachmentModel, error) {
		placed, paths, placeErr := ctrl.Upload.PlaceFiles(saved, fields, parts)
		written = paths
		return placed, placeErr
	})
	if err != nil {
		// transaksi batal: file yang sempat tertulis ikut dibuang
		ctrl.Upload.CleanupFiles(written)
		return ctrl.mapError(c, err)
	}
	return helper.JsonCreated(c, "kontak tersimpan", dto.ToContactResponse(contact))
}

// POST /api/contacts/:id  (multipart form edit)
func (ctrl *ContactController) UpdateContact(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		log.Printf("[CONTACT] edit ditolak, bukan multipart: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input.")
	}
	if err := helper.ValidateUploadSizes(form); err != nil {
		return ctrl.mapError(c, err)
	}

	fields := dto.FormFields(helper.CollectFormFields(form))
	if fields.Get("idContact") == "" {
		// form lama mengirim idContact; path param jadi fallback
		fields["idContact"] = c.Params("id")
	}
	contact, err := dto.BuildEditContact(fields)
	if err != nil {
		return ctrl.mapError(c, err)
	}
	phoneGroups, err := dto.SplitPhoneGroups(fields, contact.ContactID)
	if err != nil {
		return ctrl.mapError(c, err)
	}
	attachmentGroups, err := dto.SplitAttachmentGroups(fields, contact.ContactID)
	if err != nil {
		return ctrl.mapError(c, err)
	}
	parts := helper.CollectFileParts(form)

	var written []string
	err = ctrl.Modify.UpdateContact(c.Context(), contact, phoneGroups, attachmentGroups, func(saved *model.ContactModel) ([]model.ContactAttachmentModel, error) {
		placed, paths, placeErr := ctrl.Upload.PlaceFiles(saved, fields, parts)
		written = paths
		return placed, placeErr
	})
	if err != nil {
		ctrl.Upload.CleanupFiles(written)
		return ctrl.mapError(c, err)
	}

	// Baca ulang aggregate supaya response memuat state final.
	updated, err := ctrl.Find.GetContact(c.Context(), contact.ContactID)
	if err != nil {
		return ctrl.mapError(c, err)
	}
	return helper.JsonUpdated(c, "kontak diperbarui", dto.ToContactResponse(updated))
}

// DELETE /api/contacts
func (ctrl *ContactController) DeleteContacts(c *fiber.Ctx) error {
	ids, err := ctrl.parseIDList(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input.")
	}
	if err := ctrl.Modify.DeleteContacts(c.Context(), ids); err != nil {
		return ctrl.mapError(c, err)
	}
	return helper.JsonDeleted(c, "kontak dihapus", fiber.Map{"ids": ids})
}

/* =========================
   Shared plumbing
========================= */

func parseCursor(c *fiber.Ctx) (startID int64, lowerIDs bool, err error) {
	raw := c.Query("startId", "0")
	startID, err = strconv.ParseInt(raw, 10, 64)
	if err != nil || startID < 0 {
		return 0, false, errors.New("startId tidak valid")
	}
	return startID, c.QueryBool("lowerIds", false), nil
}

// parseIDList menerima dua bentuk: body JSON {"ids":[...]} atau field/
// query CSV contactsId=1,2,3 (kontrak form lama).
func (ctrl *ContactController) parseIDList(c *fiber.Ctx) ([]int64, error) {
	var req idsRequest
	if err := c.BodyParser(&req); err == nil && len(req.IDs) > 0 {
		if err := ctrl.validate.Struct(&req); err != nil {
			return nil, err
		}
		return req.IDs, nil
	}

	csv := c.FormValue("contactsId")
	if csv == "" {
		csv = c.Query("contactsId")
	}
	if csv == "" {
		return nil, errors.New("daftar id kosong")
	}
	var ids []int64
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil || id <= 0 {
			return nil, errors.New("contactsId tidak valid")
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, errors.New("daftar id kosong")
	}
	return ids, nil
}

func (ctrl *ContactController) pageMeta(startID int64, lowerIDs bool, rows []dto.ContactSummaryResponse) *helper.KeysetPage {
	page := &helper.KeysetPage{
		StartID:  startID,
		LowerIDs: lowerIDs,
		PageSize: ctrl.Find.PageSize(),
		Count:    len(rows),
		HasMore:  len(rows) == ctrl.Find.PageSize(),
	}
	if len(rows) > 0 {
		page.FirstID = rows[0].ContactID
		page.LastID = rows[len(rows)-1].ContactID
	}
	return page
}

func (ctrl *ContactController) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrContactNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Contact not found.")
	case errors.Is(err, dto.ErrInvalidInput):
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input.")
	case errors.Is(err, helper.ErrUploadTooLarge):
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "Upload too large.")
	default:
		log.Printf("[CONTACT] internal error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal application error.")
	}
}
