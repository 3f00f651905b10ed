package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/xw1nchester/protech-admin/internal/apperror"
	"github.com/xw1nchester/protech-admin/internal/filemanager"
	"github.com/xw1nchester/protech-admin/internal/listing"
)

var ErrInvalidID = apperror.NewAppError("invalid id")

// multipartMemory is how much of a multipart body is kept in memory before
// spilling file parts to disk.
const multipartMemory = 8 << 20

func IntParam(r *http.Request, name string) (int, error) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || v < 0 {
		return 0, ErrInvalidID
	}

	return v, nil
}

// ListingOverride reads page, itemsPerPage, sortBy, sortOrder and search from
// the query string. Absent parameters keep the persisted options.
func ListingOverride(r *http.Request) (*listing.Override, error) {
	q := r.URL.Query()
	var o listing.Override

	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			return nil, apperror.NewAppError("field page is not valid")
		}
		o.Page = &page
	}

	if v := q.Get("itemsPerPage"); v != "" {
		perPage, err := strconv.Atoi(v)
		if err != nil || perPage < 1 {
			return nil, apperror.NewAppError("field itemsPerPage is not valid")
		}
		o.ItemsPerPage = &perPage
	}

	if q.Has("sortBy") {
		o.SortBy = []listing.SortBy{}
		if key := q.Get("sortBy"); key != "" {
			order := listing.SortOrder(q.Get("sortOrder"))
			if order != listing.Asc {
				order = listing.Desc
			}
			o.SortBy = append(o.SortBy, listing.SortBy{Key: key, Order: order})
		}
	}

	if q.Has("search") {
		search := q.Get("search")
		o.Search = &search
	}

	return &o, nil
}

// DecodeForm parses a multipart request whose "data" part holds the JSON
// payload. Plain JSON bodies are decoded as well.
func DecodeForm(w http.ResponseWriter, r *http.Request, maxSize int64, dst any) error {
	if render.GetRequestContentType(r) == render.ContentTypeJSON {
		if err := render.DecodeJSON(r.Body, dst); err != nil {
			return apperror.ErrDecodeBody
		}
		return nil
	}

	if err := ParseMultipart(w, r, maxSize); err != nil {
		return err
	}

	data := r.FormValue("data")
	if data == "" {
		return apperror.ErrDecodeBody
	}

	if err := json.Unmarshal([]byte(data), dst); err != nil {
		return apperror.ErrDecodeBody
	}

	return nil
}

// ParseMultipart parses a multipart body of at most maxSize bytes.
func ParseMultipart(w http.ResponseWriter, r *http.Request, maxSize int64) error {
	if maxSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxSize)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apperror.NewAppError(fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
		}
		return apperror.ErrDecodeBody
	}

	return nil
}

// FormFile returns the uploaded file under field, or nil when none was sent.
// The caller closes the returned closer.
func FormFile(r *http.Request, field string) (*filemanager.File, func(), error) {
	if r.MultipartForm == nil || len(r.MultipartForm.File[field]) == 0 {
		return nil, func() {}, nil
	}

	files, closeAll, err := openFiles(r.MultipartForm.File[field][:1])
	if err != nil {
		return nil, closeAll, err
	}

	return &files[0], closeAll, nil
}

// FormFiles returns every uploaded file under field.
func FormFiles(r *http.Request, field string) ([]filemanager.File, func(), error) {
	if r.MultipartForm == nil {
		return nil, func() {}, nil
	}

	return openFiles(r.MultipartForm.File[field])
}

func openFiles(headers []*multipart.FileHeader) ([]filemanager.File, func(), error) {
	files := make([]filemanager.File, 0, len(headers))
	closers := make([]multipart.File, 0, len(headers))

	closeAll := func() {
		for _, c := range closers {
			c.Close()
		}
	}

	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, apperror.NewAppError(fmt.Sprintf("failed to retrieving file: %s", err.Error()))
		}
		closers = append(closers, f)

		files = append(files, filemanager.File{
			Name:        header.Filename,
			Size:        header.Size,
			ContentType: header.Header.Get("Content-Type"),
			Reader:      f,
		})
	}

	return files, closeAll, nil
}
