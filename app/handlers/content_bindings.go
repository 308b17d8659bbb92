package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/aureliajewels/jewelry-cms/app/helpers"
	"github.com/aureliajewels/jewelry-cms/app/models"
)

// Per-entity bind functions for the generic content handler. Each copies the
// submitted fields onto the row, enforcing required fields on create only.

func BindBanner(r *http.Request, row *models.Banner, isCreate bool, uploader *helpers.Uploader) []helpers.FieldError {
	var fields []helpers.FieldError

	if v, ok := formValue(r, "title"); ok {
		row.Title = strings.TrimSpace(v)
	}
	if isCreate && row.Title == "" {
		fields = append(fields, helpers.FieldError{Path: "title", Message: "Title is required."})
	}
	if v, ok := formValue(r, "subtitle"); ok {
		row.Subtitle = strings.TrimSpace(v)
	}
	if v, ok := formValue(r, "link"); ok {
		row.Link = strings.TrimSpace(v)
	}
	fields = bindSortOrder(r, &row.SortOrder, fields)
	if ferr := bindMedia(r, "image", &row.Image, uploader); ferr != nil {
		fields = append(fields, *ferr)
	}
	if isCreate {
		row.IsActive = true
	}
	return fields
}

func BindHeroSection(r *http.Request, row *models.HeroSection, isCreate bool, uploader *helpers.Uploader) []helpers.FieldError {
	var fields []helpers.FieldError

	if v, ok := formValue(r, "heading"); ok {
		row.Heading = strings.TrimSpace(v)
	}
	if isCreate && row.Heading == "" {
		fields = append(fields, helpers.FieldError{Path: "heading", Message: "Heading is required."})
	}
	if v, ok := formValue(r, "subheading"); ok {
		row.Subheading = strings.TrimSpace(v)
	}
	if v, ok := formValue(r, "buttonText"); ok {
		row.ButtonText = strings.TrimSpace(v)
	}
	if v, ok := formValue(r, "buttonLink"); ok {
		row.ButtonLink = strings.TrimSpace(v)
	}
	fields = bindSortOrder(r, &row.SortOrder, fields)
	if ferr := bindMedia(r, "image", &row.Image, uploader); ferr != nil {
		fields = append(fields, *ferr)
	}
	if isCreate {
		row.IsActive = true
	}
	return fields
}

func BindService(r *http.Request, row *models.Service, isCreate bool, uploader *helpers.Uploader) []helpers.FieldError {
	var fields []helpers.FieldError

	if v, ok := formValue(r, "title"); ok {
		row.Title = strings.TrimSpace(v)
	}
	if v, ok := formValue(r, "description"); ok {
		row.Description = strings.TrimSpace(v)
	}
	if isCreate {
		if row.Title == "" {
			fields = append(fields, helpers.FieldError{Path: "title", Message: "Title is required."})
		}
		if row.Description == "" {
			fields = append(fields, helpers.FieldError{Path: "description", Message: "Description is required."})
		}
	}
	fields = bindSortOrder(r, &row.SortOrder, fields)
	if ferr := bindMedia(r, "icon", &row.Icon, uploader); ferr != nil {
		fields = append(fields, *ferr)
	}
	if isCreate {
		row.IsActive = true
	}
	return fields
}

func BindTestimonial(r *http.Request, row *models.Testimonial, isCreate bool, uploader *helpers.Uploader) []helpers.FieldError {
	var fields []helpers.FieldError

	if v, ok := formValue(r, "name"); ok {
		row.Name = strings.TrimSpace(v)
	}
	if v, ok := formValue(r, "quote"); ok {
		row.Quote = strings.TrimSpace(v)
	}
	if isCreate {
		if row.Name == "" {
			fields = append(fields, helpers.FieldError{Path: "name", Message: "Name is required."})
		}
		if row.Quote == "" {
			fields = append(fields, helpers.FieldError{Path: "quote", Message: "Quote is required."})
		}
	}
	if v, ok := formValue(r, "location"); ok {
		row.Location = strings.TrimSpace(v)
	}
	fields = bindSortOrder(r, &row.SortOrder, fields)
	if ferr := bindMedia(r, "avatar", &row.Avatar, uploader); ferr != nil {
		fields = append(fields, *ferr)
	}
	if isCreate {
		row.IsActive = true
	}
	return fields
}

func BindVideo(r *http.Request, row *models.Video, isCreate bool, uploader *helpers.Uploader) []helpers.FieldError {
	var fields []helpers.FieldError

	if v, ok := formValue(r, "title"); ok {
		row.Title = strings.TrimSpace(v)
	}
	if isCreate && row.Title == "" {
		fields = append(fields, helpers.FieldError{Path: "title", Message: "Title is required."})
	}

	// A video row without media is useless, so the file is mandatory on
	// create; updates may keep the existing one.
	if isCreate && formFile(r, "video") == nil && row.VideoURL == nil {
		fields = append(fields, helpers.FieldError{Path: "video", Message: "Video file is required."})
	}
	if ferr := bindMedia(r, "video", &row.VideoURL, uploader); ferr != nil {
		fields = append(fields, *ferr)
	}
	if ferr := bindMedia(r, "thumbnail", &row.Thumbnail, uploader); ferr != nil {
		fields = append(fields, *ferr)
	}
	fields = bindSortOrder(r, &row.SortOrder, fields)
	if isCreate {
		row.IsActive = true
	}
	return fields
}

func bindSortOrder(r *http.Request, target *int, fields []helpers.FieldError) []helpers.FieldError {
	v, ok := formValue(r, "sortOrder")
	if !ok {
		return fields
	}
	order, err := strconv.Atoi(v)
	if err != nil {
		return append(fields, helpers.FieldError{Path: "sortOrder", Message: "SortOrder must be numeric."})
	}
	*target = order
	return fields
}
