package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/aureliajewels/jewelry-cms/app/helpers"
	"github.com/aureliajewels/jewelry-cms/app/models"
	"github.com/aureliajewels/jewelry-cms/app/repositories"
	"github.com/gorilla/mux"
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	repo     repositories.ProductRepositoryImpl
	uploader *helpers.Uploader
	money    accounting.Accounting
	render   *render.Render
}

// productView adds the display price the storefront renders next to the raw
// decimal.
type productView struct {
	models.Product
	PriceFormatted string `json:"priceFormatted"`
}

func NewProductHandler(repo repositories.ProductRepositoryImpl, uploader *helpers.Uploader, rnd *render.Render) *ProductHandler {
	return &ProductHandler{
		repo:     repo,
		uploader: uploader,
		money:    accounting.Accounting{Symbol: "$", Precision: 2},
		render:   rnd,
	}
}

// PublicList serves the storefront catalog: active products only, paginated,
// optionally narrowed by search term and category.
func (h *ProductHandler) PublicList(w http.ResponseWriter, r *http.Request) {
	page, limit, search := parsePageParams(r)

	products, total, err := h.repo.GetPage(r.Context(), page, limit, search, r.URL.Query().Get("categoryId"), true)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writePage(h.render, w, h.views(products), NewPagination(page, limit, total))
}

func (h *ProductHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	product, err := h.repo.GetBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if product == nil || !product.IsActive {
		writeError(h.render, w, helpers.NewNotFoundError("Product not found"))
		return
	}
	writeData(h.render, w, http.StatusOK, h.view(*product))
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit, search := parsePageParams(r)

	products, total, err := h.repo.GetPage(r.Context(), page, limit, search, r.URL.Query().Get("categoryId"), false)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writePage(h.render, w, h.views(products), NewPagination(page, limit, total))
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.repo.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if product == nil {
		writeError(h.render, w, helpers.NewNotFoundError("Product not found"))
		return
	}
	writeData(h.render, w, http.StatusOK, h.view(*product))
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := parseAnyForm(r); err != nil {
		writeFieldErrors(h.render, w, []helpers.FieldError{{Path: "body", Message: "Failed to parse form payload."}})
		return
	}

	product := &models.Product{IsActive: true}
	if fields := h.bind(r, product, true); len(fields) > 0 {
		writeFieldErrors(h.render, w, fields)
		return
	}

	existing, err := h.repo.GetByCode(r.Context(), product.Code)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if existing != nil {
		writeError(h.render, w, helpers.NewConflictError("Product with this code already exists"))
		return
	}

	product.Slug = helpers.GenerateSlug(product.Name)
	if err := h.repo.Create(r.Context(), product); err != nil {
		writeError(h.render, w, err)
		return
	}
	writeData(h.render, w, http.StatusCreated, h.view(*product))
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	product, err := h.repo.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if product == nil {
		writeError(h.render, w, helpers.NewNotFoundError("Product not found"))
		return
	}

	if err := parseAnyForm(r); err != nil {
		writeFieldErrors(h.render, w, []helpers.FieldError{{Path: "body", Message: "Failed to parse form payload."}})
		return
	}

	previousName := product.Name
	if fields := h.bind(r, product, false); len(fields) > 0 {
		writeFieldErrors(h.render, w, fields)
		return
	}
	if product.Name != previousName {
		product.Slug = helpers.GenerateSlug(product.Name)
	}

	if err := h.repo.Update(r.Context(), product); err != nil {
		writeError(h.render, w, err)
		return
	}
	writeData(h.render, w, http.StatusOK, h.view(*product))
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	product, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if product == nil {
		writeError(h.render, w, helpers.NewNotFoundError("Product not found"))
		return
	}
	if err := h.repo.Delete(r.Context(), id); err != nil {
		writeError(h.render, w, err)
		return
	}
	if product.Image != nil {
		h.uploader.Remove(*product.Image)
	}
	if product.HoverImage != nil {
		h.uploader.Remove(*product.HoverImage)
	}
	writeMessage(h.render, w, http.StatusOK, "Product deleted")
}

func (h *ProductHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	product, err := h.repo.ToggleActive(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if product == nil {
		writeError(h.render, w, helpers.NewNotFoundError("Product not found"))
		return
	}
	writeData(h.render, w, http.StatusOK, h.view(*product))
}

func (h *ProductHandler) bind(r *http.Request, product *models.Product, isCreate bool) []helpers.FieldError {
	var fields []helpers.FieldError

	if v, ok := formValue(r, "name"); ok {
		product.Name = strings.TrimSpace(v)
	}
	if isCreate && product.Name == "" {
		fields = append(fields, helpers.FieldError{Path: "name", Message: "Name is required."})
	}
	if v, ok := formValue(r, "code"); ok {
		product.Code = strings.ToUpper(strings.TrimSpace(v))
	}
	if isCreate && product.Code == "" {
		fields = append(fields, helpers.FieldError{Path: "code", Message: "Code is required."})
	}
	if v, ok := formValue(r, "description"); ok {
		product.Description = strings.TrimSpace(v)
	}
	if v, ok := formValue(r, "categoryId"); ok {
		product.CategoryID = strings.TrimSpace(v)
	}

	if v, ok := formValue(r, "price"); ok {
		price, err := decimal.NewFromString(v)
		if err != nil || price.IsNegative() {
			fields = append(fields, helpers.FieldError{Path: "price", Message: "Price must be a non-negative number."})
		} else {
			product.Price = price
		}
	} else if isCreate {
		fields = append(fields, helpers.FieldError{Path: "price", Message: "Price is required."})
	}

	if v, ok := formValue(r, "stock"); ok {
		stock, err := strconv.Atoi(v)
		if err != nil || stock < 0 {
			fields = append(fields, helpers.FieldError{Path: "stock", Message: "Stock must be a non-negative integer."})
		} else {
			product.Stock = stock
		}
	}
	if v, ok := formValue(r, "goldKarat"); ok {
		karat, err := strconv.Atoi(v)
		if err != nil || karat < 0 || karat > 24 {
			fields = append(fields, helpers.FieldError{Path: "goldKarat", Message: "GoldKarat must be between 0 and 24."})
		} else {
			product.GoldKarat = karat
		}
	}
	if v, ok := formValue(r, "goldWeight"); ok {
		weight, err := decimal.NewFromString(v)
		if err != nil || weight.IsNegative() {
			fields = append(fields, helpers.FieldError{Path: "goldWeight", Message: "GoldWeight must be a non-negative number."})
		} else {
			product.GoldWeight = weight
		}
	}
	if v, ok := formValue(r, "diamondCarat"); ok {
		carat, err := decimal.NewFromString(v)
		if err != nil || carat.IsNegative() {
			fields = append(fields, helpers.FieldError{Path: "diamondCarat", Message: "DiamondCarat must be a non-negative number."})
		} else {
			product.DiamondCarat = carat
		}
	}

	if ferr := bindMedia(r, "image", &product.Image, h.uploader); ferr != nil {
		fields = append(fields, *ferr)
	}
	if ferr := bindMedia(r, "hoverImage", &product.HoverImage, h.uploader); ferr != nil {
		fields = append(fields, *ferr)
	}
	return fields
}

func (h *ProductHandler) view(product models.Product) productView {
	return productView{
		Product:        product,
		PriceFormatted: h.money.FormatMoneyDecimal(product.Price),
	}
}

func (h *ProductHandler) views(products []models.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, product := range products {
		views = append(views, h.view(product))
	}
	return views
}
