package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"storecopy-backend/internal/auth"
	"storecopy-backend/internal/models"
	"storecopy-backend/internal/services"
	"storecopy-backend/pkg/httputil"
)

// ProductService defines the interface expected from the product catalog service.
type ProductService interface {
	Create(ctx context.Context, req models.CreateProductRequest, ownerID, storeID uuid.UUID) (*models.ProductResponse, error)
	Get(ctx context.Context, id, ownerID uuid.UUID) (*models.ProductResponse, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]models.ProductResponse, error)
	Update(ctx context.Context, id, ownerID uuid.UUID, req models.UpdateProductRequest) (*models.ProductResponse, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}

type ProductHandler struct {
	productService ProductService
}

func NewProductHandler(productSvc ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productSvc,
	}
}

// HandleCreateProduct handles POST /v1/products
func (h *ProductHandler) HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	ownerID, storeID, ok := ownerAndStoreFromContext(w, r)
	if !ok {
		return
	}

	var req models.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	resp, err := h.productService.Create(r.Context(), req, ownerID, storeID)
	if err != nil {
		log.Printf("ERROR [ProductHandler] HandleCreateProduct for OwnerID %s: %v", ownerID, err)
		var fieldErrs services.FieldErrors
		if errors.As(err, &fieldErrs) {
			httputil.RespondFieldErrors(w, http.StatusBadRequest, fieldErrs)
			return
		}
		httputil.RespondError(w, http.StatusInternalServerError, "Failed to create product")
		return
	}

	httputil.RespondSuccess(w, http.StatusCreated, resp)
}

// HandleListProducts handles GET /v1/products
func (h *ProductHandler) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondError(w, http.StatusUnauthorized, "User ID not found in token context")
		return
	}

	products, err := h.productService.List(r.Context(), ownerID)
	if err != nil {
		log.Printf("ERROR [ProductHandler] HandleListProducts for OwnerID %s: %v", ownerID, err)
		httputil.RespondError(w, http.StatusInternalServerError, "Failed to list products")
		return
	}

	if products == nil {
		products = []models.ProductResponse{}
	}
	httputil.RespondSuccess(w, http.StatusOK, products)
}

// HandleGetProduct handles GET /v1/products/{productID}
func (h *ProductHandler) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondError(w, http.StatusUnauthorized, "User ID not found in token context")
		return
	}

	productID, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	resp, err := h.productService.Get(r.Context(), productID, ownerID)
	if err != nil {
		log.Printf("ERROR [ProductHandler] HandleGetProduct for ID %s, OwnerID %s: %v", productID, ownerID, err)
		if errors.Is(err, services.ErrProductNotFound) {
			httputil.RespondError(w, http.StatusNotFound, err.Error())
		} else {
			httputil.RespondError(w, http.StatusInternalServerError, "Failed to get product")
		}
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, resp)
}

// HandleUpdateProduct handles PUT /v1/products/{productID}
func (h *ProductHandler) HandleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondError(w, http.StatusUnauthorized, "User ID not found in token context")
		return
	}

	productID, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var req models.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	resp, err := h.productService.Update(r.Context(), productID, ownerID, req)
	if err != nil {
		log.Printf("ERROR [ProductHandler] HandleUpdateProduct for ID %s, OwnerID %s: %v", productID, ownerID, err)
		var fieldErrs services.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			httputil.RespondFieldErrors(w, http.StatusBadRequest, fieldErrs)
		case errors.Is(err, services.ErrProductNotFound):
			httputil.RespondError(w, http.StatusNotFound, err.Error())
		default:
			httputil.RespondError(w, http.StatusInternalServerError, "Failed to update product")
		}
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, resp)
}

// HandleDeleteProduct handles DELETE /v1/products/{productID}
func (h *ProductHandler) HandleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondError(w, http.StatusUnauthorized, "User ID not found in token context")
		return
	}

	productID, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	if err := h.productService.Delete(r.Context(), productID, ownerID); err != nil {
		log.Printf("ERROR [ProductHandler] HandleDeleteProduct for ID %s, OwnerID %s: %v", productID, ownerID, err)
		if errors.Is(err, services.ErrProductNotFound) {
			httputil.RespondError(w, http.StatusNotFound, err.Error())
		} else {
			httputil.RespondError(w, http.StatusInternalServerError, "Failed to delete product")
		}
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, map[string]string{"message": "Product deleted"})
}

// ownerAndStoreFromContext pulls both identity claims, responding with an
// auth error when either is missing.
func ownerAndStoreFromContext(w http.ResponseWriter, r *http.Request) (ownerID, storeID uuid.UUID, ok bool) {
	ownerID, ok = auth.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondError(w, http.StatusUnauthorized, "User ID not found in token context")
		return uuid.Nil, uuid.Nil, false
	}
	storeID, ok = auth.GetStoreIDFromContext(r.Context())
	if !ok {
		httputil.RespondError(w, http.StatusUnauthorized, "Store ID not found in token context")
		return uuid.Nil, uuid.Nil, false
	}
	return ownerID, storeID, true
}
