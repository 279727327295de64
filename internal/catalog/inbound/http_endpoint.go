package inbound

import (
	"github.com/samber/lo"
	"github.com/storemvp/storemvp/internal/catalog/entity"
	"github.com/storemvp/storemvp/internal/catalog/usecase"
	"github.com/storemvp/storemvp/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the product catalog.
type HTTPEndpoint struct {
	uc uc
}

// ProductList returns all products. An empty catalog yields an empty array.
func (h *HTTPEndpoint) ProductList(r *router.Request) (any, error) {
	products, err := h.uc.ProductList(r.Context())
	if err != nil {
		return nil, err
	}

	return lo.Map(products, func(p entity.Product, _ int) ProductResponse {
		return toProductResponse(p)
	}), nil
}

// ProductDetail returns a single product by id.
func (h *HTTPEndpoint) ProductDetail(r *router.Request) (any, error) {
	product, err := h.uc.ProductDetail(r.Context(), r.GetParam("id"))
	if err != nil {
		return nil, err
	}

	return toProductResponse(*product), nil
}

// ProductCreate stores a new product and answers 201 with a Location header.
func (h *HTTPEndpoint) ProductCreate(r *router.Request) (any, error) {
	var req ProductRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	product, err := h.uc.ProductCreate(r.Context(), usecase.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		return nil, err
	}

	return productCreatedResponse{
		ProductResponse: toProductResponse(*product),
		location:        "/api/v1/products/" + product.ID,
	}, nil
}

// ProductUpdate replaces a product's writable fields and answers 204.
func (h *HTTPEndpoint) ProductUpdate(r *router.Request) (any, error) {
	var req ProductRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	err := h.uc.ProductUpdate(r.Context(), r.GetParam("id"), usecase.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		return nil, err
	}

	return nil, nil
}

// ProductDelete removes a product and answers 204.
func (h *HTTPEndpoint) ProductDelete(r *router.Request) (any, error) {
	if err := h.uc.ProductDelete(r.Context(), r.GetParam("id")); err != nil {
		return nil, err
	}

	return nil, nil
}
