package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elite-commerce/catalog-service/internal/pkg/apperrors"
	"github.com/elite-commerce/catalog-service/internal/product/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// stubUseCase records image deletions; everything else is inert.
type stubUseCase struct {
	deletedImageID string
	deleteImageErr error
}

func (s *stubUseCase) CreateProduct(context.Context, *dto.UpsertProductInput, string) (*dto.ProductResponse, error) {
	return nil, nil
}
func (s *stubUseCase) UpdateProduct(context.Context, string, *dto.UpsertProductInput, string) (*dto.ProductResponse, error) {
	return nil, nil
}
func (s *stubUseCase) DeleteProduct(context.Context, string) error { return nil }
func (s *stubUseCase) GetProductByID(context.Context, string) (*dto.ProductResponse, error) {
	return nil, nil
}
func (s *stubUseCase) GetProductBySlug(context.Context, string) (*dto.ProductResponse, error) {
	return nil, nil
}
func (s *stubUseCase) GetProducts(context.Context, *dto.ProductFilterRequest) (*dto.PagedResult[dto.ProductListResponse], error) {
	return nil, nil
}
func (s *stubUseCase) GetFeaturedProducts(context.Context, int) ([]dto.ProductListResponse, error) {
	return nil, nil
}
func (s *stubUseCase) CreateVariant(context.Context, *dto.UpsertVariantInput) (*dto.ProductVariantDTO, error) {
	return nil, nil
}
func (s *stubUseCase) UpdateVariant(context.Context, string, *dto.UpsertVariantInput) (*dto.ProductVariantDTO, error) {
	return nil, nil
}
func (s *stubUseCase) DeleteVariant(context.Context, string) error { return nil }
func (s *stubUseCase) GetVariantByID(context.Context, string) (*dto.ProductVariantDTO, error) {
	return nil, nil
}
func (s *stubUseCase) GetVariantsByProductID(context.Context, string) ([]dto.ProductVariantDTO, error) {
	return nil, nil
}
func (s *stubUseCase) UploadProductImages(context.Context, string, []string) error { return nil }
func (s *stubUseCase) DeleteProductImage(_ context.Context, imageID string) error {
	if s.deleteImageErr != nil {
		return s.deleteImageErr
	}
	s.deletedImageID = imageID
	return nil
}
func (s *stubUseCase) SetMainImage(context.Context, string, string) error { return nil }
func (s *stubUseCase) UpdateStock(context.Context, string, int) error     { return nil }
func (s *stubUseCase) GetLowStockVariants(context.Context) ([]dto.ProductVariantDTO, error) {
	return nil, nil
}
func (s *stubUseCase) ToggleFeatured(context.Context, string) error { return nil }
func (s *stubUseCase) ToggleActive(context.Context, string) error   { return nil }

func newTestRouter(stub *stubUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(stub, zap.NewNop()).RegisterRoutes(r)
	return r
}

func TestDeleteImageRoute(t *testing.T) {
	stub := &stubUseCase{}
	router := newTestRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/products/images/img-42", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", w.Code)
	}
	if stub.deletedImageID != "img-42" {
		t.Errorf("deleted image id = %q, want img-42", stub.deletedImageID)
	}
}

func TestDeleteImageRouteNotFound(t *testing.T) {
	stub := &stubUseCase{deleteImageErr: apperrors.NotFound("Image not found")}
	router := newTestRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/products/images/missing", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
