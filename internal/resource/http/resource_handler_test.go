package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/campus/internal/auth/domain"
	authHTTP "github.com/allisson/campus/internal/auth/http"
	"github.com/allisson/campus/internal/resource/domain"
	usecaseMocks "github.com/allisson/campus/internal/resource/usecase/mocks"
	"github.com/allisson/campus/internal/testutil"
)

func setupRouter(t *testing.T) (*gin.Engine, *usecaseMocks.MockUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := testutil.NewLogger()
	resolver := authHTTP.NewSessionResolver(testutil.NewTokenCodec(t), nil, "sc_token", logger)
	useCase := &usecaseMocks.MockUseCase{}

	router := gin.New()
	RegisterRoutes(router.Group("/api/resources"), NewResourceHandler(useCase, logger),
		authHTTP.NewGuard(resolver, nil, logger))
	return router, useCase
}

func TestResourceHandler_List(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		filter domain.ListFilter
	}{
		{name: "All", path: "/api/resources", filter: domain.ListFilter{}},
		{name: "QueryParams", path: "/api/resources?category=physics&q=waves", filter: domain.ListFilter{Category: "physics", Query: "waves"}},
		{name: "Category", path: "/api/resources/category/mathematics", filter: domain.ListFilter{Category: "mathematics"}},
		{name: "Search", path: "/api/resources/search/calculus", filter: domain.ListFilter{Query: "calculus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, useCase := setupRouter(t)
			useCase.On("List", mock.Anything, tt.filter).
				Return([]*domain.Resource{{ID: uuid.Must(uuid.NewV7())}}, nil).Once()

			w := testutil.Serve(router, testutil.JSONRequest(t, http.MethodGet, tt.path, nil))

			require.Equal(t, http.StatusOK, w.Code)
			assert.Len(t, testutil.DecodeBody(t, w)["resources"], 1)
			useCase.AssertExpectations(t)
		})
	}
}

func TestResourceHandler_Create(t *testing.T) {
	t.Run("StudentForbidden", func(t *testing.T) {
		router, _ := setupRouter(t)
		body := map[string]any{"title": "Notes"}

		w := testutil.Serve(router, testutil.As(t,
			testutil.JSONRequest(t, http.MethodPost, "/api/resources", body),
			testutil.NewPrincipal(t, authDomain.RoleStudent)))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("MissingTitle", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := testutil.Serve(router, testutil.As(t,
			testutil.JSONRequest(t, http.MethodPost, "/api/resources", map[string]any{"description": "d"}),
			testutil.NewPrincipal(t, authDomain.RoleFaculty)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "title required", testutil.ErrorMessage(t, w))
	})

	t.Run("Created", func(t *testing.T) {
		router, useCase := setupRouter(t)
		faculty := testutil.NewPrincipal(t, authDomain.RoleFaculty)
		body := map[string]any{"title": "Notes", "file_url": "https://files.klh.edu/n.pdf", "file_size": 1024}
		useCase.On("Create", mock.Anything, faculty.ID(), mock.MatchedBy(func(in *domain.CreateResourceInput) bool {
			return in.FileSize != nil && *in.FileSize == 1024
		})).Return(&domain.Resource{ID: uuid.Must(uuid.NewV7()), Title: "Notes"}, nil).Once()

		w := testutil.Serve(router, testutil.As(t,
			testutil.JSONRequest(t, http.MethodPost, "/api/resources", body), faculty))

		assert.Equal(t, http.StatusOK, w.Code)
		useCase.AssertExpectations(t)
	})
}

func TestResourceHandler_Download(t *testing.T) {
	t.Run("Anonymous", func(t *testing.T) {
		router, useCase := setupRouter(t)
		id := uuid.Must(uuid.NewV7())
		useCase.On("Download", mock.Anything, id).
			Return(&domain.Resource{ID: id, FileURL: "https://files.klh.edu/n.pdf", DownloadCount: 3}, nil).Once()

		w := testutil.Serve(router, testutil.JSONRequest(t, http.MethodPost, "/api/resources/"+id.String()+"/download", nil))

		require.Equal(t, http.StatusOK, w.Code)
		body := testutil.DecodeBody(t, w)
		assert.Equal(t, true, body["ok"])
		assert.Equal(t, "https://files.klh.edu/n.pdf", body["file_url"])
		assert.Equal(t, float64(3), body["download_count"])
	})

	t.Run("NotFound", func(t *testing.T) {
		router, useCase := setupRouter(t)
		id := uuid.Must(uuid.NewV7())
		useCase.On("Download", mock.Anything, id).Return(nil, domain.ErrResourceNotFound).Once()

		w := testutil.Serve(router, testutil.JSONRequest(t, http.MethodPost, "/api/resources/"+id.String()+"/download", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "resource not found", testutil.ErrorMessage(t, w))
	})
}

func TestResourceHandler_Delete_BadID(t *testing.T) {
	router, _ := setupRouter(t)

	w := testutil.Serve(router, testutil.As(t,
		testutil.JSONRequest(t, http.MethodDelete, "/api/resources/abc", nil),
		testutil.NewPrincipal(t, authDomain.RoleAdmin)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid id", testutil.ErrorMessage(t, w))
}
