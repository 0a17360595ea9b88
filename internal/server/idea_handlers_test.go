package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"batshit/internal/config"
	"batshit/internal/models"
	"batshit/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestApp builds a fiber app that injects the given user ID the way
// AuthRequired would, so handlers can be tested without a real token.
func newTestApp(userID uint) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	})
	return app
}

func newIdeaTestServer(ideas *MockIdeaRepository, stats *MockStatsRepository) *Server {
	return &Server{
		config:      &config.Config{JWTSecret: "test_secret"},
		ideaRepo:    ideas,
		statsRepo:   stats,
		ideaService: service.NewIdeaService(ideas, stats),
	}
}

func TestCreateIdeaHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]any
		mockSetup      func(ideas *MockIdeaRepository, stats *MockStatsRepository)
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]any{
				"text":     "what if umbrellas had headlights",
				"category": "technology",
			},
			mockSetup: func(ideas *MockIdeaRepository, stats *MockStatsRepository) {
				ideas.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
					args.Get(1).(*models.Idea).ID = 9
				}).Return(nil)
				ideas.On("GetByID", mock.Anything, uint(9)).Return(
					&models.Idea{ID: 9, Text: "what if umbrellas had headlights", Category: models.CategoryTechnology}, nil)
				stats.On("IncrementIdeasSubmitted", mock.Anything, uint(1)).Return(nil)
				stats.On("GetOrCreate", mock.Anything, uint(1)).Return(&models.UserStats{UserID: 1, IdeasSubmitted: 1}, nil)
				stats.On("Save", mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Nine Characters Rejected",
			body: map[string]any{
				"text":     "123456789",
				"category": "other",
			},
			mockSetup:      func(*MockIdeaRepository, *MockStatsRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Ten Characters Accepted",
			body: map[string]any{
				"text":     "1234567890",
				"category": "other",
			},
			mockSetup: func(ideas *MockIdeaRepository, stats *MockStatsRepository) {
				ideas.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
					args.Get(1).(*models.Idea).ID = 10
				}).Return(nil)
				ideas.On("GetByID", mock.Anything, uint(10)).Return(
					&models.Idea{ID: 10, Text: "1234567890", Category: models.CategoryOther}, nil)
				stats.On("IncrementIdeasSubmitted", mock.Anything, uint(1)).Return(nil)
				stats.On("GetOrCreate", mock.Anything, uint(1)).Return(&models.UserStats{UserID: 1}, nil)
				stats.On("Save", mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Over Max Length",
			body: map[string]any{
				"text":     strings.Repeat("x", 1001),
				"category": "other",
			},
			mockSetup:      func(*MockIdeaRepository, *MockStatsRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Unknown Category",
			body: map[string]any{
				"text":     "a perfectly reasonable idea",
				"category": "sports",
			},
			mockSetup:      func(*MockIdeaRepository, *MockStatsRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ideas := new(MockIdeaRepository)
			stats := new(MockStatsRepository)
			tt.mockSetup(ideas, stats)

			s := newIdeaTestServer(ideas, stats)
			app := newTestApp(1)
			app.Post("/ideas", s.CreateIdea)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/ideas", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestGetIdeasHandler(t *testing.T) {
	ideas := new(MockIdeaRepository)
	ideas.On("List", mock.Anything, "trending", 20, 0).Return([]models.Idea{
		{ID: 1, Text: "first", RatingCount: 9},
		{ID: 2, Text: "second", RatingCount: 4},
	}, nil)

	s := newIdeaTestServer(ideas, new(MockStatsRepository))
	app := fiber.New()
	app.Get("/ideas", s.GetIdeas)

	req := httptest.NewRequest(http.MethodGet, "/ideas?filter=trending", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Ideas  []models.Idea `json:"ideas"`
		Limit  int           `json:"limit"`
		Offset int           `json:"offset"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Len(t, payload.Ideas, 2)
	assert.Equal(t, 20, payload.Limit)
}

func TestGetIdeaHandlerInvalidID(t *testing.T) {
	s := newIdeaTestServer(new(MockIdeaRepository), new(MockStatsRepository))
	app := fiber.New()
	app.Get("/ideas/:id", s.GetIdea)

	for _, path := range []string{"/ideas/0", "/ideas/-1", "/ideas/abc"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "path %s", path)
		_ = resp.Body.Close()
	}
}

func TestGetIdeaHandlerNotFound(t *testing.T) {
	ideas := new(MockIdeaRepository)
	ideas.On("GetByID", mock.Anything, uint(404)).Return(nil, models.NewNotFoundError("Idea", 404))

	s := newIdeaTestServer(ideas, new(MockStatsRepository))
	app := fiber.New()
	app.Get("/ideas/:id", s.GetIdea)

	req := httptest.NewRequest(http.MethodGet, "/ideas/404", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
