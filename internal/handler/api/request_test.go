//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"lendit/internal/domain/request"
	"lendit/internal/handler/api"
	resdto "lendit/internal/handler/dto/response"
	"lendit/internal/usecase/commands"
	"lendit/internal/usecase/queries"
	"lendit/tests/common/builder"
	"lendit/tests/common/httptest"
	"lendit/tests/common/testutil"
	commandsmock "lendit/tests/mock/commands"
	queriesmock "lendit/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ItemRequestHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockItemRequestCommands
	mockQueries  *queriesmock.MockItemRequestQueries
	handler      *api.ItemRequestHandler
	sharerID     uuid.UUID
}

func (s *ItemRequestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockItemRequestCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockItemRequestQueries(s.mockCtrl)
	s.handler = api.NewItemRequestHandler(s.mockCommands, s.mockQueries)
	s.sharerID = uuid.New()

	// Mock identity middleware for testing
	identityMiddleware := func(c *gin.Context) {
		raw := c.GetHeader(httptest.SharerHeader)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "X-Sharer-User-Id header required"})
			return
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid X-Sharer-User-Id header"})
			return
		}
		c.Set("user_id", id)
		c.Next()
	}

	s.router.POST("/requests", identityMiddleware, s.handler.CreateItemRequest)
	s.router.GET("/requests", identityMiddleware, s.handler.ListOwnItemRequests)
	s.router.GET("/requests/:id", identityMiddleware, s.handler.GetItemRequest)
}

func (s *ItemRequestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestItemRequestHandlerSuite(t *testing.T) {
	suite.Run(t, new(ItemRequestHandlerTestSuite))
}

// ================================================================================
// TestCreateItemRequest
// ================================================================================

func (s *ItemRequestHandlerTestSuite) TestCreateItemRequest() {
	url := "/requests"

	b := builder.NewItemRequestBuilder().WithRequesterID(uuid.New())
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success: returns 201 Created with ItemRequestResponse", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), commands.CreateItemRequestParams{Description: b.Description}, s.sharerID).
			Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.sharerID.String())

		var response resdto.ItemRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(b.Description, response.Description)
	})

	s.Run("error: 400 Bad Request when description is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("description", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, s.sharerID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 Bad Request when the header is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "header required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown requester",
				commandsError:  commands.ErrUserNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "User not found",
			},
			{
				name:           "blank description",
				commandsError:  request.ErrBlankDescription,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "must not be blank",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.sharerID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.sharerID.String())
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetItemRequest
// ================================================================================

func (s *ItemRequestHandlerTestSuite) TestGetItemRequest() {
	b := builder.NewItemRequestBuilder()
	url := "/requests/" + b.ID.String()

	s.Run("success: returns 200 OK with ItemRequestResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).
			Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.sharerID.String())

		var response resdto.ItemRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(b.ID, response.ID)
		s.Equal(b.RequesterID, response.RequesterID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests/invalid-uuid", nil, s.sharerID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request ID")
	})

	s.Run("error: 404 Not Found for missing request", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).
			Return(nil, queries.ErrRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.sharerID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Item request not found")
	})
}

// ================================================================================
// TestListOwnItemRequests
// ================================================================================

func (s *ItemRequestHandlerTestSuite) TestListOwnItemRequests() {
	url := "/requests"

	s.Run("success: returns the acting user's requests newest first", func() {
		views := []*queries.ItemRequestView{
			builder.NewItemRequestBuilder().WithRequesterID(s.sharerID).BuildView(),
			builder.NewItemRequestBuilder().WithRequesterID(s.sharerID).BuildView(),
		}
		s.mockQueries.EXPECT().ListByRequester(gomock.Any(), s.sharerID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.sharerID.String())

		var response []resdto.ItemRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: empty history yields an empty array", func() {
		s.mockQueries.EXPECT().ListByRequester(gomock.Any(), s.sharerID).
			Return([]*queries.ItemRequestView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.sharerID.String())

		var response []resdto.ItemRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 500 when the read store fails", func() {
		s.mockQueries.EXPECT().ListByRequester(gomock.Any(), s.sharerID).
			Return(nil, errors.New("read store down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.sharerID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
