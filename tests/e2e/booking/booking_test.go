//go:build e2e

package booking_test

import (
	"net/http"
	"testing"
	"time"

	"lendit/internal/domain/booking"
	reqdto "lendit/internal/handler/dto/request"
	resdto "lendit/internal/handler/dto/response"
	"lendit/tests/common/builder"
	"lendit/tests/common/dbtest"
	"lendit/tests/common/httptest"
	"lendit/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	usersURL    = "/users"
	itemsURL    = "/items"
	bookingsURL = "/bookings"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// createUser registers a user through the public API and returns its ID.
func (s *BookingSuite) createUser(name, email string) uuid.UUID {
	t := s.T()

	reqBody := builder.NewUserBuilder().WithName(name).WithEmail(email).BuildCreateRequestDTO()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, usersURL, reqBody, "")
	require.Equal(t, http.StatusCreated, w.Code, "user creation failed: %s", w.Body.String())

	var created resdto.UserResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created.ID
}

// createItem registers an item owned by ownerID and returns its ID.
func (s *BookingSuite) createItem(ownerID uuid.UUID, name string, available bool) uuid.UUID {
	t := s.T()

	reqBody := builder.NewItemBuilder().
		WithName(name).
		WithDescription(name + " for lending").
		WithAvailable(available).
		BuildCreateRequestDTO()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, itemsURL, reqBody, ownerID.String())
	require.Equal(t, http.StatusCreated, w.Code, "item creation failed: %s", w.Body.String())

	var created resdto.ItemResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created.ID
}

// =============================================================================
// TestBookingLifecycle - create, decide, list
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("Normal case: renter books, owner approves", func() {
		t := s.T()

		ownerID := s.createUser("Olga Owner", "olga@example.com")
		renterID := s.createUser("Rita Renter", "rita@example.com")
		itemID := s.createItem(ownerID, "Cordless drill", true)

		start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
		end := start.Add(48 * time.Hour)
		reqBody := reqdto.CreateBookingRequest{ItemID: itemID, Start: start, End: end}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, renterID.String())
		require.Equal(t, http.StatusCreated, w.Code, "booking creation failed: %s", w.Body.String())

		var created resdto.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		expected := &resdto.BookingResponse{
			ItemID:     itemID,
			ItemName:   "Cordless drill",
			RenterID:   renterID,
			RenterName: "Rita Renter",
			Status:     booking.StatusWaiting.String(),
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(resdto.BookingResponse{}, "ID", "Start", "End", "CreatedAt"),
		}
		if diff := cmp.Diff(expected, &created, opts...); diff != "" {
			t.Errorf("booking response mismatch (-want +got):\n%s", diff)
		}
		require.True(t, created.Start.Equal(start))
		require.True(t, created.End.Equal(end))

		// Owner approves.
		decideURL := bookingsURL + "/" + created.ID.String() + "?approved=true"
		dw := httptest.PerformRequest(t, s.Router, http.MethodPatch, decideURL, nil, ownerID.String())
		require.Equal(t, http.StatusOK, dw.Code, "approval failed: %s", dw.Body.String())

		var decided resdto.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &decided))
		require.Equal(t, booking.StatusApproved.String(), decided.Status)

		// The renter sees the booking in their own list.
		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, renterID.String())
		require.Equal(t, http.StatusOK, lw.Code)
		var own []resdto.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &own))
		require.Len(t, own, 1)
		require.Equal(t, created.ID, own[0].ID)

		// The owner sees it through the ownership listing, filtered by status.
		ow := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/owner?status=APPROVED", nil, ownerID.String())
		require.Equal(t, http.StatusOK, ow.Code)
		var onOwned []resdto.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, ow.Body, &onOwned))
		require.Len(t, onOwned, 1)
	})

	s.Run("Normal case: a decision may be flipped", func() {
		t := s.T()

		ownerID := s.createUser("Olga Owner", "olga@example.com")
		renterID := s.createUser("Rita Renter", "rita@example.com")
		itemID := s.createItem(ownerID, "Tile cutter", true)

		start := time.Now().Add(24 * time.Hour)
		bookingID := dbtest.CreateTestBooking(t, s.DB, itemID, renterID, start, start.Add(24*time.Hour), "APPROVED")

		rejectURL := bookingsURL + "/" + bookingID.String() + "?approved=false"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, rejectURL, nil, ownerID.String())
		require.Equal(t, http.StatusOK, w.Code, "flip failed: %s", w.Body.String())

		var decided resdto.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &decided))
		require.Equal(t, booking.StatusRejected.String(), decided.Status)
	})

	s.Run("Error case: non-owner cannot decide", func() {
		t := s.T()

		ownerID := s.createUser("Olga Owner", "olga@example.com")
		renterID := s.createUser("Rita Renter", "rita@example.com")
		itemID := s.createItem(ownerID, "Ladder", true)

		start := time.Now().Add(24 * time.Hour)
		bookingID := dbtest.CreateTestBooking(t, s.DB, itemID, renterID, start, start.Add(24*time.Hour), "WAITING")

		// The renter themselves is refused like any other non-owner.
		decideURL := bookingsURL + "/" + bookingID.String() + "?approved=true"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, decideURL, nil, renterID.String())
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Error case: booking an unavailable item fails", func() {
		t := s.T()

		ownerID := s.createUser("Olga Owner", "olga@example.com")
		renterID := s.createUser("Rita Renter", "rita@example.com")
		itemID := s.createItem(ownerID, "Broken sander", false)

		start := time.Now().Add(24 * time.Hour)
		reqBody := reqdto.CreateBookingRequest{ItemID: itemID, Start: start, End: start.Add(24 * time.Hour)}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, renterID.String())
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Error case: booking window in the past fails", func() {
		t := s.T()

		ownerID := s.createUser("Olga Owner", "olga@example.com")
		renterID := s.createUser("Rita Renter", "rita@example.com")
		itemID := s.createItem(ownerID, "Pressure washer", true)

		start := time.Now().Add(-48 * time.Hour)
		reqBody := reqdto.CreateBookingRequest{ItemID: itemID, Start: start, End: start.Add(24 * time.Hour)}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, renterID.String())
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Error case: unknown acting user is rejected by the identity check", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, uuid.New().String())
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// TestCommentEligibility - comments gated by booking history
// =============================================================================

func (s *BookingSuite) TestCommentEligibility() {
	s.Run("Normal case: renter with an ended booking can comment", func() {
		t := s.T()

		ownerID := s.createUser("Olga Owner", "olga@example.com")
		renterID := s.createUser("Rita Renter", "rita@example.com")
		itemID := s.createItem(ownerID, "Cordless drill", true)

		now := time.Now()
		dbtest.CreateTestBooking(t, s.DB, itemID, renterID, now.Add(-48*time.Hour), now.Add(-24*time.Hour), "APPROVED")

		commentURL := itemsURL + "/" + itemID.String() + "/comment"
		reqBody := reqdto.CreateCommentRequest{Text: "Worked great, thanks!"}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, commentURL, reqBody, renterID.String())
		require.Equal(t, http.StatusCreated, w.Code, "comment failed: %s", w.Body.String())

		var created resdto.CommentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, "Worked great, thanks!", created.Text)
		require.Equal(t, "Rita Renter", created.AuthorName)

		// The comment shows up on the item page.
		iw := httptest.PerformRequest(t, s.Router, http.MethodGet, itemsURL+"/"+itemID.String(), nil, ownerID.String())
		require.Equal(t, http.StatusOK, iw.Code)
		var detail resdto.ItemDetailResponse
		require.NoError(t, httptest.DecodeResponseBody(t, iw.Body, &detail))
		require.Len(t, detail.Comments, 1)
	})

	s.Run("Normal case: even a rejected but ended booking grants comment rights", func() {
		t := s.T()

		ownerID := s.createUser("Olga Owner", "olga@example.com")
		renterID := s.createUser("Rita Renter", "rita@example.com")
		itemID := s.createItem(ownerID, "Hedge trimmer", true)

		now := time.Now()
		dbtest.CreateTestBooking(t, s.DB, itemID, renterID, now.Add(-48*time.Hour), now.Add(-24*time.Hour), "REJECTED")

		commentURL := itemsURL + "/" + itemID.String() + "/comment"
		reqBody := reqdto.CreateCommentRequest{Text: "Never got to use it, sadly"}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, commentURL, reqBody, renterID.String())
		require.Equal(t, http.StatusCreated, w.Code, "comment failed: %s", w.Body.String())
	})

	s.Run("Error case: commenting without a past booking fails", func() {
		t := s.T()

		ownerID := s.createUser("Olga Owner", "olga@example.com")
		strangerID := s.createUser("Sam Stranger", "sam@example.com")
		itemID := s.createItem(ownerID, "Cordless drill", true)

		commentURL := itemsURL + "/" + itemID.String() + "/comment"
		reqBody := reqdto.CreateCommentRequest{Text: "Looks nice"}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, commentURL, reqBody, strangerID.String())
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Error case: a booking that has not ended yet does not qualify", func() {
		t := s.T()

		ownerID := s.createUser("Olga Owner", "olga@example.com")
		renterID := s.createUser("Rita Renter", "rita@example.com")
		itemID := s.createItem(ownerID, "Cordless drill", true)

		now := time.Now()
		dbtest.CreateTestBooking(t, s.DB, itemID, renterID, now.Add(-time.Hour), now.Add(time.Hour), "APPROVED")

		commentURL := itemsURL + "/" + itemID.String() + "/comment"
		reqBody := reqdto.CreateCommentRequest{Text: "Still using it"}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, commentURL, reqBody, renterID.String())
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// TestItemPageBookingBoundaries - last/next approved bookings on the item page
// =============================================================================

func (s *BookingSuite) TestItemPageBookingBoundaries() {
	s.Run("Normal case: item page shows last and next approved bookings", func() {
		t := s.T()

		ownerID := s.createUser("Olga Owner", "olga@example.com")
		renterID := s.createUser("Rita Renter", "rita@example.com")
		itemID := s.createItem(ownerID, "Cordless drill", true)

		now := time.Now()
		dbtest.CreateTestBooking(t, s.DB, itemID, renterID, now.Add(-72*time.Hour), now.Add(-48*time.Hour), "APPROVED")
		dbtest.CreateTestBooking(t, s.DB, itemID, renterID, now.Add(24*time.Hour), now.Add(48*time.Hour), "APPROVED")
		// A waiting booking never contributes boundaries.
		dbtest.CreateTestBooking(t, s.DB, itemID, renterID, now.Add(72*time.Hour), now.Add(96*time.Hour), "WAITING")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, itemsURL+"/"+itemID.String(), nil, ownerID.String())
		require.Equal(t, http.StatusOK, w.Code)

		var detail resdto.ItemDetailResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &detail))
		require.NotNil(t, detail.LastBooking, "expected a last booking boundary")
		require.NotNil(t, detail.NextBooking, "expected a next booking boundary")
		require.True(t, detail.LastBooking.Before(time.Now()))
		require.True(t, detail.NextBooking.After(time.Now()))
	})

	s.Run("Normal case: no approved bookings leaves the boundaries empty", func() {
		t := s.T()

		ownerID := s.createUser("Olga Owner", "olga@example.com")
		itemID := s.createItem(ownerID, "Cordless drill", true)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, itemsURL+"/"+itemID.String(), nil, ownerID.String())
		require.Equal(t, http.StatusOK, w.Code)

		var detail resdto.ItemDetailResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &detail))
		require.Nil(t, detail.LastBooking)
		require.Nil(t, detail.NextBooking)
	})
}

// =============================================================================
// TestSearch - available-item substring search
// =============================================================================

func (s *BookingSuite) TestSearch() {
	s.Run("Normal case: search matches name and description case-insensitively", func() {
		t := s.T()

		ownerID := s.createUser("Olga Owner", "olga@example.com")
		s.createItem(ownerID, "Cordless DRILL", true)
		s.createItem(ownerID, "Hammer", true)
		s.createItem(ownerID, "Drill press", false) // unavailable, never matches

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, itemsURL+"/search?text=drill", nil, ownerID.String())
		require.Equal(t, http.StatusOK, w.Code)

		var results []resdto.ItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &results))
		require.Len(t, results, 1)
		require.Equal(t, "Cordless DRILL", results[0].Name)
	})

	s.Run("Normal case: blank search text yields an empty list", func() {
		t := s.T()

		ownerID := s.createUser("Olga Owner", "olga@example.com")
		s.createItem(ownerID, "Cordless drill", true)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, itemsURL+"/search?text=", nil, ownerID.String())
		require.Equal(t, http.StatusOK, w.Code)

		var results []resdto.ItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &results))
		require.Empty(t, results)
	})
}
