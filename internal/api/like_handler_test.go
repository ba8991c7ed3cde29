package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"geniuses-backend-go/internal/core"
	"geniuses-backend-go/internal/models"
)

func newLikeRouter(uid string, ls *stubLikeService) *gin.Engine {
	handler := NewLikeHandler(ls, zap.NewNop())
	return newTestRouter(uid, func(r *gin.Engine) {
		r.POST("/likes/toggle", handler.ToggleLike)
		r.GET("/likes", handler.GetLikedListings)
	})
}

func TestToggleLikeEndpoint(t *testing.T) {
	body := `{"profileId":"owner1","listingId":"biz-1"}`

	t.Run("success", func(t *testing.T) {
		ls := &stubLikeService{toggleResult: &models.ToggleLikeResult{Success: true, IsLiked: true}}
		w := doRequest(newLikeRouter("memberA", ls), http.MethodPost, "/likes/toggle", body)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var result models.ToggleLikeResult
		if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
			t.Fatalf("invalid JSON body: %v", err)
		}
		if !result.Success || !result.IsLiked {
			t.Errorf("result = %+v, want Success and IsLiked", result)
		}
	})

	t.Run("unauthenticated degradation", func(t *testing.T) {
		ls := &stubLikeService{toggleResult: &models.ToggleLikeResult{Success: false, Error: "authentication required"}}
		w := doRequest(newLikeRouter("", ls), http.MethodPost, "/likes/toggle", body)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
	})

	t.Run("store failure answers with the result body", func(t *testing.T) {
		ls := &stubLikeService{
			toggleResult: &models.ToggleLikeResult{Success: false, Error: "failed to write like-set"},
			toggleErr:    errors.New("firestore down"),
		}
		w := doRequest(newLikeRouter("memberA", ls), http.MethodPost, "/likes/toggle", body)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("status = %d, want 502", w.Code)
		}
		var result models.ToggleLikeResult
		if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
			t.Fatalf("invalid JSON body: %v", err)
		}
		if result.Success || result.Error == "" {
			t.Errorf("result = %+v, want failed result with message", result)
		}
	})

	t.Run("deleted listing is 404", func(t *testing.T) {
		ls := &stubLikeService{
			toggleResult: &models.ToggleLikeResult{Success: false, Error: "listing not found"},
			toggleErr:    fmt.Errorf("failed to update listing likes: %w", core.ErrListingNotFound),
		}
		w := doRequest(newLikeRouter("memberA", ls), http.MethodPost, "/likes/toggle", body)
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
	})

	t.Run("deleted profile is 404", func(t *testing.T) {
		ls := &stubLikeService{
			toggleResult: &models.ToggleLikeResult{Success: false, Error: "profile not found"},
			toggleErr:    fmt.Errorf("failed to update listing likes: %w", core.ErrProfileNotFound),
		}
		w := doRequest(newLikeRouter("memberA", ls), http.MethodPost, "/likes/toggle", body)
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		ls := &stubLikeService{}
		w := doRequest(newLikeRouter("memberA", ls), http.MethodPost, "/likes/toggle", "{not json")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})
}

func TestGetLikedListingsEndpoint(t *testing.T) {
	ls := &stubLikeService{likedListings: []models.LikedListing{
		{Key: "owner1-biz-1", ProfileID: "owner1", ProfileName: "Maya", Listing: models.Listing{ID: "biz-1", Name: "Acme Yoga"}},
	}}
	w := doRequest(newLikeRouter("memberA", ls), http.MethodGet, "/likes", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp LikedListingsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if len(resp.Likes) != 1 || resp.Likes[0].Listing.Name != "Acme Yoga" {
		t.Errorf("likes = %+v, want the stubbed entry", resp.Likes)
	}
}

func TestGetLikedListingsEndpoint_Failure(t *testing.T) {
	ls := &stubLikeService{likedErr: errors.New("firestore down")}
	w := doRequest(newLikeRouter("memberA", ls), http.MethodGet, "/likes", "")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
}
