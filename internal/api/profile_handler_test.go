package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"geniuses-backend-go/internal/core"
	"geniuses-backend-go/internal/models"
)

func newProfileRouter(uid string, ps *stubProfileService) *gin.Engine {
	handler := NewProfileHandler(ps, zap.NewNop())
	return newTestRouter(uid, func(r *gin.Engine) {
		r.POST("/users/initialize", handler.InitializeProfile)
		r.GET("/profiles/me", handler.GetMyProfile)
		r.PUT("/profiles/me", handler.UpdateMyProfile)
		r.POST("/profiles/me/businesses", handler.AddListing)
		r.PUT("/profiles/me/businesses/:listingId", handler.UpdateListing)
		r.DELETE("/profiles/me/businesses/:listingId", handler.RemoveListing)
		r.GET("/profiles/options", handler.GetProfileOptions)
		r.GET("/profiles/:profileId", handler.GetProfile)
	})
}

func TestInitializeProfile(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		ps := &stubProfileService{profile: &models.Profile{ID: "uid1"}, created: true}
		w := doRequest(newProfileRouter("uid1", ps), http.MethodPost, "/users/initialize", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201", w.Code)
		}
		var resp InitializeResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid JSON body: %v", err)
		}
		if !resp.Created || resp.Profile == nil {
			t.Errorf("resp = %+v, want Created with profile", resp)
		}
	})

	t.Run("already exists", func(t *testing.T) {
		ps := &stubProfileService{profile: &models.Profile{ID: "uid1"}}
		w := doRequest(newProfileRouter("uid1", ps), http.MethodPost, "/users/initialize", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
	})
}

func TestUpdateMyProfile_RequiresRevision(t *testing.T) {
	ps := &stubProfileService{profile: &models.Profile{ID: "uid1"}}
	router := newProfileRouter("uid1", ps)

	// Missing revision fails binding before the service is reached.
	w := doRequest(router, http.MethodPut, "/profiles/me", `{"displayName":"X"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	w = doRequest(router, http.MethodPut, "/profiles/me", `{"revision":1,"displayName":"X"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestServiceErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		method     string
		target     string
		body       string
		wantStatus int
	}{
		{"profile not found", fmt.Errorf("%w: ghost", core.ErrProfileNotFound), http.MethodGet, "/profiles/ghost", "", http.StatusNotFound},
		{"listing not found", fmt.Errorf("%w: nope", core.ErrListingNotFound), http.MethodDelete, "/profiles/me/businesses/nope", "", http.StatusNotFound},
		{"revision conflict", fmt.Errorf("%w: have 3, presented 1", core.ErrConflict), http.MethodPut, "/profiles/me", `{"revision":1}`, http.StatusConflict},
		{"invalid listing", fmt.Errorf("%w: name is required", core.ErrInvalidListing), http.MethodPost, "/profiles/me/businesses", `{"name":"X","category":"Finance"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := &stubProfileService{err: tt.err}
			w := doRequest(newProfileRouter("uid1", ps), tt.method, tt.target, tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestAddListing_BindingRequiresNameAndCategory(t *testing.T) {
	ps := &stubProfileService{profile: &models.Profile{ID: "uid1"}}
	router := newProfileRouter("uid1", ps)

	w := doRequest(router, http.MethodPost, "/profiles/me/businesses", `{"headline":"no name"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	w = doRequest(router, http.MethodPost, "/profiles/me/businesses", `{"name":"Acme Yoga","category":"Wellness & Spirituality"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
}

func TestGetProfileOptions(t *testing.T) {
	ps := &stubProfileService{}
	w := doRequest(newProfileRouter("", ps), http.MethodGet, "/profiles/options", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		BusinessCategories []string `json:"businessCategories"`
		InitialSkills      []string `json:"initialSkills"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if len(resp.BusinessCategories) == 0 || len(resp.InitialSkills) == 0 {
		t.Error("options payload missing fixed pickers")
	}
}
