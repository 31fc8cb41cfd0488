package sheets

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"schedule-server/api"
	"schedule-server/models"
)

func TestGetValues_WithAPIKey(t *testing.T) {
	wantResp := models.SheetValuesResponse{
		Range:          "Schedule!A1:D2",
		MajorDimension: "ROWS",
		Values: [][]string{
			{"Team Member", "Analyst", "Login Time", "Time Offs"},
			{"Alice", "Bob Lee", "10:00 AM", "Monday"},
		},
	}

	// Handler to verify request and return stubbed JSON
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("expected GET; got %s", r.Method)
		}
		if r.URL.Path != "/spreadsheets/sheet-1/values/Schedule!A:D" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("key"); got != "api-key-123" {
			t.Errorf("key = %q; want api-key-123", got)
		}
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("unexpected Authorization header %q with keyed fetch", got)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(wantResp)
	}))
	defer srv.Close()

	client := NewSheetsApiClient(api.NewHTTPClient(srv.URL))

	got, err := client.GetValues("sheet-1", "Schedule!A:D", Credentials{APIKey: "api-key-123"})
	if err != nil {
		t.Fatal(err)
	}
	if got.Range != wantResp.Range {
		t.Errorf("Range = %q; want %q", got.Range, wantResp.Range)
	}
	if len(got.Values) != 2 {
		t.Fatalf("Values rows = %d; want 2", len(got.Values))
	}
	if got.Values[1][2] != "10:00 AM" {
		t.Errorf("login cell = %q; want 10:00 AM", got.Values[1][2])
	}
}

func TestGetValues_WithAccessToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer token-abc" {
			t.Errorf("Authorization = %q; want Bearer token-abc", got)
		}
		if got := r.URL.Query().Get("key"); got != "" {
			t.Errorf("unexpected key query arg %q with token fetch", got)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.SheetValuesResponse{Values: [][]string{}})
	}))
	defer srv.Close()

	client := NewSheetsApiClient(api.NewHTTPClient(srv.URL))

	if _, err := client.GetValues("sheet-1", "Schedule!A:D", Credentials{AccessToken: "token-abc"}); err != nil {
		t.Fatal(err)
	}
}

func TestGetValues_NoCredentials(t *testing.T) {
	client := NewSheetsApiClient(api.NewHTTPClient("http://unused"))

	_, err := client.GetValues("sheet-1", "Schedule!A:D", Credentials{})
	if err == nil {
		t.Fatal("expected an error without credentials")
	}

	var authErr *models.AuthRequiredError
	if !errors.As(err, &authErr) {
		t.Errorf("expected AuthRequiredError, got %T: %v", err, err)
	}
}

func TestGetValues_ConcurrentFetchesKeepOwnKey(t *testing.T) {
	// Echo each request's key back in the Range field so callers can
	// check which credential their fetch actually carried.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.SheetValuesResponse{
			Range:  r.URL.Query().Get("key"),
			Values: [][]string{},
		})
	}))
	defer srv.Close()

	client := NewSheetsApiClient(api.NewHTTPClient(srv.URL))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", i)
			for j := 0; j < 20; j++ {
				got, err := client.GetValues("sheet-1", "Schedule!A:D", Credentials{APIKey: key})
				if err != nil {
					t.Errorf("fetch with %s: %v", key, err)
					return
				}
				if got.Range != key {
					t.Errorf("fetch carried key %q; want %q", got.Range, key)
					return
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestGetValues_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"API key not valid"}}`, http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewSheetsApiClient(api.NewHTTPClient(srv.URL))

	_, err := client.GetValues("sheet-1", "Schedule!A:D", Credentials{APIKey: "bad-key"})
	if err == nil {
		t.Fatal("expected an error from a 403 response")
	}

	var fetchErr *models.UpstreamFetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected UpstreamFetchError, got %T: %v", err, err)
	}
	if fetchErr.Status != "403 Forbidden" {
		t.Errorf("Status = %q; want 403 Forbidden", fetchErr.Status)
	}
}
