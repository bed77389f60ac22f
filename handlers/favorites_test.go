package handlers

import (
	"net/http"
	"testing"

	"prestige-backend/models"

	"github.com/google/uuid"
)

func TestToggleFavoriteTwiceRestoresState(t *testing.T) {
	app := newTestApp(t)
	_, token := app.seedTestUser(t, "fan", false)
	car := app.seedCar(t, "Chiron", 3000000, models.CarStatusAvailable)
	path := "/api/favorite/toggle/" + car.ID.String()

	w := app.serve(formRequest("POST", path, nil, token))
	if w.Code != http.StatusOK || parseResponse(w)["status"] != "added" {
		t.Fatalf("expected added, got %d %s", w.Code, w.Body.String())
	}
	if app.count(t, &models.Favorite{}) != 1 {
		t.Fatal("expected one favorite")
	}

	w = app.serve(formRequest("POST", path, nil, token))
	if parseResponse(w)["status"] != "removed" {
		t.Fatalf("expected removed, got %s", w.Body.String())
	}
	if app.count(t, &models.Favorite{}) != 0 {
		t.Error("expected favorite to be gone")
	}
}

func TestToggleFavoriteErrors(t *testing.T) {
	app := newTestApp(t)
	_, token := app.seedTestUser(t, "fan", false)

	w := app.serve(formRequest("POST", "/api/favorite/toggle/"+uuid.New().String(), nil, ""))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for anonymous toggle, got %d", w.Code)
	}

	w = app.serve(formRequest("POST", "/api/favorite/toggle/"+uuid.New().String(), nil, token))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown car, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp["status"] != "error" || resp["message"] != "Car not found" {
		t.Errorf("unexpected body: %v", resp)
	}
}
