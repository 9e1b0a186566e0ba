package handler

import (
	"net/http"

	"github.com/careerpath/careerpath-go/internal/model"
)

// HandleCareerDomains handles GET /api/careers/domains requests.
func HandleCareerDomains(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.CareerDomains())
}
