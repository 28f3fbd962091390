package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/utils"
)

func (h *Handler) getAPIInfo(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetAPIInfo(r.Context())

	if _, err := utils.WriteJSON(w, info, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getAPIInfo").Msg("error writing api info")
	}
}
