package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/restaurant-revenue-api/internal/domain"
	"github.com/vfg2006/restaurant-revenue-api/internal/usecases/membership"
	"github.com/vfg2006/restaurant-revenue-api/pkg/apiErrors"
)

// ListMemberships retorna as recargas de cartão de membro filtradas por loja e período
func ListMemberships(service membership.MembershipService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		invalid := queryErrors{}
		filters := parseMembershipFilters(r.URL.Query(), invalid)
		if len(invalid) > 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetros de consulta inválidos", invalid)
			return
		}

		recharges, err := service.List(r.Context(), filters)
		if err != nil {
			writeServiceError(w, err, "Erro ao listar recargas")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"rows":  recharges,
			"count": len(recharges),
		})
	}
}

func CreateMembership(service membership.MembershipService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request domain.MembershipRequest
		if err := decodeBody(r, &request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		recharge, err := service.Create(r.Context(), &request)
		if err != nil {
			writeServiceError(w, err, "Erro ao criar recarga")
			return
		}

		writeJSON(w, http.StatusCreated, recharge)
	}
}

func UpdateMembership(service membership.MembershipService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var request domain.MembershipRequest
		if err := decodeBody(r, &request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		recharge, err := service.Update(r.Context(), id, &request)
		if err != nil {
			writeServiceError(w, err, "Erro ao atualizar recarga")
			return
		}

		writeJSON(w, http.StatusOK, recharge)
	}
}

func DeleteMembership(service membership.MembershipService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Delete(r.Context(), id); err != nil {
			writeServiceError(w, err, "Erro ao remover recarga")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
