package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-revenue-api/internal/usecases/membership"
	"github.com/vfg2006/restaurant-revenue-api/internal/usecases/sales"
	"github.com/vfg2006/restaurant-revenue-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func init() {
	// Valores monetários saem como número JSON (amount, totals, recargas)
	decimal.MarshalJSONWithoutQuotes = true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

func decodeBody(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

// writeServiceError traduz os erros tipados dos casos de uso para a resposta da API
func writeServiceError(w http.ResponseWriter, err error, fallbackMessage string) {
	var salesErr *sales.SalesError
	if errors.As(err, &salesErr) {
		apiErrors.WriteError(w, salesErr.Code, salesErr.Error(), fieldsOrNil(salesErr.Fields))
		return
	}

	var membershipErr *membership.MembershipError
	if errors.As(err, &membershipErr) {
		apiErrors.WriteError(w, membershipErr.Code, membershipErr.Error(), fieldsOrNil(membershipErr.Fields))
		return
	}

	logrus.WithError(err).Error(fallbackMessage)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallbackMessage, nil)
}

func fieldsOrNil(fields map[string]string) any {
	if len(fields) == 0 {
		return nil
	}
	return fields
}
