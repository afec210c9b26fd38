// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-borrower-search/models"
)

func searchResponseFromPayload(raw map[string]any) models.SearchResponse {
	resp := models.SearchResponse{
		NoParams: truthy(raw["noParams"]),
		Error:    truthy(raw["error"]),
		Message:  text(raw["message"]),
		Raw:      raw,
	}

	if p, ok := raw["personalInfo"].(map[string]any); ok {
		resp.PersonalInfo = models.PersonalInfo{
			ApplicationNo: text(p["application_no"]),
			AppID:         text(p["app_id"]),
			NamaNasabah:   text(p["nama_nasabah"]),
			NoKTP:         text(p["no_ktp"]),
			BirthDate:     text(p["birth_date"]),
			Address:       text(p["address"]),
			Phone:         text(p["phone"]),
		}
	}

	if l, ok := raw["loanInfo"].(map[string]any); ok {
		resp.LoanInfo = &models.LoanInfo{
			Product: text(l["product"]),
			Plafond: number(l["plafond"]),
			Tenor:   int(number(l["tenor"])),
			Status:  text(l["status"]),
		}
	}

	return resp
}

// truthy follows the loose flag semantics of the search backend: absent,
// false, zero and "" are false, anything else is true.
func truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v != ""
	default:
		return true
	}
}

func text(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// number returns 0 for values that are not numeric.
func number(v any) float64 {
	switch v := v.(type) {
	case float64:
		return v
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
