// Package query holds the read-path logic: pure filter, sort and paginate
// functions over the in-memory collections. Nothing here touches the store.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jwalitptl/carehub-api/internal/model"
)

const (
	DefaultPage      = 1
	DefaultLimit     = 10
	DefaultSortBy    = "lastName"
	DefaultSortOrder = "asc"
)

// patientStringFields maps the JSON name of every string-valued Patient field
// to its accessor. Sorting on any other name leaves the order unchanged.
var patientStringFields = map[string]func(*model.Patient) string{
	"id":                func(p *model.Patient) string { return p.ID },
	"mrn":               func(p *model.Patient) string { return p.MRN },
	"firstName":         func(p *model.Patient) string { return p.FirstName },
	"lastName":          func(p *model.Patient) string { return p.LastName },
	"dateOfBirth":       func(p *model.Patient) string { return p.DateOfBirth },
	"gender":            func(p *model.Patient) string { return string(p.Gender) },
	"email":             func(p *model.Patient) string { return p.Email },
	"phone":             func(p *model.Patient) string { return p.Phone },
	"insuranceProvider": func(p *model.Patient) string { return p.InsuranceProvider },
	"insuranceId":       func(p *model.Patient) string { return p.InsuranceID },
	"primaryProviderId": func(p *model.Patient) string { return p.PrimaryProviderID },
	"status":            func(p *model.Patient) string { return string(p.Status) },
	"riskLevel":         func(p *model.Patient) string { return string(p.RiskLevel) },
	"photoUrl":          func(p *model.Patient) string { return p.PhotoURL },
	"createdAt":         func(p *model.Patient) string { return p.CreatedAt },
	"updatedAt":         func(p *model.Patient) string { return p.UpdatedAt },
}

// SortablePatientField reports whether sortBy names a string-valued field.
func SortablePatientField(sortBy string) bool {
	_, ok := patientStringFields[sortBy]
	return ok
}

// Patients filters, sorts and paginates the directory. today is the
// YYYY-MM-DD date used by the hasUpcoming filter. The input slice is not
// modified.
func Patients(patients []*model.Patient, appts []*model.Appointment, f model.PatientFilters, today string) model.PaginatedResponse[*model.Patient] {
	filtered := make([]*model.Patient, 0, len(patients))
	search := strings.ToLower(f.Search)

	for _, p := range patients {
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if f.Status != "" && string(p.Status) != f.Status {
			continue
		}
		if f.Provider != "" && p.PrimaryProviderID != f.Provider {
			continue
		}
		filtered = append(filtered, p)
	}

	if f.HasUpcoming != nil && *f.HasUpcoming {
		upcoming := make(map[string]struct{})
		for _, a := range appts {
			if a.Date >= today {
				upcoming[a.PatientID] = struct{}{}
			}
		}
		kept := filtered[:0]
		for _, p := range filtered {
			if _, ok := upcoming[p.ID]; ok {
				kept = append(kept, p)
			}
		}
		filtered = kept
	}

	if f.RiskLevel != "" {
		kept := filtered[:0]
		for _, p := range filtered {
			if string(p.RiskLevel) == f.RiskLevel {
				kept = append(kept, p)
			}
		}
		filtered = kept
	}

	sortBy := f.SortBy
	if sortBy == "" {
		sortBy = DefaultSortBy
	}
	sortPatients(filtered, sortBy, f.SortOrder != "desc")

	return paginate(filtered, f.Page, f.Limit)
}

func matchesSearch(p *model.Patient, search string) bool {
	return strings.Contains(strings.ToLower(p.FirstName), search) ||
		strings.Contains(strings.ToLower(p.LastName), search) ||
		strings.Contains(strings.ToLower(p.MRN), search) ||
		strings.Contains(p.DateOfBirth, search)
}

func sortPatients(patients []*model.Patient, sortBy string, asc bool) {
	field, ok := patientStringFields[sortBy]
	if !ok {
		return
	}
	// collate.Collator keeps internal buffers and is not safe for concurrent use.
	col := collate.New(language.English)
	sort.SliceStable(patients, func(i, j int) bool {
		a, b := field(patients[i]), field(patients[j])
		if asc {
			return col.CompareString(a, b) < 0
		}
		return col.CompareString(b, a) < 0
	})
}

func paginate[T any](items []T, page, limit int) model.PaginatedResponse[T] {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	total := len(items)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	data := make([]T, end-start)
	copy(data, items[start:end])

	return model.PaginatedResponse[T]{
		Data: data,
		Pagination: model.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + limit - 1) / limit,
		},
	}
}
