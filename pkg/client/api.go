package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/jwalitptl/carehub-api/internal/model"
)

// Query key resource names.
const (
	KeyPatients            = "patients"
	KeyPatient             = "patient"
	KeyPatientAppointments = "patient-appointments"
	KeyPatientVitals       = "patient-vitals"
	KeyPatientNotes        = "patient-notes"
	KeyAppointments        = "appointments"
	KeyProviders           = "providers"
	KeyNotifications       = "notifications"
)

func patientParams(f model.PatientFilters) url.Values {
	v := url.Values{}
	set := func(k, s string) {
		if s != "" {
			v.Set(k, s)
		}
	}
	set("search", f.Search)
	set("status", f.Status)
	set("provider", f.Provider)
	if f.HasUpcoming != nil {
		v.Set("hasUpcoming", strconv.FormatBool(*f.HasUpcoming))
	}
	set("riskLevel", f.RiskLevel)
	if f.Page > 0 {
		v.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	set("sortBy", f.SortBy)
	set("sortOrder", f.SortOrder)
	return v
}

func appointmentParams(f model.AppointmentFilters) url.Values {
	v := url.Values{}
	if f.StartDate != "" {
		v.Set("startDate", f.StartDate)
	}
	if f.EndDate != "" {
		v.Set("endDate", f.EndDate)
	}
	if f.ProviderID != "" {
		v.Set("providerId", f.ProviderID)
	}
	return v
}

func patientPath(id string, sub ...string) string {
	p := "/api/patients/" + url.PathEscape(id)
	for _, s := range sub {
		p += "/" + s
	}
	return p
}

// Patients

func (c *Client) Patients(ctx context.Context, filters model.PatientFilters) (model.PaginatedResponse[*model.Patient], error) {
	params := patientParams(filters)
	return query(ctx, c, ParamsKey(KeyPatients, params),
		get[model.PaginatedResponse[*model.Patient]](c, "/api/patients", params))
}

func (c *Client) Patient(ctx context.Context, id string) (*model.Patient, error) {
	return query(ctx, c, NewKey(KeyPatient, id), get[*model.Patient](c, patientPath(id), nil))
}

// UpdatePatient sends a partial update and invalidates the patient and every
// patient list on success.
func (c *Client) UpdatePatient(ctx context.Context, id string, patch interface{}) (*model.Patient, error) {
	var out *model.Patient
	if err := c.do(ctx, http.MethodPut, patientPath(id), nil, patch, &out); err != nil {
		return nil, err
	}
	c.cache.InvalidatePrefix(KeyPatient, id)
	c.cache.InvalidatePrefix(KeyPatients)
	return out, nil
}

func (c *Client) PatientAppointments(ctx context.Context, id string) ([]*model.Appointment, error) {
	return query(ctx, c, NewKey(KeyPatientAppointments, id),
		get[[]*model.Appointment](c, patientPath(id, "appointments"), nil))
}

// PatientVitals retries server errors up to VitalsRetries times with
// exponential backoff. Client errors are returned at once.
func (c *Client) PatientVitals(ctx context.Context, id string) ([]*model.Vital, error) {
	fetch := get[[]*model.Vital](c, patientPath(id, "vitals"), nil)
	return query(ctx, c, NewKey(KeyPatientVitals, id), func(ctx context.Context) ([]*model.Vital, error) {
		policy := backoff.NewExponentialBackOff()
		policy.InitialInterval = c.retryInterval
		policy.Multiplier = 2
		policy.RandomizationFactor = 0
		policy.MaxInterval = 30 * time.Second

		var vitals []*model.Vital
		err := backoff.RetryNotify(func() error {
			v, err := fetch(ctx)
			if err != nil {
				var apiErr *APIError
				if errors.As(err, &apiErr) && !apiErr.Temporary() {
					return backoff.Permanent(err)
				}
				return err
			}
			vitals = v
			return nil
		}, backoff.WithContext(backoff.WithMaxRetries(policy, VitalsRetries), ctx),
			func(err error, wait time.Duration) {
				c.logger.Debug("Retrying vitals", "patient_id", id, "wait", wait.String(), "error", err.Error())
			})
		return vitals, err
	})
}

func (c *Client) PatientNotes(ctx context.Context, id string) ([]*model.Note, error) {
	return query(ctx, c, NewKey(KeyPatientNotes, id), get[[]*model.Note](c, patientPath(id, "notes"), nil))
}

// CreateNote prepends a placeholder note to the cached list while the
// request is in flight.
func (c *Client) CreateNote(ctx context.Context, patientID string, req model.CreateNoteRequest) (*model.Note, error) {
	now := c.now()
	placeholder := &model.Note{
		ID:           "temp-" + uuid.NewString(),
		PatientID:    patientID,
		ProviderID:   model.DefaultProviderID,
		ProviderName: model.DefaultProviderName,
		Date:         model.FormatDate(now),
		Type:         req.Type,
		Title:        req.Title,
		Content:      req.Content,
		UpdatedAt:    model.FormatTimestamp(now),
	}
	if placeholder.Type == "" {
		placeholder.Type = model.NoteTypeProgress
	}

	return RunOptimistic(ctx, c.cache, NewKey(KeyPatientNotes, patientID),
		func(old []*model.Note) []*model.Note {
			return append([]*model.Note{placeholder}, old...)
		},
		func(ctx context.Context) (*model.Note, error) {
			var out *model.Note
			err := c.do(ctx, http.MethodPost, patientPath(patientID, "notes"), nil, req, &out)
			return out, err
		})
}

// Appointments

func (c *Client) Appointments(ctx context.Context, filters model.AppointmentFilters) ([]*model.Appointment, error) {
	params := appointmentParams(filters)
	return query(ctx, c, ParamsKey(KeyAppointments, params), get[[]*model.Appointment](c, "/api/appointments", params))
}

func (c *Client) CheckConflicts(ctx context.Context, q model.ConflictQuery) (model.ConflictResult, error) {
	params := url.Values{"date": {q.Date}, "startTime": {q.StartTime}}
	if q.ExcludeID != "" {
		params.Set("excludeId", q.ExcludeID)
	}
	return query(ctx, c, ParamsKey(KeyAppointments, params, "conflicts"),
		get[model.ConflictResult](c, "/api/appointments/conflicts", params))
}

func (c *Client) CreateAppointment(ctx context.Context, req model.CreateAppointmentRequest) (*model.Appointment, error) {
	var out *model.Appointment
	if err := c.do(ctx, http.MethodPost, "/api/appointments", nil, req, &out); err != nil {
		return nil, err
	}
	c.cache.InvalidatePrefix(KeyAppointments)
	return out, nil
}

func (c *Client) UpdateAppointment(ctx context.Context, id string, patch interface{}) (*model.Appointment, error) {
	var out *model.Appointment
	if err := c.do(ctx, http.MethodPut, "/api/appointments/"+url.PathEscape(id), nil, patch, &out); err != nil {
		return nil, err
	}
	c.cache.InvalidatePrefix(KeyAppointments)
	return out, nil
}

func (c *Client) CancelAppointment(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/appointments/"+url.PathEscape(id), nil, nil, nil); err != nil {
		return err
	}
	c.cache.InvalidatePrefix(KeyAppointments)
	return nil
}

// Providers

func (c *Client) Providers(ctx context.Context) ([]*model.Provider, error) {
	return query(ctx, c, NewKey(KeyProviders), get[[]*model.Provider](c, "/api/providers", nil))
}

// ProviderSchedule is keyed under appointments so appointment mutations
// invalidate it.
func (c *Client) ProviderSchedule(ctx context.Context, providerID, startDate, endDate string) ([]*model.Appointment, error) {
	params := appointmentParams(model.AppointmentFilters{StartDate: startDate, EndDate: endDate})
	path := "/api/providers/" + url.PathEscape(providerID) + "/schedule"
	return query(ctx, c, ParamsKey(KeyAppointments, params, "provider", providerID), get[[]*model.Appointment](c, path, params))
}

// Notifications

func (c *Client) Notifications(ctx context.Context) ([]*model.Notification, error) {
	return query(ctx, c, NewKey(KeyNotifications), get[[]*model.Notification](c, "/api/notifications", nil))
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string) (*model.Notification, error) {
	return RunOptimistic(ctx, c.cache, NewKey(KeyNotifications),
		func(old []*model.Notification) []*model.Notification {
			out := make([]*model.Notification, len(old))
			for i, n := range old {
				out[i] = n
				if n.ID == id {
					read := *n
					read.Read = true
					out[i] = &read
				}
			}
			return out
		},
		func(ctx context.Context) (*model.Notification, error) {
			var out *model.Notification
			err := c.do(ctx, http.MethodPut, "/api/notifications/"+url.PathEscape(id)+"/read", nil, nil, &out)
			return out, err
		})
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	_, err := RunOptimistic(ctx, c.cache, NewKey(KeyNotifications),
		func(old []*model.Notification) []*model.Notification {
			out := make([]*model.Notification, len(old))
			for i, n := range old {
				read := *n
				read.Read = true
				out[i] = &read
			}
			return out
		},
		func(ctx context.Context) (model.SuccessResponse, error) {
			var out model.SuccessResponse
			err := c.do(ctx, http.MethodPost, "/api/notifications/mark-all-read", nil, nil, &out)
			return out, err
		})
	return err
}
