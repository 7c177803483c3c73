package handlers

import (
	"context"
	"errors"
	"net/http"

	"nko_site_go/middleware"
	"nko_site_go/models"
	"nko_site_go/services"
	"nko_site_go/templates/partials"

	"github.com/labstack/echo/v4"
)

// leadResult is the JSON reply of the lead endpoints
type leadResult struct {
	OK            bool                  `json:"ok"`
	Error         string                `json:"error,omitempty"`
	Snapshot      services.LeadSnapshot `json:"snapshot"`
	Notifications []services.Toast      `json:"notifications,omitempty"`
}

// leadStatus maps a lead flow error to an HTTP status
func leadStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, services.ErrLeadValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrLeadBusy), errors.Is(err, services.ErrLeadLocked):
		return http.StatusConflict
	case errors.Is(err, services.ErrLeadRequestFailed):
		return http.StatusBadGateway
	case errors.Is(err, models.ErrUnknownLeadField):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func currentVisitor(c echo.Context) (*services.Visitor, error) {
	visitor := middleware.GetVisitor(c)
	if visitor == nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "visitor session missing")
	}
	return visitor, nil
}

// LeadSubmitHandler applies the posted form values to the visitor's draft and
// submits it. The submission is not tied to the request context, so a client
// that goes away does not abort a request already sent to the lead endpoint.
func LeadSubmitHandler(c echo.Context) error {
	visitor, err := currentVisitor(c)
	if err != nil {
		return err
	}
	log := middleware.GetLogger(c).With("visitor", visitor.ID)

	var posted models.LeadSubmission
	if err := c.Bind(&posted); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Некорректные данные формы")
	}

	flow := visitor.Flow
	if flow.Snapshot().Submitting() {
		err = services.ErrLeadBusy
	} else {
		for _, field := range models.LeadFields {
			if err = flow.UpdateField(field, posted.Get(field)); err != nil {
				break
			}
		}
	}
	if err == nil {
		err = flow.Submit(context.WithoutCancel(c.Request().Context()))
	}

	status := leadStatus(err)
	switch {
	case err == nil:
		log.Infow("lead accepted")
	case status == http.StatusBadGateway:
		log.Warnw("lead rejected by endpoint", "error", err)
	case status >= http.StatusInternalServerError:
		log.Errorw("lead submission error", "error", err)
	default:
		log.Debugw("lead not submitted", "error", err)
	}

	switch {
	case middleware.IsHTMX(c):
		form := partials.LeadFormData{Snapshot: flow.Snapshot(), CSRFToken: middleware.GetCSRFToken(c)}
		return render(c, http.StatusOK, partials.LeadFormResponse(form, visitor.Toasts.Drain()))
	case wantsJSON(c):
		result := leadResult{OK: err == nil, Snapshot: flow.Snapshot(), Notifications: visitor.Toasts.Drain()}
		if err != nil {
			result.Error = err.Error()
		}
		return c.JSON(status, result)
	default:
		return c.Redirect(http.StatusSeeOther, "/#contacts")
	}
}

// LeadFieldHandler updates a single draft field. The field is named by the
// "field" parameter; its value is read from "value" or, as htmx posts it, from
// the parameter named after the field.
func LeadFieldHandler(c echo.Context) error {
	visitor, err := currentVisitor(c)
	if err != nil {
		return err
	}

	params, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Некорректные данные формы")
	}

	field, err := models.ParseLeadField(params.Get("field"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Неизвестное поле")
	}

	value := params.Get(string(field))
	if v, ok := params["value"]; ok && len(v) > 0 {
		value = v[0]
	}

	if err := visitor.Flow.UpdateField(field, value); err != nil {
		if errors.Is(err, services.ErrLeadLocked) {
			return echo.NewHTTPError(http.StatusConflict, "Заявка отправляется, изменения недоступны")
		}
		return err
	}

	if middleware.IsHTMX(c) {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, visitor.Flow.Snapshot())
}

// LeadStateHandler returns the visitor's draft and submission state. A caller
// that has not posted anything yet gets an empty idle draft.
func LeadStateHandler(c echo.Context) error {
	visitor := middleware.GetVisitor(c)
	if visitor == nil {
		return c.JSON(http.StatusOK, services.LeadSnapshot{State: services.StateIdle})
	}
	return c.JSON(http.StatusOK, visitor.Flow.Snapshot())
}

// LeadRateLimited answers a lead post rejected by the rate limiter the way the
// caller expects: an out-of-band toast for htmx, JSON for API clients, and a
// queued toast plus redirect for plain form posts.
func LeadRateLimited(c echo.Context, message string) error {
	toast := services.Toast{Kind: services.NotifyError, Title: services.LeadErrorTitle, Message: message}

	switch {
	case middleware.IsHTMX(c):
		// Only the out-of-band toast is applied; the form stays as is
		c.Response().Header().Set("HX-Reswap", "none")
		return render(c, http.StatusTooManyRequests, partials.ToastsResponse([]services.Toast{toast}))
	case wantsJSON(c):
		return c.JSON(http.StatusTooManyRequests, echo.Map{"ok": false, "error": message})
	}

	visitor := middleware.GetVisitor(c)
	if visitor == nil {
		return echo.NewHTTPError(http.StatusTooManyRequests, message)
	}
	visitor.Toasts.Notify(toast.Kind, toast.Title, toast.Message)
	return c.Redirect(http.StatusSeeOther, "/#contacts")
}
