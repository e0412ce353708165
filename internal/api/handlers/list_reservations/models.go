package list_reservations

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
	"github.com/m04kA/RSV-ReservationService/internal/service/reservations/models"
)

// ParseQuery builds the list request from the query string.
// Supported params: restaurantId, startDate, endDate, status,
// page, limit, sort (comma separated, "-" prefix for descending),
// fields (comma separated).
func ParseQuery(query url.Values) (*models.ListReservationsRequest, error) {
	req := &models.ListReservationsRequest{
		Page:  1,
		Limit: 20,
	}

	if v := query.Get("restaurantId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.RestaurantID = &id
	}

	if v := query.Get("startDate"); v != "" {
		date, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		req.StartDate = &date
	}

	if v := query.Get("endDate"); v != "" {
		date, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		// endDate is inclusive on the wire, the storage bound is exclusive
		end := date.AddDate(0, 0, 1)
		req.EndDate = &end
	}

	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	if v := query.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		req.Page = page
	}

	if v := query.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		req.Limit = limit
	}

	if v := query.Get("sort"); v != "" {
		req.Sort = splitList(v)
	}

	if v := query.Get("fields"); v != "" {
		req.Fields = splitList(v)
	}

	return req, nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
