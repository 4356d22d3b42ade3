package get_schedule

import (
	"strconv"

	"github.com/barberlink/admin-gateway/internal/service/schedule/models"
)

// ToServiceQuery builds the service query from the raw query parameters.
// Empty status/tenant values behave like "all".
func ToServiceQuery(statusStr, tenantStr, dateStr, refreshStr string) (*models.ScheduleQuery, error) {
	q := &models.ScheduleQuery{
		Status: statusStr,
		Tenant: tenantStr,
		Date:   dateStr,
	}

	if refreshStr != "" {
		refresh, err := strconv.ParseBool(refreshStr)
		if err != nil {
			return nil, err
		}
		q.Refresh = refresh
	}

	return q, nil
}
