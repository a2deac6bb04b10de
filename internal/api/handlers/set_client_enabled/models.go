package set_client_enabled

import "github.com/m04kA/SMC-FacilityBooking/internal/domain"

type SetEnabledRequest struct {
	Enabled *bool `json:"enabled"`
}

type ClientResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Enabled bool   `json:"enabled"`
}

func FromDomain(c *domain.Client) *ClientResponse {
	return &ClientResponse{
		ID:      c.ID,
		Name:    c.Name,
		Phone:   c.Phone,
		Enabled: c.Enabled,
	}
}
