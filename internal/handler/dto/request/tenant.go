package request

import "strings"

type ActivateTenantRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"max=1000"`
	Timezone    string `json:"timezone" binding:"max=64"`
}

func (r ActivateTenantRequest) TrimmedName() string {
	return strings.TrimSpace(r.Name)
}
