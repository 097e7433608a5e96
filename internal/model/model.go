package model

import "time"

type AdminUser struct {
	ID               int        `json:"id"`
	Username         string     `json:"username"`
	PasswordHash     string     `json:"-"`
	ResetToken       *string    `json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`
	CreatedAt        time.Time  `json:"createdAt"`
}

type Appointment struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	ServiceType   string    `json:"serviceType"`
	PreferredDate string    `json:"preferredDate"`
	PreferredTime *string   `json:"preferredTime"`
	Details       *string   `json:"details"`
	CreatedAt     time.Time `json:"createdAt"`
}

// AppointmentPatch carries a partial update; nil fields are left untouched.
type AppointmentPatch struct {
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	ServiceType   *string `json:"serviceType"`
	PreferredDate *string `json:"preferredDate"`
	PreferredTime *string `json:"preferredTime"`
	Details       *string `json:"details"`
}

// Service codes offered on the booking form.
const (
	ServiceCarpet     = "carpet"
	ServiceUpholstery = "upholstery"
	ServiceRugs       = "rugs"
	ServiceMultiple   = "multiple"
)

func ValidServiceType(s string) bool {
	switch s {
	case ServiceCarpet, ServiceUpholstery, ServiceRugs, ServiceMultiple:
		return true
	}
	return false
}
