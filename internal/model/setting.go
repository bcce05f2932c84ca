package model

import "time"

// AppSetting is a key-value pair of public site information
// (address, phone, e-mail, office hours).
type AppSetting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicSettingKeys are the settings shown in the footer and on the contact page.
// Any other row in app_settings is never served.
var PublicSettingKeys = []string{"address", "phone", "email", "office_hours", "map_url"}
