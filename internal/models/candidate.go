package models

import "strings"

// CandidateRecord is a raw row from the record store's candidates table.
// Rate fields stay untyped until they pass through normalize.ParseCurrency;
// the store mixes numbers and strings like "$42.50/hr" in the same column.
type CandidateRecord struct {
	ID              interface{} `json:"id"`
	FirstName       string      `json:"first_name"`
	LastName        string      `json:"last_name"`
	Role            string      `json:"role"`
	Status          string      `json:"status"`
	PayRate         interface{} `json:"pay_rate"`
	ChargeOutRate   interface{} `json:"charge_out_rate"`
	ChargeRate      interface{} `json:"charge_rate"`
	Residency       string      `json:"residency"`
	ResidencyStatus string      `json:"residency_status"`
	Nationality     string      `json:"nationality"`
	Region          string      `json:"region"`
	Suburb          string      `json:"suburb"`
	State           string      `json:"state"`
	GuaranteedHours float64     `json:"guaranteed_hours"`
	VisaExpiry      string      `json:"visa_expiry"`
	Compliance      *Compliance `json:"compliance"`
	SiteSafeExpiry  *string     `json:"site_safe_expiry"`
	Phone           string      `json:"phone"`
	Email           string      `json:"email"`
	CurrentProject  string      `json:"current_project"`
}

// Compliance is the nested compliance sub-record some candidate rows carry.
type Compliance struct {
	SiteSafeExpiry *string `json:"siteSafeExpiry"`
}

// FullName joins first and last name the way every operation reports it.
func (c CandidateRecord) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// ChargeField returns whichever charge column the row populated;
// charge_out_rate wins over charge_rate.
func (c CandidateRecord) ChargeField() interface{} {
	if c.ChargeOutRate != nil {
		return c.ChargeOutRate
	}
	return c.ChargeRate
}

// RegionLabel resolves the display region: suburb, then state, then region.
func (c CandidateRecord) RegionLabel() string {
	switch {
	case c.Suburb != "":
		return c.Suburb
	case c.State != "":
		return c.State
	case c.Region != "":
		return c.Region
	}
	return "Unknown"
}

// HasSiteSafe reports whether either the nested or the flat site-safety
// expiry field is present.
func (c CandidateRecord) HasSiteSafe() bool {
	if c.Compliance != nil && c.Compliance.SiteSafeExpiry != nil {
		return true
	}
	return c.SiteSafeExpiry != nil
}
