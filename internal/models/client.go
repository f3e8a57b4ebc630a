package models

// ClientRecord is a raw row from the record store's clients table.
type ClientRecord struct {
	ID          interface{} `json:"id"`
	Name        string      `json:"name"`
	Region      string      `json:"region"`
	Industry    string      `json:"industry"`
	Tier        string      `json:"tier"`
	LastContact string      `json:"last_contact"`
}
