package models

// Item is a named pantry entry. The name doubles as the document key in the store.
type Item struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}
