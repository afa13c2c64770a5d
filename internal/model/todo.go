package model

type Todo struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	OwnerID   string `json:"ownerId,omitempty"`
}

type TodoFilter struct {
	OwnerID *string
}
