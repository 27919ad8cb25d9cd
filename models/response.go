package models

type Error struct {
	Detail string `json:"detail"`
}

type Message struct {
	Message string `json:"message"`
}

type Health struct {
	Status string `json:"status"`
}
