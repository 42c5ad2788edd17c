package model

type ArrangeResponse struct {
	Id       string               `json:"id"`
	Title    string               `json:"title"`
	Metadata SongMetadata         `json:"metadata"`
	Tiers    map[Tier]Arrangement `json:"tiers"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
