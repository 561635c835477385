package catalog

type RoomRequest struct {
	Name      string   `json:"name" validate:"required"`
	RoomType  string   `json:"room_type" validate:"required"`
	Capacity  int      `json:"capacity" validate:"required,gt=0"`
	Equipment []string `json:"equipment"`
	Status    string   `json:"status"`
	Building  string   `json:"building"`
	Floor     string   `json:"floor"`
	PhotoURL  string   `json:"photo_url"`
}

type AvailabilityQuery struct {
	Date      string   `json:"date"`
	From      string   `json:"from"`
	To        string   `json:"to"`
	Capacity  int      `json:"capacity"`
	Equipment []string `json:"equipment"`
}

type RoomSummary struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	RoomType    string   `json:"room_type"`
	Capacity    int      `json:"capacity"`
	Equipment   []string `json:"equipment,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Description string   `json:"description,omitempty"`
}

type CreateFloorRequest struct {
	Name     string `json:"name" validate:"required"`
	Building string `json:"building" validate:"required"`
	Image    string `json:"image"`
}
