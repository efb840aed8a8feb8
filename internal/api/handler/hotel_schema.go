package handler

// --- Request / Response types ---

type createHotelRequest struct {
	Name        string   `json:"name"         validate:"required"`
	Location    string   `json:"location"     validate:"required"`
	Description string   `json:"description"  validate:"required"`
	PictureList []string `json:"picture_list"`
}

type updateHotelRequest struct {
	Name        *string   `json:"name"`
	Location    *string   `json:"location"`
	Description *string   `json:"description"`
	PictureList *[]string `json:"picture_list"`
}
