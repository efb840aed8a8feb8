package domain

// Hotel is a listing owned by an admin user.
type Hotel struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	PictureList []string `json:"picture_list"`
	Owner       string   `json:"owner"`
}
