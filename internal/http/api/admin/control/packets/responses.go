package packets

type UploadResponse struct {
	URL string `json:"url"`
}

type DeletedResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}
