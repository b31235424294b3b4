package response

import (
	"kayak-console/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type PhotoSendResponse struct {
	Recipients int `json:"recipients"`
	PhotoCount int `json:"photo_count"`
}

func FromPhotoSendResult(result *commands.PhotoSendResult) PhotoSendResponse {
	var resp PhotoSendResponse
	_ = copier.Copy(&resp, result)
	return resp
}
