package payload

import (
	"gallery/internal/core"

	"github.com/jellydator/validation"
)

// UploadRequest carries the multipart form fields of a photo upload.
type UploadRequest struct {
	Name     string
	Filename string
	Size     int64
}

func (u UploadRequest) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Name, validation.Required, validation.Length(1, 40)),
		validation.Field(&u.Filename, validation.Required),
	)
}

func (u UploadRequest) ToMessage() core.UploadMessage {
	return core.UploadMessage{
		Name:     u.Name,
		Filename: u.Filename,
		Size:     u.Size,
	}
}

type ListRequest struct {
	Sort   string
	Order  string
	Search string
}

func (l ListRequest) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Sort, validation.In("name", "date")),
		validation.Field(&l.Order, validation.In("asc", "desc")),
	)
}

// ToQuery applies the listing defaults: newest first.
func (l ListRequest) ToQuery() core.ListQuery {
	sort := l.Sort
	if sort == "" {
		sort = "date"
	}

	order := l.Order
	if order == "" {
		order = "desc"
	}

	return core.ListQuery{
		Sort:   sort,
		Order:  order,
		Search: l.Search,
	}
}
