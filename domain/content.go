package domain

import "fmt"

type ContentType string

const (
	ContentTypeEvent     ContentType = "event"
	ContentTypeNews      ContentType = "news"
	ContentTypeDirectory ContentType = "directory"
)

var ContentTypes = []ContentType{
	ContentTypeEvent,
	ContentTypeNews,
	ContentTypeDirectory,
}

func (t ContentType) IsValid() bool {
	for _, ct := range ContentTypes {
		if t == ct {
			return true
		}
	}
	return false
}

// ContentRef identifies a content item owned by another module.
type ContentRef struct {
	Type ContentType `json:"type" yaml:"type"`
	ID   string      `json:"id" yaml:"id"`
}

func (r ContentRef) String() string {
	return fmt.Sprintf("%s:%s", r.Type, r.ID)
}
