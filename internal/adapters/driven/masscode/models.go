package masscode

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/massbar-labs/massbar-cli/internal/core/domain"
)

// FlexBool decodes the boolean encodings the massCode API actually emits:
// JSON true/false, numbers (non-zero is true), and the strings
// "true"/"false" or numeric strings. Anything else fails decoding.
type FlexBool bool

// UnmarshalJSON implements json.Unmarshaler.
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	switch {
	case string(data) == "true":
		*b = true
		return nil
	case string(data) == "false":
		*b = false
		return nil
	}

	// Numbers: non-zero is true.
	if n, err := strconv.ParseInt(string(data), 10, 64); err == nil {
		*b = n != 0
		return nil
	}

	// Strings: "true"/"false" (any case) or a numeric string.
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch {
		case strings.EqualFold(s, "true"):
			*b = true
			return nil
		case strings.EqualFold(s, "false"):
			*b = false
			return nil
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			*b = n != 0
			return nil
		}
	}

	return fmt.Errorf("cannot decode %s as bool", string(data))
}

// snippetDTO mirrors the massCode API's snippet shape.
type snippetDTO struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Tags        []tagDTO     `json:"tags"`
	Folder      *folderDTO   `json:"folder"`
	Contents    []contentDTO `json:"contents"`
	// The API field name is "isFavorites" (plural).
	IsFavorites FlexBool `json:"isFavorites"`
	IsDeleted   FlexBool `json:"isDeleted"`
	CreatedAt   int64    `json:"createdAt"`
	UpdatedAt   int64    `json:"updatedAt"`
}

type tagDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type folderDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type contentDTO struct {
	ID       int    `json:"id"`
	Label    string `json:"label"`
	Value    string `json:"value"`
	Language string `json:"language"`
}

type createSnippetRequest struct {
	Name     string `json:"name"`
	FolderID *int   `json:"folderId"`
}

type createContentRequest struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Language string `json:"language"`
}

type createResponse struct {
	ID int `json:"id"`
}

// toDomain converts a decoded snippet to the domain model.
func (d snippetDTO) toDomain() domain.Snippet {
	s := domain.Snippet{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		IsFavorite:  bool(d.IsFavorites),
		IsDeleted:   bool(d.IsDeleted),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if d.Folder != nil {
		s.Folder = &domain.Folder{ID: d.Folder.ID, Name: d.Folder.Name}
	}
	for _, t := range d.Tags {
		s.Tags = append(s.Tags, domain.Tag{ID: t.ID, Name: t.Name})
	}
	for _, c := range d.Contents {
		s.Contents = append(s.Contents, domain.Content{
			ID:       c.ID,
			Label:    c.Label,
			Language: c.Language,
			Value:    c.Value,
		})
	}
	return s
}
