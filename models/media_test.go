package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMediaKind(t *testing.T) {
	tests := []struct {
		url   string
		image bool
		video bool
	}{
		{"https://cdn.example.com/a/1/photo.JPG", true, false},
		{"https://cdn.example.com/a/1/clip.mp4", false, true},
		{"https://cdn.example.com/a/1/clip.MOV", false, true},
		{"https://cdn.example.com/a/1/notes.pdf", false, false},
	}
	for _, tt := range tests {
		m := Media{FileURL: tt.url}
		assert.Equal(t, tt.image, m.IsImage(), tt.url)
		assert.Equal(t, tt.video, m.IsVideo(), tt.url)
	}
}
