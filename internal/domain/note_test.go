package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNoteType(t *testing.T) {
	tests := []struct {
		input string
		want  NoteType
	}{
		{"sticky", NoteSticky},
		{"STICKY", NoteSticky},
		{"index-card", NoteIndexCard},
		{"index_card", NoteIndexCard},
		{"  evidence-tag  ", NoteEvidenceTag},
		{"photo", NotePhoto},
		{"", NoteSticky},
		{"hologram", NoteSticky},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseNoteType(tt.input), "input %q", tt.input)
	}
}

func TestNoteTypeAPIValue(t *testing.T) {
	assert.Equal(t, "sticky", NoteSticky.APIValue())
	assert.Equal(t, "index-card", NoteIndexCard.APIValue())
	assert.Equal(t, "evidence-tag", NoteEvidenceTag.APIValue())
}

func TestAssign(t *testing.T) {
	dst := "original"

	Assign(&dst, (*string)(nil))
	assert.Equal(t, "original", dst)

	src := "patched"
	Assign(&dst, &src)
	assert.Equal(t, "patched", dst)
}
