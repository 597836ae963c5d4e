package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimal real file headers so DetectContentType sees the right mime
var (
	pngHead  = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	jpegHead = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}
)

func TestValidateImageBySniffAccepted(t *testing.T) {
	mime, err := ValidateImageBySniff("photo.png", pngHead)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)

	mime, err = ValidateImageBySniff("photo.JPG", jpegHead)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mime)
}

func TestValidateImageBySniffRejectsExtension(t *testing.T) {
	_, err := ValidateImageBySniff("image.svg", []byte("<svg></svg>"))
	assert.Error(t, err)

	_, err = ValidateImageBySniff("image.gif", []byte("GIF89a"))
	assert.Error(t, err)
}

func TestValidateImageBySniffRejectsHTMLContent(t *testing.T) {
	_, err := ValidateImageBySniff("sneaky.png", []byte("<!DOCTYPE html><html>"))
	assert.Error(t, err)
}
