package sliderimage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFinalPath(t *testing.T) {
	at := time.Unix(1750000000, 0)

	assert.Equal(t, "sliders/temp-tok-1750000000.jpg", FinalPath("tok", at, ".jpg"))
	// extension without a leading dot gets one
	assert.Equal(t, "sliders/temp-tok-1750000000.png", FinalPath("tok", at, "png"))
	assert.Equal(t, "sliders/temp-tok-1750000000", FinalPath("tok", at, ""))
}

func TestFinalPathDeterministic(t *testing.T) {
	at := time.Unix(1750000000, 0)
	assert.Equal(t, FinalPath("tok", at, ".jpg"), FinalPath("tok", at, ".jpg"))
}
