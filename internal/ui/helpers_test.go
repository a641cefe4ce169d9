package ui

import (
	"errors"
	"image"
)

var errTest = errors.New("test failure")

// testImage returns a small decoded image for render tests
func testImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 4, 4))
}
