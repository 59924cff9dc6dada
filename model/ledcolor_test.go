package model_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/coreman2200/funtimes-arcastrip/model"
)

var TestHSVIsExpectedColor = []struct {
	H, S, V float64
	Expect  Color
}{
	{0, 1, 1, RGB(255, 0, 0)},
	{120, 1, 1, RGB(0, 255, 0)},
	{240, 1, 1, RGB(0, 0, 255)},
	{0, 0, 1, RGB(255, 255, 255)},
	{60, 1, 1, Yellow},
	{180, 1, 1, Cyan},
	{300, 1, 1, Magenta},
	{360, 1, 1, Red},
	{-120, 1, 1, Blue},
	{0, 1, 0, Black},
	{30, 1, 1, RGB(255, 128, 0)},
}

var TestRGB565IsExpected = []struct {
	C      Color
	Expect uint16
}{
	{Black, 0x0000},
	{White, 0xFFFF},
	{Red, 0xF800},
	{Green, 0x07E0},
	{Blue, 0x001F},
	{RGB(0x12, 0x34, 0x56), 0x11AA},
}

func TestHSVToRGB(t *testing.T) {
	for k, v := range TestHSVIsExpectedColor {
		t.Run("Given HSV"+strconv.Itoa(k), func(t *testing.T) {
			assert.Equal(t, v.Expect, HSVToRGB(v.H, v.S, v.V), "h=%v s=%v v=%v", v.H, v.S, v.V)
		})
	}
}

func TestRGB565(t *testing.T) {
	for k, v := range TestRGB565IsExpected {
		t.Run("Given RGB"+strconv.Itoa(k), func(t *testing.T) {
			assert.Equal(t, v.Expect, RGB565(v.C))
		})
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("Red")
	require.NoError(t, err)
	assert.Equal(t, Red, c)

	c, err = ParseColor("#ff8800")
	require.NoError(t, err)
	assert.Equal(t, RGB(0xFF, 0x88, 0x00), c)

	c, err = ParseColor("0a3306")
	require.NoError(t, err)
	assert.Equal(t, RGB(0x0A, 0x33, 0x06), c)

	_, err = ParseColor("not-a-color")
	assert.Error(t, err)
}

func TestColorScale(t *testing.T) {
	assert.Equal(t, White, White.Scale(255))
	assert.Equal(t, Black, White.Scale(0))
	assert.Equal(t, RGB(127, 0, 127), Magenta.Scale(127))
	assert.Equal(t, "#ff00ff", Magenta.String())
	assert.Equal(t, EncodingRGB, Magenta.Encoding())
}
