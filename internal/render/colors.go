package render

import "image/color"

// Panel text colour indices.
const (
	ColorBlack = iota
	ColorPanel
	ColorDim
	ColorText
	ColorHeader
	ColorTitle
	ColorInfo
	ColorWarning
	ColorCritical
	ColorDiscovery
	ColorDelivery
	numColors
)

// Palette maps panel colour indices to RGBA.
var Palette = [numColors]color.RGBA{
	ColorBlack:     {0, 0, 0, 255},
	ColorPanel:     {24, 26, 38, 255},
	ColorDim:       {96, 100, 120, 255},
	ColorText:      {200, 204, 215, 255},
	ColorHeader:    {120, 200, 255, 255},
	ColorTitle:     {255, 255, 255, 255},
	ColorInfo:      {85, 255, 255, 255},
	ColorWarning:   {255, 255, 85, 255},
	ColorCritical:  {255, 85, 85, 255},
	ColorDiscovery: {85, 255, 85, 255},
	ColorDelivery:  {255, 255, 255, 255},
}

// Scene colours.
var (
	SpaceColor    = color.RGBA{8, 8, 16, 255}
	SunColor      = color.RGBA{255, 230, 60, 255}
	OrbitColor    = color.RGBA{60, 60, 80, 255}
	ShipColor     = color.RGBA{235, 235, 235, 255}
	SelectColor   = color.RGBA{255, 255, 255, 200}
	DragLineColor = color.RGBA{200, 200, 255, 160}
)
