package road

import (
	"github.com/golangdaddy/roadrush/pkg/config"
	"github.com/golangdaddy/roadrush/pkg/geom"
)

// Road is the vertically scrolling highway: a fixed drivable band plus a scroll
// offset that positions the dashed centre markers
type Road struct {
	screenWidth   int
	screenHeight  int
	inset         int
	edgeLineInset int
	edgeLineWidth int
	tilePeriod    int
	markerWidth   int
	markerLength  int

	scroll int // Always in [0, tilePeriod)
}

// NewRoad creates a road with zero scroll
func NewRoad(s config.Settings) *Road {
	return &Road{
		screenWidth:   s.ScreenWidth,
		screenHeight:  s.ScreenHeight,
		inset:         s.RoadInset,
		edgeLineInset: s.EdgeLineInset,
		edgeLineWidth: s.EdgeLineWidth,
		tilePeriod:    s.TilePeriod,
		markerWidth:   s.MarkerWidth,
		markerLength:  s.MarkerLength,
	}
}

// Scroll returns the current scroll offset
func (r *Road) Scroll() int {
	return r.scroll
}

// Advance scrolls the road by the player's speed
func (r *Road) Advance(playerSpeed int) {
	r.scroll = wrap(r.scroll+playerSpeed, r.tilePeriod)
}

// Reset puts the road back to zero scroll
func (r *Road) Reset() {
	r.scroll = 0
}

// Band returns the area the player is confined to: the asphalt between the
// insets, spanning the full screen height
func (r *Road) Band() geom.Rect {
	return geom.NewRect(r.inset, 0, r.screenWidth-2*r.inset, r.screenHeight)
}

// EdgeLines returns the left and right white edge lines
func (r *Road) EdgeLines() (left, right geom.Rect) {
	left = geom.NewRect(r.edgeLineInset, 0, r.edgeLineWidth, r.screenHeight)
	right = geom.NewRect(r.screenWidth-r.edgeLineInset-r.edgeLineWidth, 0, r.edgeLineWidth, r.screenHeight)
	return left, right
}

// markerYs returns the top of every centre marker tile that can be visible for
// the given scroll offset
func markerYs(scroll, tilePeriod, screenHeight int) []int {
	if tilePeriod <= 0 {
		return nil
	}
	ys := make([]int, 0, screenHeight/tilePeriod+2)
	for y := -tilePeriod + scroll; y < screenHeight; y += tilePeriod {
		ys = append(ys, y)
	}
	return ys
}

// MarkersAt returns the centre marker rectangles for a scroll offset. Renderers
// pass the offset of the frame they draw.
func (r *Road) MarkersAt(scroll int) []geom.Rect {
	x := r.screenWidth/2 - r.markerWidth/2
	ys := markerYs(wrap(scroll, r.tilePeriod), r.tilePeriod, r.screenHeight)
	markers := make([]geom.Rect, 0, len(ys))
	for _, y := range ys {
		markers = append(markers, geom.NewRect(x, y, r.markerWidth, r.markerLength))
	}
	return markers
}

// wrap returns v mod period in [0, period), also for negative v
func wrap(v, period int) int {
	m := v % period
	if m < 0 {
		m += period
	}
	return m
}
