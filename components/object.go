package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's collision rectangle in screen space.
type ObjectData struct {
	*resolv.Object
}

// CenterX returns the horizontal centre of the rectangle.
func (o *ObjectData) CenterX() float64 { return o.X + o.W/2 }

// CenterY returns the vertical centre of the rectangle.
func (o *ObjectData) CenterY() float64 { return o.Y + o.H/2 }

// Bottom returns the y coordinate of the rectangle's lower edge.
func (o *ObjectData) Bottom() float64 { return o.Y + o.H }

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
